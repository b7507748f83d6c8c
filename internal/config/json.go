package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Engine struct {
		ServiceURL       string   `json:"service_url"`
		DataDir          string   `json:"data_dir"`
		LocalSyncBackend bool     `json:"local_sync_backend"`
		PollInterval     Duration `json:"poll_interval"`
	} `json:"engine,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Features struct {
		SendInterestedDataTypes               bool `json:"send_interested_data_types"`
		UseSyncInvalidations                  bool `json:"use_sync_invalidations"`
		UseSyncInvalidationsForWalletAndOffer bool `json:"use_sync_invalidations_for_wallet_and_offer"`
		SkipInvalidationVersionCheck          bool `json:"skip_invalidation_version_check"`
	} `json:"features,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Engine: Engine{
			ServiceURL:       jsonCfg.Engine.ServiceURL,
			DataDir:          jsonCfg.Engine.DataDir,
			LocalSyncBackend: jsonCfg.Engine.LocalSyncBackend,
			PollInterval:     time.Duration(jsonCfg.Engine.PollInterval),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Features: Features{
			SendInterestedDataTypes:               jsonCfg.Features.SendInterestedDataTypes,
			UseSyncInvalidations:                  jsonCfg.Features.UseSyncInvalidations,
			UseSyncInvalidationsForWalletAndOffer: jsonCfg.Features.UseSyncInvalidationsForWalletAndOffer,
			SkipInvalidationVersionCheck:          jsonCfg.Features.SkipInvalidationVersionCheck,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
