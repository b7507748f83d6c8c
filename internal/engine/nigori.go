// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-sync-engine/internal/crypto"
	"github.com/MKhiriev/go-sync-engine/internal/logger"
	"github.com/MKhiriev/go-sync-engine/models"
)

// nigoriStorageFile is the sealed keybag blob inside the sync data dir.
const nigoriStorageFile = "nigori.bin"

// NigoriControllerState tracks the pseudo-datatype controller lifecycle.
type NigoriControllerState int

const (
	NigoriNotRunning NigoriControllerState = iota
	NigoriRunning
)

// nigoriKeybag is the encryption metadata kept sealed on disk: the key bag
// itself plus the name of the current default key.
type nigoriKeybag struct {
	Keys           map[string]string `json:"keys"`
	DefaultKeyName string            `json:"default_key_name"`
}

// nigoriSealedFile is the on-disk envelope: the scrypt salt in the clear
// next to the sealed blob it protects.
type nigoriSealedFile struct {
	Salt string `json:"salt"`
	Blob string `json:"blob"`
}

// NigoriController manages the encryption-metadata pseudo-datatype. Nigori
// is the one type whose lifecycle is not owned by the generic datatype
// manager: the backend connects it during initialization and re-drives it
// manually whenever a purge includes it.
//
// Owned by the backend; every method runs on the sync sequence.
type NigoriController struct {
	log            *logger.Logger
	keybag         crypto.KeybagService
	storagePath    string
	bootstrapToken string

	state     NigoriControllerState
	connector ModelTypeConnector
	data      nigoriKeybag
}

func newNigoriController(keybag crypto.KeybagService, dataDir, bootstrapToken string, log *logger.Logger) *NigoriController {
	return &NigoriController{
		log:            log,
		keybag:         keybag,
		storagePath:    filepath.Join(dataDir, nigoriStorageFile),
		bootstrapToken: bootstrapToken,
	}
}

// LoadAndConnect loads the sealed keybag from disk (creating a fresh empty
// one when the file does not exist yet) and connects the Nigori type
// through the given connector.
func (c *NigoriController) LoadAndConnect(connector ModelTypeConnector) error {
	if err := c.load(); err != nil {
		return fmt.Errorf("loading nigori storage: %w", err)
	}

	c.connector = connector
	c.connector.ConnectDataType(models.Nigori)
	c.state = NigoriRunning

	c.log.Debug().
		Str("func", "NigoriController.LoadAndConnect").
		Int("keys", len(c.data.Keys)).
		Msg("nigori controller connected")
	return nil
}

// Stop disconnects the type and, for a sync-disabling shutdown, removes the
// sealed storage from disk.
func (c *NigoriController) Stop(reason models.ShutdownReason) {
	if c.state == NigoriRunning && c.connector != nil {
		c.connector.DisconnectDataType(models.Nigori)
	}
	c.connector = nil
	c.state = NigoriNotRunning

	if reason == models.ShutdownDisableSync {
		if err := os.Remove(c.storagePath); err != nil && !os.IsNotExist(err) {
			c.log.Err(err).
				Str("func", "NigoriController.Stop").
				Str("path", c.storagePath).
				Msg("failed to remove nigori storage")
		}
	}
}

// State returns the controller lifecycle state.
func (c *NigoriController) State() NigoriControllerState {
	return c.state
}

func (c *NigoriController) load() error {
	raw, err := os.ReadFile(c.storagePath)
	if os.IsNotExist(err) {
		c.data = nigoriKeybag{Keys: map[string]string{}}
		return c.persist()
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.storagePath, err)
	}

	var envelope nigoriSealedFile
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("parsing nigori envelope: %w", err)
	}

	salt, err := decodeSalt(envelope.Salt)
	if err != nil {
		return err
	}
	key, err := c.keybag.DeriveKey(c.bootstrapToken, salt)
	if err != nil {
		return fmt.Errorf("deriving nigori key: %w", err)
	}
	if err := c.keybag.Open(envelope.Blob, key, &c.data); err != nil {
		return fmt.Errorf("opening sealed nigori blob: %w", err)
	}
	return nil
}

func (c *NigoriController) persist() error {
	salt, err := c.keybag.GenerateScryptSalt()
	if err != nil {
		return fmt.Errorf("generating nigori salt: %w", err)
	}
	key, err := c.keybag.DeriveKey(c.bootstrapToken, salt)
	if err != nil {
		return fmt.Errorf("deriving nigori key: %w", err)
	}
	blob, err := c.keybag.Seal(c.data, key)
	if err != nil {
		return fmt.Errorf("sealing nigori blob: %w", err)
	}

	envelope, err := json.Marshal(nigoriSealedFile{Salt: encodeSalt(salt), Blob: blob})
	if err != nil {
		return fmt.Errorf("encoding nigori envelope: %w", err)
	}
	if err := os.WriteFile(c.storagePath, envelope, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", c.storagePath, err)
	}
	return nil
}

func encodeSalt(salt []byte) string {
	return base64.StdEncoding.EncodeToString(salt)
}

func decodeSalt(encoded string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding nigori salt: %w", err)
	}
	return salt, nil
}
