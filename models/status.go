package models

import "time"

// ConnectionStatus describes the engine's link to the sync server.
type ConnectionStatus int

const (
	ConnectionNotAttempted ConnectionStatus = iota
	ConnectionOK
	ConnectionAuthError
	ConnectionServerError
)

func (s ConnectionStatus) String() string {
	switch s {
	case ConnectionNotAttempted:
		return "CONNECTION_NOT_ATTEMPTED"
	case ConnectionOK:
		return "CONNECTION_OK"
	case ConnectionAuthError:
		return "CONNECTION_AUTH_ERROR"
	case ConnectionServerError:
		return "CONNECTION_SERVER_ERROR"
	}
	return "UNKNOWN"
}

// SyncStatus mirrors the engine-reported status snapshot cached by the
// facade for synchronous access from the frontend sequence.
type SyncStatus struct {
	SyncID             string
	NotificationsEnabled bool
	BackedOffTypes     ModelTypeSet
	NumCommitsTotal    int64
	NumUpdatesReceived int64
}

// SyncProtocolError is an actionable error reported by the sync server.
type SyncProtocolError struct {
	ErrorType        string
	Action           string
	ErrorDescription string
}

// SyncCredentials carries the account and access token the engine
// authenticates with.
type SyncCredentials struct {
	Email       string
	AccessToken string
}

// SyncCycleSnapshot summarizes one completed sync cycle as reported by the
// engine instance.
type SyncCycleSnapshot struct {
	NumSuccessfulCommits int
	NumServerConflicts   int
	PollFinishTime       time.Time
	PollInterval         time.Duration
	BagOfChips           string
}
