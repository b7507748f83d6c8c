package engine

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-engine/internal/crypto"
	"github.com/MKhiriev/go-sync-engine/internal/logger"
	"github.com/MKhiriev/go-sync-engine/models"
)

func newTestNigori(t *testing.T, dataDir, token string) *NigoriController {
	t.Helper()
	return newNigoriController(crypto.NewKeybagService(), dataDir, token, logger.Nop())
}

func TestNigoriController_FreshStartCreatesSealedStorage(t *testing.T) {
	dir := t.TempDir()
	rec := &callRecorder{}
	c := newTestNigori(t, dir, "bootstrap-token")

	require.NoError(t, c.LoadAndConnect(&recordingConnector{rec: rec}))

	assert.Equal(t, NigoriRunning, c.State())
	assert.Equal(t, []string{"connect:NIGORI"}, rec.trace())

	raw, err := os.ReadFile(filepath.Join(dir, nigoriStorageFile))
	require.NoError(t, err)

	// The envelope keeps the salt in the clear; the keybag itself must not
	// appear anywhere in plaintext.
	var envelope nigoriSealedFile
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.NotEmpty(t, envelope.Salt)
	assert.NotEmpty(t, envelope.Blob)
	assert.NotContains(t, string(raw), "default_key_name")
}

func TestNigoriController_ReopenWithSameToken(t *testing.T) {
	dir := t.TempDir()
	rec := &callRecorder{}

	first := newTestNigori(t, dir, "bootstrap-token")
	require.NoError(t, first.LoadAndConnect(&recordingConnector{rec: rec}))
	first.data = nigoriKeybag{
		Keys:           map[string]string{"key-1": "material"},
		DefaultKeyName: "key-1",
	}
	require.NoError(t, first.persist())
	first.Stop(models.ShutdownStopSync)
	assert.Equal(t, NigoriNotRunning, first.State())

	second := newTestNigori(t, dir, "bootstrap-token")
	require.NoError(t, second.LoadAndConnect(&recordingConnector{rec: rec}))
	assert.Equal(t, "key-1", second.data.DefaultKeyName)
	assert.Equal(t, "material", second.data.Keys["key-1"])
}

func TestNigoriController_WrongBootstrapTokenFailsToOpen(t *testing.T) {
	dir := t.TempDir()
	rec := &callRecorder{}

	first := newTestNigori(t, dir, "bootstrap-token")
	require.NoError(t, first.LoadAndConnect(&recordingConnector{rec: rec}))
	first.Stop(models.ShutdownStopSync)

	second := newTestNigori(t, dir, "wrong-token")
	err := second.LoadAndConnect(&recordingConnector{rec: rec})
	require.Error(t, err)
	// Nothing was connected on the failure path.
	assert.Equal(t, NigoriNotRunning, second.State())
	assert.Equal(t, []string{"connect:NIGORI"}, rec.trace())
}

func TestNigoriController_DisableSyncRemovesStorage(t *testing.T) {
	dir := t.TempDir()
	rec := &callRecorder{}
	c := newTestNigori(t, dir, "bootstrap-token")
	require.NoError(t, c.LoadAndConnect(&recordingConnector{rec: rec}))

	c.Stop(models.ShutdownDisableSync)

	assert.Equal(t, NigoriNotRunning, c.State())
	assert.Equal(t, []string{"connect:NIGORI", "disconnect:NIGORI"}, rec.trace())
	_, err := os.Stat(filepath.Join(dir, nigoriStorageFile))
	assert.True(t, os.IsNotExist(err))
}

func TestNigoriController_StopWhenNeverStartedIsSafe(t *testing.T) {
	c := newTestNigori(t, t.TempDir(), "bootstrap-token")
	c.Stop(models.ShutdownDisableSync)
	assert.Equal(t, NigoriNotRunning, c.State())
}
