package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validConfig = `[twilio]
account_sid = AC123
auth_token = secret
from_number = +15550001111

[general]
my_number = +15552223333
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))

	require.NoError(t, err)
	require.Equal(t, "AC123", cfg.AccountSid)
	require.Equal(t, "secret", cfg.AuthToken)
	require.Equal(t, "+15550001111", cfg.FromNumber)
	require.Equal(t, "+15552223333", cfg.MyNumber)

	//defaults
	require.Equal(t, 1600, cfg.MaxMessageLen)
	require.Equal(t, 1, cfg.RatePerSec)
	require.Equal(t, PollModeBackoff, cfg.PollMode)
	require.Equal(t, 10, cfg.MaxAttempts)
	require.Equal(t, 13, cfg.MaxWaitSec)
	require.Equal(t, 5, cfg.FixedDelaySec)
	require.Empty(t, cfg.Webhook)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig+`
webhook = http://localhost/hook
max_message_len = 160

[poll]
mode = fixed
fixed_delay_sec = 3
`))

	require.NoError(t, err)
	require.Equal(t, "http://localhost/hook", cfg.Webhook)
	require.Equal(t, 160, cfg.MaxMessageLen)
	require.Equal(t, PollModeFixed, cfg.PollMode)
	require.Equal(t, 3, cfg.FixedDelaySec)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"))

	require.Error(t, err)
	require.IsType(t, &MissingFileErr{}, err)
}

func TestLoad_MissingKey(t *testing.T) {
	_, err := Load(writeConfig(t, `[twilio]
account_sid = AC123
auth_token = secret
from_number = +15550001111
`))

	require.Error(t, err)
	require.IsType(t, &MissingKeyErr{}, err)
	require.Contains(t, err.Error(), "general.my_number")
}

func TestLoad_UnknownPollMode(t *testing.T) {
	_, err := Load(writeConfig(t, validConfig+`
[poll]
mode = sometimes
`))

	require.Error(t, err)
	require.Contains(t, err.Error(), "poll mode")
}
