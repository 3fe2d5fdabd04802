package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/dilshat/sms-notify/util"
)

const (
	// required keys
	keyAccountSid = "twilio.account_sid"
	keyAuthToken  = "twilio.auth_token"
	keyFromNumber = "twilio.from_number"
	keyMyNumber   = "general.my_number"

	// optional keys
	keyWebhook       = "general.webhook"
	keyMaxMessageLen = "general.max_message_len"
	keyRatePerSec    = "twilio.rate_per_sec"
	keyPollMode      = "poll.mode"
	keyMaxAttempts   = "poll.max_attempts"
	keyMaxWaitSec    = "poll.max_wait_sec"
	keyFixedDelaySec = "poll.fixed_delay_sec"
)

const (
	PollModeBackoff = "backoff"
	PollModeFixed   = "fixed"
)

type MissingFileErr struct {
	path string
}

func (e *MissingFileErr) Error() string {
	return "config file does not exist: " + e.path
}

type MissingKeyErr struct {
	key string
}

func (e *MissingKeyErr) Error() string {
	return "required config key is absent: " + e.key
}

type Config struct {
	AccountSid string
	AuthToken  string
	FromNumber string
	MyNumber   string

	Webhook       string
	MaxMessageLen int
	RatePerSec    int

	PollMode      string
	MaxAttempts   int
	MaxWaitSec    int
	FixedDelaySec int
}

// Load reads gateway credentials and tunables from the ini file at path.
func Load(path string) (Config, error) {
	if !util.FileExists(path) {
		return Config{}, &MissingFileErr{path: path}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	v.SetDefault(keyMaxMessageLen, 1600)
	v.SetDefault(keyRatePerSec, 1)
	v.SetDefault(keyPollMode, PollModeBackoff)
	v.SetDefault(keyMaxAttempts, 10)
	v.SetDefault(keyMaxWaitSec, 13)
	v.SetDefault(keyFixedDelaySec, 5)

	err := v.ReadInConfig()
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	for _, key := range []string{keyAccountSid, keyAuthToken, keyFromNumber, keyMyNumber} {
		if util.IsBlank(v.GetString(key)) {
			return Config{}, &MissingKeyErr{key: key}
		}
	}

	cfg := Config{
		AccountSid:    v.GetString(keyAccountSid),
		AuthToken:     v.GetString(keyAuthToken),
		FromNumber:    v.GetString(keyFromNumber),
		MyNumber:      v.GetString(keyMyNumber),
		Webhook:       v.GetString(keyWebhook),
		MaxMessageLen: v.GetInt(keyMaxMessageLen),
		RatePerSec:    v.GetInt(keyRatePerSec),
		PollMode:      v.GetString(keyPollMode),
		MaxAttempts:   v.GetInt(keyMaxAttempts),
		MaxWaitSec:    v.GetInt(keyMaxWaitSec),
		FixedDelaySec: v.GetInt(keyFixedDelaySec),
	}

	if cfg.PollMode != PollModeBackoff && cfg.PollMode != PollModeFixed {
		return Config{}, fmt.Errorf("unknown poll mode %q", cfg.PollMode)
	}

	return cfg, nil
}
