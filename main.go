package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/dilshat/sms-notify/config"
	"github.com/dilshat/sms-notify/controller"
	"github.com/dilshat/sms-notify/log"
	"github.com/dilshat/sms-notify/poll"
	"github.com/dilshat/sms-notify/service"
	"github.com/dilshat/sms-notify/sms"
	"github.com/dilshat/sms-notify/util"
)

func init() {
	//a .env file is optional
	_ = godotenv.Load()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error sending message: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(util.GetEnv("CONFIG_PATH", defaultPath("config.ini")))
	if err != nil {
		return err
	}

	logger, err := log.New(util.GetEnv("LOG_PATH", defaultPath("logs.txt")))
	if err != nil {
		return err
	}
	defer logger.Sync()

	gateway := sms.NewTwilioGateway(cfg.AccountSid, cfg.AuthToken, cfg.RatePerSec)

	var poller poll.Poller
	if cfg.PollMode == config.PollModeFixed {
		poller = poll.NewFixedPoller(gateway, time.Duration(cfg.FixedDelaySec)*time.Second)
	} else {
		poller = poll.NewBackoffPoller(gateway, cfg.MaxAttempts, time.Duration(cfg.MaxWaitSec)*time.Second)
	}

	srv := service.NewService(gateway, poller, logger,
		cfg.FromNumber, cfg.MyNumber, cfg.MaxMessageLen, cfg.Webhook)

	err = controller.GetSendCmd(srv).Execute()
	if err != nil {
		logger.Warn("Error sending message", zap.Error(err))
	}

	return err
}

func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}

	return filepath.Join(home, ".sms-notify", name)
}
