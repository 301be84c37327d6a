package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/deploops/initcheck/internal/config"
	"github.com/deploops/initcheck/internal/confkv"
	"github.com/deploops/initcheck/internal/logging"
	"github.com/deploops/initcheck/internal/notify"
	"github.com/deploops/initcheck/internal/probe"
	"github.com/deploops/initcheck/internal/runner"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	_ = godotenv.Load()

	cfg, cfgErr := config.FromEnv()

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// The process must never die with a raw panic trace; anything escaping
	// the layers below becomes an error log and a non-zero exit.
	defer func() {
		if p := recover(); p != nil {
			logger.Error(fmt.Sprintf("Unexpected error: %v", p), zap.String("tag", "MAIN_EXCEPTION"))
			code = 1
		}
	}()

	if cfgErr != nil {
		logger.Error("Environment configuration error: "+cfgErr.Error(), zap.String("tag", "ENV_ERROR"))
		return 1
	}

	kv, err := confkv.New(cfg.ConsulAddress())
	if err != nil {
		// No KV client means no check can run; same consequence as the gate failing.
		logger.Error("Consul connection failed: "+err.Error(), zap.String("tag", "CONSUL"))
		return 1
	}

	table := map[string]probe.Checker{
		"DATABASE": probe.NewDatabaseChecker(kv),
		"REDIS":    probe.NewRedisChecker(kv),
		"RABBITMQ": probe.NewBrokerChecker(kv),
	}

	var notifier notify.Notifier
	if s := notify.NewSlack(cfg.SlackWebhook); s != nil {
		notifier = s
	}

	r := runner.New(logger, probe.NewGate(kv).Check, table, notifier)
	return r.Run(context.Background(), cfg)
}
