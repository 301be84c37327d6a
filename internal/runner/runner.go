package runner

import (
	"context"

	"go.uber.org/zap"

	"github.com/deploops/initcheck/internal/config"
	"github.com/deploops/initcheck/internal/notify"
	"github.com/deploops/initcheck/internal/probe"
)

// GateFunc proves the config store is reachable before any check runs.
type GateFunc func(ctx context.Context, checkKey string) probe.Result

// Runner drives one synchronous check pass: gate, optional set, mandatory
// set. It owns the dispatch table for the whole run.
type Runner struct {
	log      *zap.Logger
	gate     GateFunc
	table    map[string]probe.Checker
	notifier notify.Notifier
}

func New(log *zap.Logger, gate GateFunc, table map[string]probe.Checker, notifier notify.Notifier) *Runner {
	return &Runner{
		log:      log,
		gate:     gate,
		table:    table,
		notifier: notifier,
	}
}

// Run returns the process exit code: 0 when the gate and every mandatory
// check pass, 1 otherwise. Optional failures are reported but never fatal.
func (r *Runner) Run(ctx context.Context, cfg config.Config) int {
	res := r.gate(ctx, cfg.ConnectionCheckKey)
	if !res.Success {
		r.log.Error("Consul connection failed: "+res.Message, zap.String("tag", "CONSUL"))
		r.alert(ctx, "Consul connection failed", res.Message)
		return 1
	}
	r.log.Info("Consul connection successful: "+res.Message, zap.String("tag", "CONSUL"))

	if !Evaluate(ctx, r.log, cfg.Prefix, cfg.OptionalKeySet(), r.table) {
		r.log.Warn("Optional Keys Check Failed.", zap.String("tag", "OPTIONAL_KEYS_CHECK"))
	}

	if !Evaluate(ctx, r.log, cfg.Prefix, cfg.MandatoryKeySet(), r.table) {
		r.log.Error("Mandatory Keys Check Failed.", zap.String("tag", "MANDATORY_KEYS_CHECK"))
		r.alert(ctx, "Mandatory Keys Check Failed", "prefix: "+cfg.Prefix+" keys: "+cfg.MandatoryKeys)
		return 1
	}

	return 0
}

// alert is best-effort and never affects the exit code.
func (r *Runner) alert(ctx context.Context, title, text string) {
	if r.notifier == nil {
		return
	}
	if err := r.notifier.Send(ctx, title, text); err != nil {
		r.log.Warn("alert delivery failed: "+err.Error(), zap.String("tag", "NOTIFY"))
	}
}
