package runner

import (
	"context"

	"go.uber.org/zap"

	"github.com/deploops/initcheck/internal/probe"
)

// Dispatch runs one check and emits exactly one log line for it, tagged
// with the check key. Only the boolean verdict propagates; the diagnostic
// message ends at the log.
func Dispatch(ctx context.Context, log *zap.Logger, c probe.Checker, prefix, key string) bool {
	res := c.Check(ctx, prefix, key)
	if res.Success {
		log.Info(key+" connection successful: "+res.Message, zap.String("tag", key))
	} else {
		log.Error(key+" connection failed: "+res.Message, zap.String("tag", key))
	}
	return res.Success
}
