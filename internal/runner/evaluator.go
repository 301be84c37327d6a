package runner

import (
	"context"

	"go.uber.org/zap"

	"github.com/deploops/initcheck/internal/probe"
)

// Evaluate dispatches every key of a set against the table and folds the
// verdicts. Every key is visited even after a failure; keys without a table
// entry count as neither pass nor fail. An empty set passes vacuously.
func Evaluate(ctx context.Context, log *zap.Logger, prefix string, keys []string, table map[string]probe.Checker) bool {
	passed := true
	for _, key := range keys {
		c, ok := table[key]
		if !ok {
			continue
		}
		if !Dispatch(ctx, log, c, prefix, key) {
			passed = false
		}
	}
	return passed
}
