package probe

import "context"

// Result holds the outcome of a single probe
type Result struct {
	Success bool
	Message string
}

// Checker is implemented by any dependency check (database, cache, broker).
// prefix and key address the connection parameters in the KV store at
// {prefix}/{key}.
type Checker interface {
	Check(ctx context.Context, prefix, key string) Result
}

// KV resolves a key to a string mapping of connection parameters. When the
// key is absent def is returned if non-nil.
type KV interface {
	Get(ctx context.Context, key string, def map[string]string) (map[string]string, error)
}

func fail(err error) Result {
	return Result{Success: false, Message: err.Error()}
}

// param reads one connection parameter with a per-field fallback. Fallbacks
// are literal placeholders, not working values: an empty mapping makes the
// probe dial a placeholder endpoint and fail, which is the intended
// fail-safe outcome.
func param(m map[string]string, name, fallback string) string {
	if v, ok := m[name]; ok {
		return v
	}
	return fallback
}
