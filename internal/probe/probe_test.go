package probe

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// stub KV you can control
type stubKV struct {
	vals map[string]map[string]string
	err  error
}

func (s *stubKV) Get(ctx context.Context, key string, def map[string]string) (map[string]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if v, ok := s.vals[key]; ok {
		return v, nil
	}
	if def != nil {
		return def, nil
	}
	return nil, errors.New("not found: " + key)
}

func TestParam_FallbackIsLiteralPlaceholder(t *testing.T) {
	m := map[string]string{"DB_HOST": "db.internal"}
	if got := param(m, "DB_HOST", "DATABASE_HOST"); got != "db.internal" {
		t.Fatalf("present param wrong: %q", got)
	}
	if got := param(m, "DB_PORT", "DATABASE_PORT"); got != "DATABASE_PORT" {
		t.Fatalf("expected placeholder fallback, got %q", got)
	}
}

func TestGate_SucceedsWhenFetchSucceeds(t *testing.T) {
	g := NewGate(&stubKV{})

	res := g.Check(context.Background(), "connection_check")
	if !res.Success {
		t.Fatalf("expected gate success, got %+v", res)
	}
	if res.Message != "Successful" {
		t.Fatalf("gate message wrong: %q", res.Message)
	}
}

func TestGate_ConvertsFetchErrorToFailure(t *testing.T) {
	g := NewGate(&stubKV{err: errors.New("connection refused")})

	res := g.Check(context.Background(), "connection_check")
	if res.Success {
		t.Fatalf("expected gate failure, got %+v", res)
	}
	if !strings.Contains(res.Message, "connection refused") {
		t.Fatalf("expected error text in message, got %q", res.Message)
	}
}

// All probes must convert a parameter-lookup failure into a failure result
// rather than letting it escape.
func TestCheckers_ConvertKVErrorToFailure(t *testing.T) {
	kv := &stubKV{err: errors.New("kv store down")}
	checkers := map[string]Checker{
		"DATABASE": NewDatabaseChecker(kv),
		"REDIS":    NewRedisChecker(kv),
		"RABBITMQ": NewBrokerChecker(kv),
	}

	for name, c := range checkers {
		res := c.Check(context.Background(), "staging/app", name)
		if res.Success {
			t.Fatalf("%s: expected failure on kv error", name)
		}
		if !strings.Contains(res.Message, "kv store down") {
			t.Fatalf("%s: expected error text, got %q", name, res.Message)
		}
	}
}

// A closed local port fails fast and exercises the connect failure path
// without external services.
func TestRedisChecker_ConnectFailureIsFailureResult(t *testing.T) {
	kv := &stubKV{vals: map[string]map[string]string{
		"staging/app/REDIS": {"REDIS_HOST": "127.0.0.1", "REDIS_PORT": "1"},
	}}

	res := NewRedisChecker(kv).Check(context.Background(), "staging/app", "REDIS")
	if res.Success {
		t.Fatalf("expected connect failure, got %+v", res)
	}
	if res.Message == "" {
		t.Fatalf("expected diagnostic message")
	}
}

func TestBrokerChecker_ConnectFailureIsFailureResult(t *testing.T) {
	kv := &stubKV{vals: map[string]map[string]string{
		"staging/app/RABBITMQ": {"RABBITMQ_HOSTNAME": "127.0.0.1", "RABBITMQ_PORT": "1"},
	}}

	res := NewBrokerChecker(kv).Check(context.Background(), "staging/app", "RABBITMQ")
	if res.Success {
		t.Fatalf("expected connect failure, got %+v", res)
	}
}
