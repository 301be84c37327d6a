package runner

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

func TestDispatch_SuccessLogsInfoWithTag(t *testing.T) {
	log, logs := observedLogger()
	c := pass()

	if !Dispatch(context.Background(), log, c, "staging/app", "DATABASE") {
		t.Fatalf("expected true for passing check")
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one log emission, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.InfoLevel {
		t.Fatalf("expected info level, got %v", e.Level)
	}
	if !strings.Contains(e.Message, "DATABASE connection successful") {
		t.Fatalf("message wrong: %q", e.Message)
	}
	if e.ContextMap()["tag"] != "DATABASE" {
		t.Fatalf("tag field wrong: %+v", e.ContextMap())
	}
}

func TestDispatch_FailureLogsErrorWithTag(t *testing.T) {
	log, logs := observedLogger()
	c := failing()

	if Dispatch(context.Background(), log, c, "staging/app", "REDIS") {
		t.Fatalf("expected false for failing check")
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one log emission, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.ErrorLevel {
		t.Fatalf("expected error level, got %v", e.Level)
	}
	if !strings.Contains(e.Message, "REDIS connection failed: down") {
		t.Fatalf("message wrong: %q", e.Message)
	}
	if e.ContextMap()["tag"] != "REDIS" {
		t.Fatalf("tag field wrong: %+v", e.ContextMap())
	}
}
