package log

import (
	"context"
	"testing"
)

func TestWithFields(t *testing.T) {
	ctx := WithFields(context.Background(), "session_id", "abc")
	ctx = WithFields(ctx, "op", "add")

	fields := fieldsFrom(ctx)
	if len(fields) != 4 {
		t.Fatalf("expected 4 field entries, got %d", len(fields))
	}
	if fields[1] != "abc" || fields[3] != "add" {
		t.Errorf("unexpected fields: %v", fields)
	}

	if got := fieldsFrom(context.Background()); got != nil {
		t.Errorf("expected no fields on bare context, got %v", got)
	}
}

func TestInit(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "warn", Mode: ModeProduction, Encoding: EncodingJSON},
		{Level: "not-a-level", Mode: "debug", Encoding: EncodingConsole},
	} {
		l := Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		l.Debugf(WithFields(context.Background(), "k", "v"), "hello %s", "world")
	}

	NewNop().Info(context.Background(), "discarded")
}
