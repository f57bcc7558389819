package internal

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRunRequiresConfig(t *testing.T) {
	if err := Run(context.Background()); err == nil {
		t.Fatal("Run without config should fail")
	}
}

func TestRunStdioStopsOnEOF(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := NewDefaultConfig()

	err := Run(context.Background(),
		WithConfig(cfg),
		WithStdio(strings.NewReader(""), &stdout, &stderr),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout must only carry protocol messages, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Configuration loaded") {
		t.Errorf("expected startup log on stderr, got %q", stderr.String())
	}
}
