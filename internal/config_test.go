package internal

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if cfg.App.Transport != TransportStdio {
		t.Errorf("transport = %q, want %q", cfg.App.Transport, TransportStdio)
	}
}

func TestApplicationConfig_EmptyTransportDefaultsStdio(t *testing.T) {
	cfg := ApplicationConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty transport should default to stdio: %v", err)
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("transport = %q", cfg.Transport)
	}
}

func TestApplicationConfig_InvalidTransport(t *testing.T) {
	cfg := ApplicationConfig{Transport: "websocket"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown transport should fail validation")
	}
}

func TestApplicationConfig_PortOnlyCheckedForHTTP(t *testing.T) {
	stdio := ApplicationConfig{Transport: TransportStdio, HTTP: HTTPConfig{Port: 0}}
	if err := stdio.Validate(); err != nil {
		t.Fatalf("stdio should ignore port: %v", err)
	}

	http := ApplicationConfig{Transport: TransportHTTP, HTTP: HTTPConfig{Port: 70000}}
	if err := http.Validate(); err == nil {
		t.Fatal("http with out-of-range port should fail")
	}
}

func TestInkdropConfig_CredentialsNotRequired(t *testing.T) {
	cfg := InkdropConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty connection settings must not block startup: %v", err)
	}
}

func TestInkdropConfig_NegativeTimeout(t *testing.T) {
	cfg := InkdropConfig{Timeout: -time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative timeout should fail validation")
	}
}

func TestAuthConfig_DisabledMode(t *testing.T) {
	cfg := AuthConfig{Mode: "disabled", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled mode should pass: %v", err)
	}
	if cfg.AuthEnabled() {
		t.Error("disabled mode should not be enabled")
	}
}

func TestAuthConfig_EmptyModeDefaultsDisabled(t *testing.T) {
	cfg := AuthConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mode should default to disabled: %v", err)
	}
	if cfg.Mode != AuthModeDisabled {
		t.Errorf("mode = %q, want %q", cfg.Mode, AuthModeDisabled)
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: "token"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("token mode with empty token should fail")
	}
	if !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFullConfig_AuthValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth.Mode = "token"
	cfg.Auth.Token = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch auth error")
	}
}
