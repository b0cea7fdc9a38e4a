package commands

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/diogo/tripchat/internal/config"
	apierrors "github.com/diogo/tripchat/internal/errors"
)

func TestFormatErrorMessageNil(t *testing.T) {
	if got := formatErrorMessage(nil, "Request failed"); got != "" {
		t.Errorf("formatErrorMessage(nil) = %q, want empty", got)
	}
}

func TestFormatErrorMessageAPIError(t *testing.T) {
	err := apierrors.NewAPIErrorWithBody(400, "http://localhost:5000/api/chat", "bad request", "Please enter a message.")
	got := formatErrorMessage(err, "Request failed")

	if !strings.Contains(got, "Request failed") {
		t.Errorf("missing context: %q", got)
	}
	if !strings.Contains(got, "400") {
		t.Errorf("missing HTTP status: %q", got)
	}
	if !strings.Contains(got, "http://localhost:5000/api/chat") {
		t.Errorf("missing endpoint: %q", got)
	}
	if !strings.Contains(got, "Please enter a message.") {
		t.Errorf("missing server-supplied text: %q", got)
	}
}

func TestFormatErrorMessageNetworkHint(t *testing.T) {
	err := apierrors.NewNetworkError("send", "http://localhost:5000/api/chat", errors.New("connection refused"))
	got := formatErrorMessage(err, "Request failed")

	if !strings.Contains(got, "connection refused") {
		t.Errorf("missing cause: %q", got)
	}
	if !strings.Contains(got, "server is running") {
		t.Errorf("missing network hint: %q", got)
	}
}

func TestFormatErrorMessageParseHint(t *testing.T) {
	err := apierrors.NewParseError("no response field found", "response")
	got := formatErrorMessage(err, "Request failed")

	if !strings.Contains(got, "unexpected format") {
		t.Errorf("missing parse hint: %q", got)
	}
}

func TestGetEndpointFlagPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	endpointFlag = "http://flagged:9000/api/chat"
	defer func() { endpointFlag = "" }()

	if got := getEndpoint(); got != "http://flagged:9000/api/chat" {
		t.Errorf("getEndpoint() = %q, want flag value", got)
	}

	endpointFlag = ""
	if got := getEndpoint(); got != config.DefaultConfig().Endpoint {
		t.Errorf("getEndpoint() = %q, want config default", got)
	}
}

func TestGetTimeoutFlagPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	timeoutFlag = 5
	defer func() { timeoutFlag = 0 }()

	if got := getTimeout(); got != 5*time.Second {
		t.Errorf("getTimeout() = %v, want 5s", got)
	}

	timeoutFlag = 0
	if got := getTimeout(); got != 60*time.Second {
		t.Errorf("getTimeout() = %v, want config default", got)
	}
}

func TestSetConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := setConfig("endpoint", "http://myhost:8080/api/chat"); err != nil {
		t.Fatalf("setConfig(endpoint) returned error: %v", err)
	}
	if err := setConfig("timeout", "120"); err != nil {
		t.Fatalf("setConfig(timeout) returned error: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.Endpoint != "http://myhost:8080/api/chat" {
		t.Errorf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.TimeoutSeconds != 120 {
		t.Errorf("timeout = %d, want 120", cfg.TimeoutSeconds)
	}
}

func TestSetConfigRejectsBadValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cases := []struct {
		key, value string
	}{
		{"timeout", "abc"},
		{"timeout", "-5"},
		{"timeout", "0"},
		{"clipboard", "maybe"},
		{"verbose", "2x"},
		{"unknown", "value"},
	}
	for _, tc := range cases {
		if err := setConfig(tc.key, tc.value); err == nil {
			t.Errorf("setConfig(%q, %q) should fail", tc.key, tc.value)
		}
	}
}
