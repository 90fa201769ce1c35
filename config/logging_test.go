package config

import (
	"path/filepath"
	"testing"
)

func TestLogFilePathDefault(t *testing.T) {
	t.Setenv("LOG_FILE", "")

	want := filepath.Join("logs", "offer-api.log")
	if got := LogFilePath(); got != want {
		t.Errorf("LogFilePath() = %q, want %q", got, want)
	}
}

func TestLogFilePathEnvOverride(t *testing.T) {
	t.Setenv("LOG_FILE", "/var/log/offer-api/backend.log")

	if got := LogFilePath(); got != "/var/log/offer-api/backend.log" {
		t.Errorf("LogFilePath() = %q, want override", got)
	}
}
