package logging_test

import (
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/binpatch/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"bogus", log.InfoLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(tt.level)
			if logger.GetLevel() != tt.want {
				t.Errorf("New(%q).GetLevel() = %v, want %v", tt.level, logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	if logging.Default() == nil {
		t.Fatal("Default() returned nil")
	}
	// Same instance on repeated calls.
	if logging.Default() != logging.Default() {
		t.Error("Default() is not a singleton")
	}
}
