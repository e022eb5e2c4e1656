package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/felixgeelhaar/bolt/v3"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()

	if config.Level != "info" {
		t.Errorf("Level = %s, want info", config.Level)
	}
	if config.Format != "console" {
		t.Errorf("Format = %s, want console", config.Format)
	}
	// Logs go to stderr so they never mix with plan output on stdout.
	if config.Output != os.Stderr {
		t.Errorf("Output = %v, want os.Stderr", config.Output)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bolt.Level
	}{
		{"trace", bolt.TRACE},
		{"debug", bolt.DEBUG},
		{"info", bolt.INFO},
		{"warn", bolt.WARN},
		{"error", bolt.ERROR},
		{"unknown", bolt.INFO},
		{"", bolt.INFO},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%s) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// The JSON handler carries structured solver fields through to the sink.
func TestJSONHandlerOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := bolt.New(bolt.NewJSONHandler(buf)).SetLevel(bolt.DEBUG)

	logger.Info().Str("solver", "ucs").Int("expanded", 17).Msg("solver finished")

	if !bytes.Contains(buf.Bytes(), []byte(`"solver":"ucs"`)) {
		t.Errorf("expected solver field in output: %s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"expanded":17`)) {
		t.Errorf("expected expanded field in output: %s", buf.String())
	}
}

func TestGet(t *testing.T) {
	logger := Get()
	if logger == nil {
		t.Fatal("Get() returned nil")
	}
	if again := Get(); again != logger {
		t.Error("Get() returned a different logger on the second call")
	}
}

func TestSetLevel(t *testing.T) {
	// Just verify level changes do not panic on the default logger.
	SetLevel("debug")
	SetLevel("error")
	SetLevel("info")
}
