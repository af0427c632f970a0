package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInit_NormalizesLevelNames(t *testing.T) {
	for raw, want := range map[string]string{
		"debug":    "debug",
		"WARN":     "warn",
		"Error":    "error",
		"nonsense": "info",
	} {
		Init(raw)
		if got := LevelString(); got != want {
			t.Fatalf("Init(%q): LevelString() = %q, want %q", raw, got, want)
		}
	}
}

// captureOutput swaps the package logger for one writing into a buffer and
// returns both the buffer and the restore func.
func captureOutput() (*bytes.Buffer, func()) {
	var buf bytes.Buffer
	orig := logger
	logger = log.New(&buf, "", 0)
	return &buf, func() { logger = orig }
}

func TestLevelFiltering(t *testing.T) {
	buf, restore := captureOutput()
	defer restore()

	// at warn, the noisy levels the request path uses stay silent
	Init("warn")
	Debugf("cooldown-detail")
	Infof("submission-accepted")
	Warnf("mongo-retry")
	Errorf("moderation-misconfig")

	out := buf.String()
	for _, suppressed := range []string{"cooldown-detail", "submission-accepted"} {
		if strings.Contains(out, suppressed) {
			t.Fatalf("%q should be suppressed at warn level, got: %q", suppressed, out)
		}
	}
	for _, kept := range []string{"mongo-retry", "moderation-misconfig"} {
		if !strings.Contains(out, kept) {
			t.Fatalf("%q missing from output: %q", kept, out)
		}
	}
}

func TestPrintln_MapsToInfo(t *testing.T) {
	buf, restore := captureOutput()
	defer restore()

	Init("warn")
	Println("startup-banner")
	if strings.Contains(buf.String(), "startup-banner") {
		t.Fatalf("Println should be suppressed at warn level")
	}

	Init("info")
	buf.Reset()
	Println("startup-banner")
	if !strings.Contains(buf.String(), "startup-banner") {
		t.Fatalf("Println expected at info level, got: %q", buf.String())
	}
}
