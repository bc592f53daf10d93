package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Disable color for tests
	color.NoColor = true
}

// capture collects everything written to the given stream during f.
func capture(t *testing.T, useStderr bool, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	if useStderr {
		SetWriters(os.Stdout, w)
	} else {
		SetWriters(w, os.Stderr)
	}
	defer SetWriters(os.Stdout, os.Stderr)

	f()

	w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrefixes(t *testing.T) {
	tests := []struct {
		name       string
		print      func()
		useStderr  bool
		wantPrefix string
	}{
		{"info", func() { Info("installing packages") }, false, "[INFO] "},
		{"success", func() { Success("done") }, false, "[OK] "},
		{"warn", func() { Warn("docker not found") }, true, "[WARN] "},
		{"error", func() { Error("render failed") }, true, "[ERROR] "},
		{"fatal", func() { Fatal("unsupported distribution") }, true, "[FATAL] "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := capture(t, tt.useStderr, tt.print)
			if !strings.HasPrefix(out, tt.wantPrefix) {
				t.Errorf("expected prefix %q, got %q", tt.wantPrefix, out)
			}
			if !strings.HasSuffix(out, "\n") {
				t.Errorf("message should be a single line ending in newline: %q", out)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	data := map[string]interface{}{
		"domain": "example.com",
		"status": "active",
	}

	out := capture(t, false, func() {
		_ = JSON(data)
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("JSON output is invalid: %v", err)
	}
	if result["domain"] != "example.com" {
		t.Errorf("expected domain example.com, got %v", result["domain"])
	}
}

func TestPrint(t *testing.T) {
	out := capture(t, false, func() {
		Print("plain %s", "message")
	})
	if out != "plain message\n" {
		t.Errorf("unexpected output: %q", out)
	}
}
