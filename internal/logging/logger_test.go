package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/backmassage/slugren/internal/config"
	"github.com/backmassage/slugren/internal/term"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "slugren.log")
	var console bytes.Buffer
	l, err := New(&cfg, &console)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	l.Blank()
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if bytes.Count(b, []byte("\n")) != 1 {
		t.Errorf("blank lines should not reach the log file: %q", string(b))
	}
}

func TestLogger_LevelsAndDebugGate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	var buf bytes.Buffer
	l, err := New(&cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}
	l.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }

	l.Success("done %d", 3)
	l.Warn("careful")
	l.Error("boom")
	l.Debug(false, "hidden")
	l.Debug(true, "shown")

	got := buf.String()
	for _, want := range []string{
		"2024-03-01 09:30:00 [SUCCESS] done 3\n",
		"[WARN] careful\n",
		"[ERROR] boom\n",
		"[DEBUG] shown\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "hidden") {
		t.Error("Debug(false, ...) should be a no-op")
	}
}

func TestLogger_Colored(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorAlways
	t.Cleanup(func() {
		off := config.DefaultConfig()
		off.ColorMode = config.ColorNever
		_, _ = New(&off, &bytes.Buffer{})
	})
	var buf bytes.Buffer
	l, err := New(&cfg, &buf)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hello")
	if !strings.Contains(buf.String(), "\033[1;94m[INFO]\033[0m hello") {
		t.Errorf("expected colored level tag, got %q", buf.String())
	}
}

func TestLogger_FileStaysPlain(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorAlways
	cfg.LogFile = filepath.Join(dir, "slugren.log")
	t.Cleanup(func() { term.Configure(config.ColorNever) })

	var console bytes.Buffer
	l, err := New(&cfg, &console)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("  %s %s", term.Paint(term.Arrow, "->"), term.Paint(term.NewName, `"a.txt"`))
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(console.String(), "\033[1;96m->\033[0m") {
		t.Errorf("console should keep colors: %q", console.String())
	}
	b, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "\033[") {
		t.Errorf("log file has escape sequences: %q", string(b))
	}
	if !strings.Contains(string(b), `[INFO]   -> "a.txt"`) {
		t.Errorf("log file content: %q", string(b))
	}
}
