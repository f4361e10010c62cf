package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TabStop != TabStopDefault {
		t.Fatalf("expected tab stop %d, got %d", TabStopDefault, cfg.TabStop)
	}
	if cfg.QuitTimes != QuitTimesDefault {
		t.Fatalf("expected quit times %d, got %d", QuitTimesDefault, cfg.QuitTimes)
	}
	if cfg.MessageTimeout != MessageTimeoutDefault {
		t.Fatalf("expected timeout %v, got %v", MessageTimeoutDefault, cfg.MessageTimeout)
	}
	if cfg.CommandCapacity != CommandCapacityDefault {
		t.Fatalf("expected capacity %d, got %d", CommandCapacityDefault, cfg.CommandCapacity)
	}
	if len(cfg.Profiles) != 2 {
		t.Fatalf("expected built-in profiles, got %d", len(cfg.Profiles))
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
tab_stop = 4
quit_times = 3
message_timeout = "2s"
command_capacity = 64

[[syntax]]
filetype = "py"
match = [".py"]
numbers = true
strings = false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TabStop != 4 || cfg.QuitTimes != 3 || cfg.CommandCapacity != 64 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.MessageTimeout != 2*time.Second {
		t.Fatalf("expected 2s timeout, got %v", cfg.MessageTimeout)
	}
	if len(cfg.Profiles) != 1 {
		t.Fatalf("expected profiles to be replaced, got %d", len(cfg.Profiles))
	}
	p := cfg.Profiles[0]
	if p.FileType != "py" || len(p.Match) != 1 || p.Match[0] != ".py" || !p.Numbers || p.Strings {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tab_stop = = 4"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseNormalisesInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		check func(Config) bool
	}{
		{"zero tab stop", "tab_stop = 0", func(c Config) bool { return c.TabStop == TabStopDefault }},
		{"negative quit times", "quit_times = -2", func(c Config) bool { return c.QuitTimes == QuitTimesDefault }},
		{"zero quit times kept", "quit_times = 0", func(c Config) bool { return c.QuitTimes == 0 }},
		{"bad duration", `message_timeout = "soon"`, func(c Config) bool { return c.MessageTimeout == MessageTimeoutDefault }},
		{"negative duration", `message_timeout = "-1s"`, func(c Config) bool { return c.MessageTimeout == MessageTimeoutDefault }},
		{"zero capacity", "command_capacity = 0", func(c Config) bool { return c.CommandCapacity == CommandCapacityDefault }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if !tt.check(cfg) {
				t.Fatalf("value not normalised: %+v", cfg)
			}
		})
	}
}

func TestPathHonoursEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZOR_CONFIG_DIR", dir)
	if got, want := Path(), filepath.Join(dir, "config.toml"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
