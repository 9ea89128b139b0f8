package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/tuiarcade/internal/config"
	"github.com/verte-zerg/tuiarcade/internal/model"
)

func validConfig() model.Config {
	return model.Config{
		FPS:              defaultFPS,
		ThrowCooldownMs:  defaultThrowCooldownMs,
		SwingSeconds:     defaultSwingSeconds,
		CollectorSeconds: defaultCollectorSeconds,
		TypingSeconds:    defaultTypingSeconds,
		Summary:          "none",
	}
}

func TestValidateConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Config)
		want   string
	}{
		{"ok", func(*model.Config) {}, ""},
		{"mode", func(c *model.Config) { c.Mode = "pinball" }, "--mode"},
		{"fps", func(c *model.Config) { c.FPS = 0 }, "--fps"},
		{"cooldown", func(c *model.Config) { c.ThrowCooldownMs = -1 }, "--throw-cooldown"},
		{"typing", func(c *model.Config) { c.TypingSeconds = 0 }, "--typing-seconds"},
		{"summary", func(c *model.Config) { c.Summary = "json" }, "--summary"},
	}
	for _, tc := range cases {
		cfg := validConfig()
		tc.mutate(&cfg)
		err := validateConfig(cfg)
		if tc.want == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error about %s, got %v", tc.name, tc.want, err)
		}
	}
}

func TestConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Game.FPS != nil {
		t.Fatalf("expected commented template to set nothing")
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "tuiarcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	body := "[game]\nmode = \"collector\"\nfps = 20\nseed = 5\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("TUIARCADE_SEED", "9")

	cmd := newRootCmd()
	if err := cmd.Flags().Set("fps", "60"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	cfg, err := loadPlayConfig(cmd)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != "collector" {
		t.Fatalf("expected mode from file, got %q", cfg.Mode)
	}
	if cfg.Seed != 9 {
		t.Fatalf("expected seed from env, got %d", cfg.Seed)
	}
	if cfg.FPS != 60 {
		t.Fatalf("expected fps from flag, got %d", cfg.FPS)
	}
}

func TestBuildRulesCarriesVocabulary(t *testing.T) {
	cfg := validConfig()
	cfg.ThrowCooldownMs = 0
	rules := buildRules(cfg, []string{"dart"})
	if rules.ThrowCooldown != 0 || len(rules.Vocabulary) != 1 || rules.TypingSeconds != defaultTypingSeconds {
		t.Fatalf("unexpected rules: %+v", rules)
	}
}
