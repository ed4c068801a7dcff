// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, environment overrides, defaults,
//              discovery, validation and file watching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Discovery, validation and fsnotify tests

package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

const tomlContent = `
[align]
least_blank = 4
separator = " | "
east_asian = true
cjk_width = 1.8

[table]
border = "rounded"
columns = ["name", "count"]
timeout = "2s"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, tempDir, "textkit.toml", tomlContent))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.GetInt("align.least_blank"); got != 4 {
			t.Errorf("GetInt(align.least_blank) = %d, want 4", got)
		}
		if got := cfg.GetString("align.separator"); got != " | " {
			t.Errorf("GetString(align.separator) = %q, want %q", got, " | ")
		}
		if !cfg.GetBool("align.east_asian") {
			t.Error("GetBool(align.east_asian) = false, want true")
		}
		if got := cfg.GetFloat("align.cjk_width"); got != 1.8 {
			t.Errorf("GetFloat(align.cjk_width) = %v, want 1.8", got)
		}
		if got := cfg.GetDuration("table.timeout"); got != 2*time.Second {
			t.Errorf("GetDuration(table.timeout) = %v, want 2s", got)
		}
		cols := cfg.GetStringSlice("table.columns")
		if strings.Join(cols, ",") != "name,count" {
			t.Errorf("GetStringSlice(table.columns) = %v", cols)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v, want toml", cfg.Format())
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		yamlContent := "align:\n  least_blank: 2\ntable:\n  border: normal\n"
		cfg, err := Load(writeFile(t, tempDir, "textkit.yml", yamlContent))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if got := cfg.GetInt("align.least_blank"); got != 2 {
			t.Errorf("GetInt(align.least_blank) = %d, want 2", got)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "absent.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Load(absent) error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
			t.Errorf("Load(blank) error = %v, want MISSING_CONFIG", err)
		}
	})

	t.Run("invalid TOML", func(t *testing.T) {
		_, err := Load(writeFile(t, tempDir, "broken.toml", "[align\nleast_blank ="))
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("Load(broken) error = %v, want INVALID_CONFIG", err)
		}
	})
}

func TestEnvironmentVariables(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	cfg.envPrefix = "textkit"

	if got := cfg.EnvKey("align.least_blank"); got != "TEXTKIT_ALIGN_LEAST_BLANK" {
		t.Errorf("EnvKey() = %q", got)
	}

	t.Setenv("TEXTKIT_ALIGN_LEAST_BLANK", "8")
	t.Setenv("TEXTKIT_TABLE_COLUMNS", "a, b ,c")
	t.Setenv("TEXTKIT_ALIGN_EAST_ASIAN", "not-a-bool")

	if got := cfg.GetInt("align.least_blank"); got != 8 {
		t.Errorf("env override: GetInt() = %d, want 8", got)
	}
	if got := cfg.GetStringSlice("table.columns"); strings.Join(got, "|") != "a|b|c" {
		t.Errorf("env override: GetStringSlice() = %v", got)
	}
	if !cfg.GetBool("align.east_asian") {
		t.Error("an unparsable override should fall back to the file value")
	}
}

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "textkit.toml", "[align]\nleast_blank = 6\n")

	cfg, err := LoadWithOptions(path, LoadOptions{
		Defaults: map[string]interface{}{
			"align": map[string]interface{}{"least_blank": 4, "tab_width": 4},
			"shorten": map[string]interface{}{"width": 200},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetInt("align.least_blank"); got != 6 {
		t.Errorf("file value should win over default, got %d", got)
	}
	if got := cfg.GetInt("align.tab_width"); got != 4 {
		t.Errorf("nested default lost, got %d", got)
	}
	if got := cfg.GetInt("shorten.width"); got != 200 {
		t.Errorf("top level default lost, got %d", got)
	}
	if got := cfg.GetInt("absent.key", 9); got != 9 {
		t.Errorf("call-site default ignored, got %d", got)
	}
}

func TestHasSetKeys(t *testing.T) {
	cfg := New("", nil)

	if cfg.Has("log.level") {
		t.Error("Has() on empty config should be false")
	}

	cfg.Set("log.level", "debug")
	cfg.Set("log.format", "text")
	cfg.Set("align.least_blank", 3)

	if !cfg.Has("log.level") || cfg.GetString("log.level") != "debug" {
		t.Error("Set() value not visible")
	}

	want := "align.least_blank,log.format,log.level"
	if got := strings.Join(cfg.Keys(), ","); got != want {
		t.Errorf("Keys() = %q, want %q", got, want)
	}

	all := cfg.GetAll()
	all["log"].(map[string]interface{})["level"] = "trace"
	if cfg.GetString("log.level") != "debug" {
		t.Error("GetAll() must return a copy")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	opts := DiscoveryOptions{
		Paths:     []string{filepath.Join(dir, "missing"), dir},
		Filenames: []string{"textkit"},
		EnvPrefix: "textkit",
		Defaults:  map[string]interface{}{"shorten": map[string]interface{}{"placeholder": "..."}},
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() without file should not fail: %v", err)
	}
	if cfg.FilePath() != "" || cfg.GetString("shorten.placeholder") != "..." {
		t.Errorf("expected defaults only, got %s", cfg)
	}

	opts.Required = true
	if _, err := Discover(opts); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("required discovery error = %v, want NOT_FOUND", err)
	}

	path := writeFile(t, dir, "textkit.yaml", "shorten:\n  width: 40\n")
	cfg, err = Discover(opts)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}
	if cfg.GetInt("shorten.width") != 40 || cfg.GetString("shorten.placeholder") != "..." {
		t.Errorf("unexpected values: %v", cfg.GetAll())
	}

	if n := len(ListPossibleConfigFiles(opts)); n != 6 {
		t.Errorf("ListPossibleConfigFiles() returned %d paths, want 6", n)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	ok := ValidationRules{
		"align.least_blank": {Type: "int", Min: Bound(1), Max: Bound(32)},
		"align.cjk_width":   {Type: "float", Min: Bound(1)},
		"align.east_asian":  {Type: "bool"},
		"table.border":      {Type: "string", OneOf: []string{"normal", "Rounded"}},
		"log.level":         {Type: "string"},
	}
	if err := cfg.Validate(ok); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	bad := ValidationRules{
		"align.least_blank": {Type: "int", Min: Bound(5)},
		"table.border":      {Type: "string", OneOf: []string{"normal"}},
		"log.level":         {Required: true},
		"align.separator":   {Type: "int"},
	}
	err = cfg.Validate(bad)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Fatalf("Validate() error = %v, want INVALID_CONFIG", err)
	}
	mdwErr := err.(*mdwerror.Error)
	keys, _ := mdwErr.Details()["keys"].([]string)
	if strings.Join(keys, ",") != "align.least_blank,align.separator,log.level,table.border" {
		t.Errorf("reported keys = %v", keys)
	}
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString("log:\n  level: debug\n", FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GetString("log.level") != "debug" {
		t.Error("LoadFromString(yaml) lost values")
	}

	empty, err := LoadFromString("", FormatYAML)
	if err != nil || empty.Has("log") {
		t.Errorf("empty YAML should load as empty config, err = %v", err)
	}

	if _, err := LoadFromString("a = [", FormatAuto); err == nil {
		t.Error("invalid TOML should fail")
	}
}

func TestFormatDetection(t *testing.T) {
	tests := map[string]Format{
		"a.toml": FormatTOML,
		"a.YAML": FormatYAML,
		"a.yml":  FormatYAML,
		"a.conf": FormatTOML,
	}
	for path, want := range tests {
		if got := detectFormat(path); got != want {
			t.Errorf("detectFormat(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "textkit.toml", "[align]\nleast_blank = 4\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	changed := make(chan int, 4)
	cfg.OnChange(func(oldCfg, newCfg *Config) {
		changed <- newCfg.GetInt("align.least_blank")
	})

	if err := cfg.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer cfg.StopWatching()

	if !cfg.IsWatching() {
		t.Error("IsWatching() = false after Watch()")
	}

	writeFile(t, dir, "textkit.toml", "[align]\nleast_blank = 7\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case v := <-changed:
			if v == 7 {
				if cfg.GetInt("align.least_blank") != 7 {
					t.Error("config data not updated")
				}
				cfg.StopWatching()
				if cfg.IsWatching() {
					t.Error("IsWatching() = true after StopWatching()")
				}
				return
			}
		case <-deadline:
			t.Fatal("no change notification received")
		}
	}
}

func TestStopWatchingFromHandler(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "textkit.toml", "[align]\nleast_blank = 4\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	stopped := make(chan struct{})
	var once sync.Once
	cfg.OnChange(func(oldCfg, newCfg *Config) {
		once.Do(func() {
			cfg.StopWatching()
			close(stopped)
		})
	})

	if err := cfg.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer cfg.StopWatching()

	writeFile(t, dir, "textkit.toml", "[align]\nleast_blank = 9\n")

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("StopWatching() from a change handler did not return")
	}
	if cfg.IsWatching() {
		t.Error("IsWatching() = true after StopWatching() in handler")
	}
}

func TestWatchWithoutFile(t *testing.T) {
	cfg := New("", nil)
	if err := cfg.Watch(); !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("Watch() without file error = %v, want MISSING_CONFIG", err)
	}
}

func BenchmarkGetInt(b *testing.B) {
	cfg, _ := LoadFromString(tomlContent, FormatTOML)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.GetInt("align.least_blank")
	}
}
