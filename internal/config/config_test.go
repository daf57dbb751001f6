package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"contentgen/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("CONTENTGEN_OUTPUT_DIR", "")
	t.Chdir(tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantHistory := filepath.Join(tempHome, ".local", "share", "contentgen", "history")
	if cfg.Paths.HistoryDir != wantHistory {
		t.Fatalf("unexpected history dir: got %q want %q", cfg.Paths.HistoryDir, wantHistory)
	}
	if !filepath.IsAbs(cfg.Paths.OutputDir) {
		t.Fatalf("expected absolute output dir, got %q", cfg.Paths.OutputDir)
	}
	if cfg.Defaults.Template != "ct2022" {
		t.Fatalf("unexpected default template: %q", cfg.Defaults.Template)
	}
	if cfg.Source.FetchTimeout != 30 {
		t.Fatalf("unexpected fetch timeout: %d", cfg.Source.FetchTimeout)
	}
	if cfg.Generator.Strict {
		t.Fatal("expected strict mode disabled by default")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.HistoryDir, cfg.Paths.StateDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
	if _, err := os.Stat(cfg.Paths.OutputDir); !os.IsNotExist(err) {
		t.Fatalf("expected output dir to be created lazily, stat err=%v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "contentgen.toml")

	type payload struct {
		Paths struct {
			OutputDir string `toml:"output_dir"`
		} `toml:"paths"`
		Defaults struct {
			Template string `toml:"template"`
			Input    string `toml:"input"`
		} `toml:"defaults"`
		Source struct {
			FetchTimeout int `toml:"fetch_timeout"`
		} `toml:"source"`
	}
	custom := payload{}
	custom.Paths.OutputDir = filepath.Join(tempDir, "subjects")
	custom.Defaults.Template = " IT2023 "
	custom.Defaults.Input = "course.xlsx"
	custom.Source.FetchTimeout = 5
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}
	t.Setenv("CONTENTGEN_OUTPUT_DIR", "")

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.OutputDir != custom.Paths.OutputDir {
		t.Fatalf("expected output dir from file, got %q", cfg.Paths.OutputDir)
	}
	if cfg.Defaults.Template != "it2023" {
		t.Fatalf("expected normalized template, got %q", cfg.Defaults.Template)
	}
	if cfg.Defaults.Input != "course.xlsx" {
		t.Fatalf("expected input default, got %q", cfg.Defaults.Input)
	}
	if cfg.Source.FetchTimeout != 5 {
		t.Fatalf("expected fetch timeout 5, got %d", cfg.Source.FetchTimeout)
	}
}

func TestEnvVarOverridesOutputDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "from-env")
	t.Setenv("CONTENTGEN_OUTPUT_DIR", target)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.OutputDir != target {
		t.Fatalf("expected output dir from env, got %q", cfg.Paths.OutputDir)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "output_dir") {
		t.Fatalf("sample config missing output_dir: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Defaults.Template != "ct2022" {
		t.Fatalf("expected sample template ct2022, got %q", cfg.Defaults.Template)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected sample to enable history")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("CONTENTGEN_OUTPUT_DIR", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(dir, "out")
	cfg.Defaults.Input = "https://docs.google.com/spreadsheets/d/abc/edit#gid=7"
	cfg.Defaults.Template = "it2023"
	if err := config.Save(path, &cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected saved config to exist")
	}
	if loaded.Defaults.Input != cfg.Defaults.Input {
		t.Fatalf("input not persisted: %q", loaded.Defaults.Input)
	}
	if loaded.Defaults.Template != "it2023" {
		t.Fatalf("template not persisted: %q", loaded.Defaults.Template)
	}
	if loaded.Paths.OutputDir != cfg.Paths.OutputDir {
		t.Fatalf("output dir not persisted: %q", loaded.Paths.OutputDir)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Defaults.Template = "fancy"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown template")
	}

	cfg = config.Default()
	cfg.Source.FetchTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive fetch timeout")
	}

	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = config.Default()
	cfg.Paths.HistoryDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when history dir missing with json files enabled")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}
