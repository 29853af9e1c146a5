package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gurukul.yaml")
	content := `app:
  name: gurukul-test
providers:
  ollama:
    model: llama3
    base_url: http://localhost:11434
    enabled: true
storage:
  path: /tmp/test.db
generator:
  language: Hindi
  assessment_questions: 5
  lenient: true
  workers: 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.Name != "gurukul-test" {
		t.Errorf("app.name = %q", cfg.App.Name)
	}
	if cfg.Storage.Path != "/tmp/test.db" {
		t.Errorf("storage.path = %q", cfg.Storage.Path)
	}
	if cfg.Generator.Language != "Hindi" || cfg.Generator.AssessmentQuestions != 5 {
		t.Errorf("generator config not decoded: %+v", cfg.Generator)
	}
	if !cfg.Generator.Lenient || cfg.Generator.Workers != 3 {
		t.Errorf("generator config not decoded: %+v", cfg.Generator)
	}
	// Unset keys keep their defaults.
	if cfg.Generator.MaxRetries != 5 {
		t.Errorf("generator.max_retries default = %d, want 5", cfg.Generator.MaxRetries)
	}

	name, p := cfg.DefaultProvider()
	if name != "ollama" || p.Model != "llama3" {
		t.Errorf("default provider = %s / %+v", name, p)
	}
}

func TestLoadDefaults(t *testing.T) {
	// An empty explicit file exercises the defaults without depending
	// on whatever gurukul.yaml happens to sit in the working directory.
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.Name != "gurukul" {
		t.Errorf("app.name default = %q", cfg.App.Name)
	}
	if cfg.Storage.Path != "gurukul.db" {
		t.Errorf("storage.path default = %q", cfg.Storage.Path)
	}
	if cfg.Generator.Language != "English" {
		t.Errorf("generator.language default = %q", cfg.Generator.Language)
	}
	if cfg.Generator.AssessmentQuestions != 10 || cfg.Generator.Workers != 1 {
		t.Errorf("generator defaults wrong: %+v", cfg.Generator)
	}

	name, _ := cfg.DefaultProvider()
	if name != "" {
		t.Errorf("no provider should be enabled by default, got %q", name)
	}
}

func TestDefaultProviderStableOrder(t *testing.T) {
	cfg := &Config{Providers: map[string]ProviderConfig{
		"openai": {Model: "gpt-4o", Enabled: true},
		"ollama": {Model: "llama3", Enabled: true},
		"aaa":    {Model: "disabled", Enabled: false},
	}}

	for i := 0; i < 10; i++ {
		name, p := cfg.DefaultProvider()
		if name != "ollama" || p.Model != "llama3" {
			t.Fatalf("run %d: default provider = %s / %+v, want first enabled in name order", i, name, p)
		}
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit missing path should fail")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("GURUKUL_GENERATOR_LANGUAGE", "Tamil")

	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Generator.Language != "Tamil" {
		t.Errorf("env override not applied, got %q", cfg.Generator.Language)
	}
}
