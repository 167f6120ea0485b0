package config

import (
	"os"
	"testing"
	"time"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// Setenv registers the restore of the previous value.
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestEnvReaderDefaults(t *testing.T) {
	unsetEnv(t,
		"ENV", "HTTP_HOST", "HTTP_PORT", "PORT",
		"HTTP_READ_HEADER_TIMEOUT", "HTTP_SHUTDOWN_TIMEOUT", "CORS_ALLOWED_ORIGINS",
		"SEED_SAMPLE_TASKS", "METRICS_ENABLED", "METRICS_PATH",
	)

	cfg, err := NewEnvReader().Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if cfg.Env != EnvLocal {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvLocal)
	}
	if cfg.HTTP.Port != "5000" {
		t.Errorf("HTTP.Port = %q, want 5000", cfg.HTTP.Port)
	}
	if cfg.HTTP.ShutdownTimeout != 5*time.Second {
		t.Errorf("HTTP.ShutdownTimeout = %v, want 5s", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.Storage.SeedSampleTasks {
		t.Error("Storage.SeedSampleTasks should default to false")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics = %+v, want enabled on /metrics", cfg.Metrics)
	}
}

func TestEnvReaderOverrides(t *testing.T) {
	unsetEnv(t, "PORT", "HTTP_READ_HEADER_TIMEOUT", "METRICS_ENABLED", "METRICS_PATH")
	t.Setenv("ENV", EnvProd)
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("SEED_SAMPLE_TASKS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := NewEnvReader().Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if cfg.Env != EnvProd {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProd)
	}
	if cfg.HTTP.Port != "8081" {
		t.Errorf("HTTP.Port = %q, want 8081", cfg.HTTP.Port)
	}
	if cfg.HTTP.ShutdownTimeout != 30*time.Second {
		t.Errorf("HTTP.ShutdownTimeout = %v, want 30s", cfg.HTTP.ShutdownTimeout)
	}
	if !cfg.Storage.SeedSampleTasks {
		t.Error("Storage.SeedSampleTasks should be true")
	}

	origins := cfg.HTTP.AllowedOrigins()
	if len(origins) != 2 || origins[0] != "http://a.test" || origins[1] != "http://b.test" {
		t.Errorf("AllowedOrigins() = %v", origins)
	}
}

func TestFileReaderAppliesEnvOverFile(t *testing.T) {
	unsetEnv(t, "ENV", "PORT", "HTTP_SHUTDOWN_TIMEOUT", "SEED_SAMPLE_TASKS")
	t.Setenv("HTTP_PORT", "9090")

	path := t.TempDir() + "/config.yaml"
	content := "env: dev\nhttp:\n  port: \"7070\"\nstorage:\n  seed_sample_tasks: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := NewFileReader(path).Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if cfg.Env != EnvDev {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDev)
	}
	if cfg.HTTP.Port != "9090" {
		t.Errorf("HTTP.Port = %q, want env override 9090", cfg.HTTP.Port)
	}
	if !cfg.Storage.SeedSampleTasks {
		t.Error("Storage.SeedSampleTasks should be read from file")
	}
}

func TestFileReaderMissingFile(t *testing.T) {
	_, err := NewFileReader(t.TempDir() + "/missing.yaml").Read()
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestFileReaderDisablesMetrics(t *testing.T) {
	unsetEnv(t, "ENV", "METRICS_ENABLED", "METRICS_PATH")

	path := t.TempDir() + "/config.yaml"
	content := "env: prod\nmetrics:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := NewFileReader(path).Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false from file")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics.Path = %q, want default /metrics", cfg.Metrics.Path)
	}
}

func TestEnvReaderDisablesMetrics(t *testing.T) {
	unsetEnv(t, "METRICS_PATH")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := NewEnvReader().Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false from env")
	}
}
