package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_DSN", "APP_ENV", "SESSION_SECRET", "ADMIN_EMAIL", "ADMIN_PASSWORD", "UPLOAD_DIR", "CONFIG_FILE"} {
		os.Unsetenv(k)
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("default port = %q", cfg.Port)
	}
	if cfg.AdminEmail != "admin@gmail.com" {
		t.Errorf("default admin email = %q", cfg.AdminEmail)
	}
	if cfg.UploadDir != "uploads/resumes" {
		t.Errorf("default upload dir = %q", cfg.UploadDir)
	}
}

func TestLoadEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	data := "port: \"9999\"\nadmin_email: file@jobportal.com\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7777")

	cfg := Load()
	if cfg.Port != "7777" {
		t.Errorf("env PORT must win, got %q", cfg.Port)
	}
	if cfg.AdminEmail != "file@jobportal.com" {
		t.Errorf("file admin email should apply, got %q", cfg.AdminEmail)
	}
}

func TestParseBool(t *testing.T) {
	t.Setenv("FLAG_OK", "true")
	t.Setenv("FLAG_BAD", "banana")
	if !ParseBool("FLAG_OK", false) {
		t.Error("true should parse")
	}
	if ParseBool("FLAG_BAD", false) {
		t.Error("garbage should fall back to default")
	}
	if !ParseBool("FLAG_MISSING", true) {
		t.Error("missing should use default")
	}
}
