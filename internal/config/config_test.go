package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir mirrors t.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestNormalizeDirArg(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/data/comics/", "/data/comics"},
		{"/data/comics///", "/data/comics"},
		{"/data/comics", "/data/comics"},
		{"/", "/"},
		{".", "."},
	}
	for _, tt := range cases {
		if got := NormalizeDirArg(tt.in); got != tt.want {
			t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	cfg.ColorMode = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Error("invalid color mode accepted")
	}

	cfg = DefaultConfig()
	cfg.TargetDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty target directory accepted")
	}
}

func TestLoadExternalDir_FromDotenv(t *testing.T) {
	dir := t.TempDir()
	env := "# archive location\n" + ExternalDirKey + "=\"/mnt/archive/comics\"\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	t.Setenv(ExternalDirKey, "/should/not/win")

	if got := LoadExternalDir(); got != "/mnt/archive/comics" {
		t.Errorf("LoadExternalDir() = %q, want %q", got, "/mnt/archive/comics")
	}
}

func TestLoadExternalDir_EnvFallback(t *testing.T) {
	chdir(t, t.TempDir()) // no .env here
	t.Setenv(ExternalDirKey, "/mnt/archive/comics")

	if got := LoadExternalDir(); got != "/mnt/archive/comics" {
		t.Errorf("LoadExternalDir() = %q, want %q", got, "/mnt/archive/comics")
	}
}

func TestLoadExternalDir_Unset(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(ExternalDirKey, "")

	if got := LoadExternalDir(); got != "" {
		t.Errorf("LoadExternalDir() = %q, want empty", got)
	}
}
