package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_MODE", "COURSE_DATA_DIR", "PREFERENCE_STORE", "SPEECH_LANG", "SPEECH_RATE",
		"REDIS_ADDR", "REDIS_PREFERENCE_TTL_SECONDS", "CORS_ALLOWED_ORIGINS", "POSTGRES_USER",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" || cfg.PreferenceStore != StoreSQLite {
		t.Fatalf("defaults: got port=%q store=%q", cfg.Port, cfg.PreferenceStore)
	}
	if cfg.Speech.Lang != "nl-NL" || cfg.Speech.Rate != 0.85 {
		t.Fatalf("speech defaults: got=%+v", cfg.Speech)
	}
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "course.yaml")
	yml := `
port: "9000"
dataDir: /srv/course
preferenceStore: memory
speech:
  lang: nl-be
  rate: 1.0
redis:
  ttl: 2h
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("PORT", "9100")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9100" {
		t.Fatalf("env must win: want=9100 got=%s", cfg.Port)
	}
	if cfg.DataDir != "/srv/course" || cfg.PreferenceStore != StoreMemory {
		t.Fatalf("file values: got dir=%q store=%q", cfg.DataDir, cfg.PreferenceStore)
	}
	if cfg.Speech.Lang != "nl-BE" {
		t.Fatalf("canonical lang: want=nl-BE got=%s", cfg.Speech.Lang)
	}
	if cfg.Redis.TTL != 2*time.Hour {
		t.Fatalf("ttl: want=2h got=%s", cfg.Redis.TTL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins: got=%v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown store", map[string]string{"PREFERENCE_STORE": "mongo"}, "PreferenceStore"},
		{"bad rate", map[string]string{"SPEECH_RATE": "5"}, "Rate"},
		{"bad lang", map[string]string{"SPEECH_LANG": "not a tag!"}, "speech language"},
		{"bad port", map[string]string{"PORT": "http"}, "Port"},
		{"redis without addr", map[string]string{"PREFERENCE_STORE": "redis"}, "REDIS_ADDR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig("")
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error: want containing %q got=%v", tc.want, err)
			}
		})
	}
}
