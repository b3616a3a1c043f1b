package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults failed: %v", err)
	}
	th := cfg.Thresholds
	if th.MinOriginality != 70 || th.MaxAITone != 30 || th.MinHumanity != 60 {
		t.Errorf("unexpected default thresholds: %+v", th)
	}
	if th.StrictSourceTrace {
		t.Error("strict source trace should default to off")
	}
	if cfg.RetentionDuration() != 90*24*time.Hour {
		t.Errorf("unexpected default retention: %v", cfg.RetentionDuration())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Thresholds.MinOriginality != 70 {
		t.Errorf("expected default thresholds, got %+v", cfg.Thresholds)
	}
	// First run writes the defaults out for editing.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults written to %s: %v", path, err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `thresholds:
  min_originality: 80
  max_ai_tone: 25
  min_humanity: 65
  strict_source_trace: true
retention: 30d
feeds:
  - name: "Drafts"
    type: rss
    url: "https://example.com/drafts.xml"
    enabled: true
  - name: "Archive"
    type: atom
    url: "https://example.com/archive.xml"
    enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Thresholds.MinOriginality != 80 || !cfg.Thresholds.StrictSourceTrace {
		t.Errorf("thresholds not loaded: %+v", cfg.Thresholds)
	}
	if cfg.RetentionDuration() != 30*24*time.Hour {
		t.Errorf("retention not loaded: %v", cfg.RetentionDuration())
	}
	enabled := cfg.EnabledFeeds()
	if len(enabled) != 1 || enabled[0].Name != "Drafts" {
		t.Errorf("expected one enabled feed, got %+v", enabled)
	}
}

func TestRetentionDuration(t *testing.T) {
	tests := []struct {
		retention string
		want      time.Duration
	}{
		{"", 90 * 24 * time.Hour},
		{"30d", 30 * 24 * time.Hour},
		{"720h", 720 * time.Hour},
		{"garbage", 90 * 24 * time.Hour},
	}
	for _, tt := range tests {
		cfg := Config{Retention: tt.retention}
		if got := cfg.RetentionDuration(); got != tt.want {
			t.Errorf("RetentionDuration(%q) = %v, want %v", tt.retention, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "threshold out of range",
			cfg:     Config{Thresholds: Thresholds{MinOriginality: 150}},
			wantErr: "out of range",
		},
		{
			name: "feed missing name",
			cfg: Config{Feeds: []Feed{
				{Type: "rss", URL: "https://example.com/a.xml"},
			}},
			wantErr: "name is required",
		},
		{
			name: "feed missing url",
			cfg: Config{Feeds: []Feed{
				{Name: "A", Type: "rss"},
			}},
			wantErr: "url is required",
		},
		{
			name: "feed bad scheme",
			cfg: Config{Feeds: []Feed{
				{Name: "A", Type: "rss", URL: "ftp://example.com/a.xml"},
			}},
			wantErr: "scheme",
		},
		{
			name: "feed bad type",
			cfg: Config{Feeds: []Feed{
				{Name: "A", Type: "json", URL: "https://example.com/a.xml"},
			}},
			wantErr: "unknown type",
		},
		{
			name: "valid",
			cfg: Config{
				Thresholds: Thresholds{MinOriginality: 70, MaxAITone: 30, MinHumanity: 60},
				Feeds: []Feed{
					{Name: "A", Type: "rss", URL: "https://example.com/a.xml", Enabled: true},
				},
			},
		},
	}
	for _, tt := range tests {
		err := validate(&tt.cfg)
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tt.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: error = %v, want substring %q", tt.name, err, tt.wantErr)
		}
	}
}
