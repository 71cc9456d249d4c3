package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	defaults := TexcoordDefaults()
	s, err := Load(filepath.Join(t.TempDir(), "nope.yml"), defaults)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != defaults {
		t.Errorf("expected defaults, got %+v", s)
	}

	s, err = Load("", defaults)
	if err != nil || s != defaults {
		t.Errorf("empty path: got %+v, %v", s, err)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 800
texture:
  wrap: clamp
fps_limit: 60
`)
	s, err := Load(path, TexcoordDefaults())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Window.Width != 800 {
		t.Errorf("width = %d, want 800", s.Window.Width)
	}
	if s.Window.Height != 700 {
		t.Errorf("height = %d, want default 700", s.Window.Height)
	}
	if s.Texture.Wrap != "clamp" {
		t.Errorf("wrap = %q, want clamp", s.Texture.Wrap)
	}
	if s.Texture.Filter != "linear" {
		t.Errorf("filter = %q, want default linear", s.Texture.Filter)
	}
	if s.FPSLimit != 60 {
		t.Errorf("fps_limit = %d, want 60", s.FPSLimit)
	}
	if s.Assets.Texture != "assets/textures/balloon.png" {
		t.Errorf("texture path changed: %q", s.Assets.Texture)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"wrap":   "texture:\n  wrap: spiral\n",
		"filter": "texture:\n  filter: cubic\n",
		"size":   "window:\n  width: 0\n",
		"color":  "clear_color: [2, 0, 0, 1]\n",
		"syntax": "window: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			defaults := QuadrantDefaults()
			s, err := Load(writeConfig(t, body), defaults)
			if err == nil {
				t.Fatalf("expected error for %q", body)
			}
			if s != defaults {
				t.Errorf("expected defaults on error, got %+v", s)
			}
		})
	}
}

func TestLoadRejectsOversizedFile(t *testing.T) {
	path := writeConfig(t, "# "+strings.Repeat("x", maxFileSize)+"\n")
	if _, err := Load(path, QuadrantDefaults()); err == nil {
		t.Fatal("expected size error")
	}
}

func TestSetFPSLimitClamps(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("GetFPSLimit() = %d, want 0", got)
	}
	SetFPSLimit(5000)
	if got := GetFPSLimit(); got != 1000 {
		t.Errorf("GetFPSLimit() = %d, want 1000", got)
	}
	SetFPSLimit(144)
	if got := GetFPSLimit(); got != 144 {
		t.Errorf("GetFPSLimit() = %d, want 144", got)
	}
}

func TestApply(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())
	defer SetVSync(GetVSync())

	s := QuadrantDefaults()
	s.FPSLimit = 30
	s.VSync = false
	Apply(s)
	if GetFPSLimit() != 30 || GetVSync() {
		t.Errorf("Apply did not copy frame settings: limit=%d vsync=%v", GetFPSLimit(), GetVSync())
	}
}
