package overlay

import (
	"path/filepath"

	"gldemos/internal/graphics"
	renderer "gldemos/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/font"
	fontPixels = 20
	margin     = 10
)

// Text is a single line of text drawn in the top-left corner.
// SetText may be called before Init; the latest string wins.
type Text struct {
	shadersDir string
	text       string
	color      mgl32.Vec3
	fr         *graphics.FontRenderer
}

// NewText creates an overlay; shadersDir holds font.vert and font.frag
func NewText(shadersDir, initial string) *Text {
	if shadersDir == "" {
		shadersDir = ShadersDir
	}
	return &Text{shadersDir: shadersDir, text: initial, color: mgl32.Vec3{1, 1, 1}}
}

// SetText replaces the displayed string
func (t *Text) SetText(text string) {
	t.text = text
}

// Text returns the displayed string
func (t *Text) Text() string {
	return t.text
}

func (t *Text) Init() error {
	atlas, err := graphics.BakeDefaultFontAtlas(fontPixels)
	if err != nil {
		return err
	}
	t.fr, err = graphics.NewFontRenderer(atlas,
		filepath.Join(t.shadersDir, "font.vert"),
		filepath.Join(t.shadersDir, "font.frag"))
	return err
}

func (t *Text) Render(ctx renderer.RenderContext) {
	if t.text == "" {
		return
	}
	_, h := t.fr.Measure(t.text, 1)
	t.fr.Render(t.text, margin, margin+h, 1, t.color)
}

func (t *Text) Dispose() {
	if t.fr != nil {
		t.fr.Dispose()
		t.fr = nil
	}
}

func (t *Text) SetViewport(width, height int) {
	if t.fr != nil {
		t.fr.SetViewport(float32(width), float32(height))
	}
}
