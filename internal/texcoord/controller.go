package texcoord

import "log/slog"

// TextSink displays a single line of text, replacing whatever was shown before
type TextSink interface {
	SetText(text string)
}

// Controller owns the active state and the rectangle it selects coordinates for.
type Controller struct {
	state State
	rect  *Rectangle
	label TextSink
	dirty bool
	log   *slog.Logger
}

// NewController starts in state 0 and publishes the initial label
func NewController(label TextSink, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		rect:  NewRectangle(),
		label: label,
		dirty: true,
		log:   logger,
	}
	c.publish()
	return c
}

// Advance moves to the next state, overwrites the rectangle's coordinates and
// updates the label. The rectangle stays dirty until the next upload.
func (c *Controller) Advance() State {
	c.state = c.state.Next()
	c.rect.Apply(c.state)
	c.dirty = true
	c.publish()
	c.log.Debug("texture coordinate state changed", "state", int(c.state), "coords", c.rect.TexCoords())
	return c.state
}

// State returns the active state
func (c *Controller) State() State {
	return c.state
}

// Rectangle returns the geometry driven by this controller
func (c *Controller) Rectangle() *Rectangle {
	return c.rect
}

// TakeDirty reports whether the geometry changed since the last call and
// clears the flag. Callers re-upload the whole vertex buffer when it is true.
func (c *Controller) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

func (c *Controller) publish() {
	if c.label != nil {
		c.label.SetText(Label(c.state))
	}
}
