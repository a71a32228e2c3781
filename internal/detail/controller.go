package detail

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/san-kum/orrery/internal/assets"
	"github.com/san-kum/orrery/internal/solar"
)

var ErrNoView = errors.New("detail: no such view")

// TextureSource is satisfied by *assets.Loader.
type TextureSource interface {
	Load(id solar.BodyID) (*assets.Texture, error)
}

// Observer is told about every view opened, and whether it fell back to a
// flat colour.
type Observer interface {
	OnOpen(id solar.BodyID, fallback bool)
}

// Controller owns the open inspectors. Views are never deduplicated; picking
// the same body twice opens two.
type Controller struct {
	catalog   *solar.Catalog
	textures  TextureSource
	views     map[string]*View
	order     []string
	observers []Observer
	log       *slog.Logger
}

func NewController(catalog *solar.Catalog, textures TextureSource, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		catalog:  catalog,
		textures: textures,
		views:    make(map[string]*View),
		log:      log,
	}
}

func (c *Controller) AddObserver(o Observer) { c.observers = append(c.observers, o) }

// Open creates a view for id and returns its handle. Unknown ids return "".
// A missing or broken texture is logged and the view falls back to the
// body's flat colour.
func (c *Controller) Open(id solar.BodyID) string {
	body, ok := c.catalog.Body(id)
	if !ok {
		c.log.Warn("open detail for unknown body", "body", id)
		return ""
	}

	v := &View{
		ID:   uuid.New().String(),
		Body: body,
		Rows: append([]solar.InfoRow(nil), body.Info...),
	}
	if c.textures != nil {
		tex, err := c.textures.Load(id)
		if err != nil {
			c.log.Warn("texture unavailable, using flat colour", "body", id, "err", err)
		} else {
			v.Texture = tex
		}
	}

	c.views[v.ID] = v
	c.order = append(c.order, v.ID)
	c.log.Info("detail opened", "body", id, "view", v.ID, "textured", !v.Fallback())
	for _, o := range c.observers {
		o.OnOpen(id, v.Fallback())
	}
	return v.ID
}

// View returns the open view with the given handle.
func (c *Controller) View(handle string) (*View, bool) {
	v, ok := c.views[handle]
	return v, ok
}

// Tick advances one view. A closed view reports false so its tick chain can
// stop.
func (c *Controller) Tick(handle string) (float64, bool) {
	v, ok := c.views[handle]
	if !ok {
		return 0, false
	}
	return v.Tick(), true
}

func (c *Controller) Close(handle string) error {
	if _, ok := c.views[handle]; !ok {
		return ErrNoView
	}
	delete(c.views, handle)
	for i, h := range c.order {
		if h == handle {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.log.Info("detail closed", "view", handle)
	return nil
}

// Views lists open views oldest first.
func (c *Controller) Views() []*View {
	out := make([]*View, 0, len(c.order))
	for _, h := range c.order {
		out = append(out, c.views[h])
	}
	return out
}

func (c *Controller) Len() int { return len(c.order) }

// Front is the most recently opened or raised view.
func (c *Controller) Front() (*View, bool) {
	if len(c.order) == 0 {
		return nil, false
	}
	return c.views[c.order[len(c.order)-1]], true
}

// Raise moves the oldest view to the front and returns it.
func (c *Controller) Raise() (*View, bool) {
	if len(c.order) == 0 {
		return nil, false
	}
	c.order = append(c.order[1:], c.order[0])
	return c.Front()
}
