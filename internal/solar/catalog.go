package solar

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SunID identifies the fixed body at the origin.
const SunID BodyID = "Sun"

// BodyID is the stable identifier of a plotted body.
type BodyID string

func (id BodyID) String() string { return string(id) }

// InfoRow is one key/value line of a body's info panel.
type InfoRow struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

type Body struct {
	ID    BodyID    `yaml:"id" json:"id"`
	Color string    `yaml:"color" json:"color"`
	Size  float64   `yaml:"size" json:"size"`
	Info  []InfoRow `yaml:"info" json:"info"`
}

// Catalog is the immutable, ordered set of known bodies.
type Catalog struct {
	bodies []Body
	index  map[BodyID]int
}

//go:embed catalog.yaml
var defaultCatalog []byte

// DefaultCatalog returns the embedded Sun + eight planets catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog reads a catalog YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var doc struct {
		Bodies []Body `yaml:"bodies"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return NewCatalog(doc.Bodies)
}

// NewCatalog builds a catalog; ids must be unique and the Sun must be present.
func NewCatalog(bodies []Body) (*Catalog, error) {
	c := &Catalog{
		bodies: make([]Body, 0, len(bodies)),
		index:  make(map[BodyID]int, len(bodies)),
	}
	for _, b := range bodies {
		if b.ID == "" {
			return nil, fmt.Errorf("%w: body without id", ErrInvalidCatalog)
		}
		if _, dup := c.index[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate body %q", ErrInvalidCatalog, b.ID)
		}
		if b.Size <= 0 {
			return nil, fmt.Errorf("%w: body %q has size %v", ErrInvalidCatalog, b.ID, b.Size)
		}
		info := make([]InfoRow, len(b.Info))
		copy(info, b.Info)
		b.Info = info
		c.index[b.ID] = len(c.bodies)
		c.bodies = append(c.bodies, b)
	}
	if _, ok := c.index[SunID]; !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrInvalidCatalog, SunID)
	}
	return c, nil
}

// Body returns a copy of the body so callers cannot mutate the catalog.
func (c *Catalog) Body(id BodyID) (Body, bool) {
	i, ok := c.index[id]
	if !ok {
		return Body{}, false
	}
	b := c.bodies[i]
	b.Info = append([]InfoRow(nil), b.Info...)
	return b, true
}

func (c *Catalog) Has(id BodyID) bool {
	_, ok := c.index[id]
	return ok
}

func (c *Catalog) Sun() Body {
	b, _ := c.Body(SunID)
	return b
}

// Planets returns the ids of every body except the Sun, in catalog order.
func (c *Catalog) Planets() []BodyID {
	ids := make([]BodyID, 0, len(c.bodies))
	for _, b := range c.bodies {
		if b.ID != SunID {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

func (c *Catalog) IDs() []BodyID {
	ids := make([]BodyID, len(c.bodies))
	for i, b := range c.bodies {
		ids[i] = b.ID
	}
	return ids
}

func (c *Catalog) Len() int { return len(c.bodies) }
