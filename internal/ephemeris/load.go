package ephemeris

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/solar"
)

//go:embed datasets/*.yaml
var datasets embed.FS

//go:embed schema.cue
var schemaSource string

type datasetFile struct {
	Name      string `yaml:"name"`
	ValidFrom string `yaml:"valid_from"`
	ValidTo   string `yaml:"valid_to"`
	Bodies    []struct {
		ID       solar.BodyID `yaml:"id"`
		Elements Elements     `yaml:"elements"`
		Rates    Elements     `yaml:"rates"`
	} `yaml:"bodies"`
}

// Embedded lists the dataset ids compiled into the binary.
func Embedded() []string {
	entries, err := datasets.ReadDir("datasets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Load resolves datasetID to an embedded dataset or, failing that, a YAML file
// path. Every failure wraps ErrDataUnavailable.
func Load(datasetID string) (*Provider, error) {
	data, err := read(datasetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, datasetID, err)
	}
	return Parse(datasetID, data)
}

func read(datasetID string) ([]byte, error) {
	if datasetID == "" {
		return nil, fmt.Errorf("empty dataset id")
	}
	if data, err := datasets.ReadFile(path.Join("datasets", datasetID+".yaml")); err == nil {
		return data, nil
	}
	return os.ReadFile(datasetID)
}

// Parse validates and decodes a dataset document.
func Parse(name string, data []byte) (*Provider, error) {
	if err := config.ValidateCUE(name, data, schemaSource, "#Dataset"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	var doc datasetFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	p := &Provider{
		name:   doc.Name,
		order:  make([]solar.BodyID, 0, len(doc.Bodies)),
		bodies: make(map[solar.BodyID]bodyElements, len(doc.Bodies)),
	}
	var err error
	if p.validFrom, err = parseDate(doc.ValidFrom); err != nil {
		return nil, fmt.Errorf("%w: valid_from: %v", ErrDataUnavailable, err)
	}
	if p.validTo, err = parseDate(doc.ValidTo); err != nil {
		return nil, fmt.Errorf("%w: valid_to: %v", ErrDataUnavailable, err)
	}
	for _, b := range doc.Bodies {
		if b.ID == solar.SunID {
			return nil, fmt.Errorf("%w: %s is the origin and cannot have elements", ErrDataUnavailable, solar.SunID)
		}
		if _, dup := p.bodies[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate body %q", ErrDataUnavailable, b.ID)
		}
		p.bodies[b.ID] = bodyElements{elements: b.Elements, rates: b.Rates}
		p.order = append(p.order, b.ID)
	}
	return p, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}
