// Package exposure holds the static reference table of radiation exposure
// sources and the personal dose calculator built on top of it.
package exposure

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed sources.yaml
var sourcesYAML []byte

// Source is one entry of the reference table: a named exposure source and its
// typical dose in millisieverts.
type Source struct {
	Name    string  `yaml:"name" json:"name"`
	DoseMSv float64 `yaml:"dose_msv" json:"dose_msv"`
}

// Table names of the two sources the calculator charges per unit.
const (
	SourceFlight    = "Flight (NYC to LA)"
	SourceChestXRay = "Chest X-ray"
)

var sources []Source

func init() {
	var doc struct {
		Sources []Source `yaml:"sources"`
	}
	if err := yaml.Unmarshal(sourcesYAML, &doc); err != nil {
		panic(fmt.Errorf("exposure: parsing embedded source table: %w", err))
	}
	if len(doc.Sources) == 0 {
		panic("exposure: embedded source table is empty")
	}
	for _, s := range doc.Sources {
		if s.Name == "" || s.DoseMSv < 0 {
			panic(fmt.Errorf("exposure: invalid source table entry %+v", s))
		}
	}
	sources = doc.Sources
}

// Sources returns the reference table in display order. Callers get a copy;
// the table itself is immutable after startup.
func Sources() []Source {
	out := make([]Source, len(sources))
	copy(out, sources)
	return out
}

// DoseFor looks up the reference dose of a named source.
func DoseFor(name string) (float64, bool) {
	for _, s := range sources {
		if s.Name == name {
			return s.DoseMSv, true
		}
	}
	return 0, false
}
