// Package mapfile reads and writes spatial maps as YAML or JSON documents:
//
//	intersections:
//	  0: [0, 0]
//	  1: [1.5, 0]
//	roads:
//	  0: [1]
//
// Each road needs to be listed on one side only. Save writes every road once,
// under its smaller endpoint.
package mapfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvkit/spatial"
)

// Format selects the document encoding.
type Format int

const (
	// YAML is the default format.
	YAML Format = iota
	// JSON is chosen for files ending in .json.
	JSON
)

var (
	// ErrBadPoint indicates a coordinate that is not exactly [x, y].
	ErrBadPoint = errors.New("mapfile: coordinate must have two components")

	// ErrNilMap indicates Encode or Save was given a nil map.
	ErrNilMap = errors.New("mapfile: map is nil")
)

// document is the on-disk shape.
type document struct {
	Intersections map[int]coords `yaml:"intersections" json:"intersections"`
	Roads         map[int]ids    `yaml:"roads,omitempty" json:"roads,omitempty"`
}

// coords and ids are written as flow sequences so each entry stays on one line.
type (
	coords []float64
	ids    []int
)

func (c coords) MarshalYAML() (interface{}, error) { return flow([]float64(c)) }
func (l ids) MarshalYAML() (interface{}, error)    { return flow([]int(l)) }

func flow(v interface{}) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle

	return &n, nil
}

// FormatFor picks JSON for .json paths and YAML otherwise.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// Decode reads one map document from r.
func Decode(r io.Reader, f Format) (*spatial.Map, error) {
	var doc document
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&doc)
	default:
		err = yaml.NewDecoder(r).Decode(&doc)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("mapfile: decode: %w", err)
	}

	points := make(map[int]orb.Point, len(doc.Intersections))
	for id, c := range doc.Intersections {
		if len(c) != 2 {
			return nil, fmt.Errorf("%w: intersection %d has %d", ErrBadPoint, id, len(c))
		}
		points[id] = orb.Point{c[0], c[1]}
	}
	roads := make(map[int][]int, len(doc.Roads))
	for id, l := range doc.Roads {
		roads[id] = l
	}

	return spatial.FromData(points, roads)
}

// Encode writes m to w.
func Encode(w io.Writer, m *spatial.Map, f Format) error {
	if m == nil {
		return ErrNilMap
	}
	doc := document{
		Intersections: make(map[int]coords, m.Len()),
		Roads:         make(map[int]ids),
	}
	for _, id := range m.IDs() {
		p, _ := m.Point(id)
		doc.Intersections[id] = coords{p.X(), p.Y()}
		m.EachNeighbor(id, func(to int) {
			if to > id {
				doc.Roads[id] = append(doc.Roads[id], to)
			}
		})
	}

	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
}

// Load reads the map stored at path.
func Load(path string) (*spatial.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save writes m to path, creating or truncating the file.
func Save(path string, m *spatial.Map) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, m, FormatFor(path)); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
