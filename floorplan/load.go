package floorplan

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// layoutFile is the on-disk YAML shape of a store layout.
//
//	rows:
//	  - ".............."
//	  - ".#.#.#.#.#.#.."
//	first_shelf_x: 1
//	aisle_stride: 2
type layoutFile struct {
	Rows        []string `yaml:"rows"`
	FirstShelfX *int     `yaml:"first_shelf_x,omitempty"`
	AisleStride *int     `yaml:"aisle_stride,omitempty"`
}

// Decode reads a YAML layout from r. Explicit opts are applied after the
// geometry found in the file.
func Decode(r io.Reader, opts ...Option) (*Grid, error) {
	var lf layoutFile
	if err := yaml.NewDecoder(r).Decode(&lf); err != nil {
		return nil, fmt.Errorf("floorplan: decode layout: %w", err)
	}
	var all []Option
	if lf.FirstShelfX != nil {
		all = append(all, WithFirstShelfX(*lf.FirstShelfX))
	}
	if lf.AisleStride != nil {
		all = append(all, WithAisleStride(*lf.AisleStride))
	}
	all = append(all, opts...)

	return Parse(lf.Rows, all...)
}

// LoadFile reads a YAML layout from path.
func LoadFile(path string, opts ...Option) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("floorplan: open layout: %w", err)
	}
	defer f.Close()

	return Decode(f, opts...)
}

// Encode writes g as a YAML layout to w.
func Encode(w io.Writer, g *Grid) error {
	first, stride := g.opts.FirstShelfX, g.opts.AisleStride
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(layoutFile{Rows: g.Rows(), FirstShelfX: &first, AisleStride: &stride}); err != nil {
		return fmt.Errorf("floorplan: encode layout: %w", err)
	}
	return enc.Close()
}
