// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/allpairs/core"
)

// Sentinel errors returned by the loaders.
var (
	// ErrUnknownFormat indicates a file extension or format name that is neither YAML nor TOML.
	ErrUnknownFormat = errors.New("graphio: unknown document format")

	// ErrDecode indicates a document that could not be parsed.
	ErrDecode = errors.New("graphio: cannot decode document")

	// ErrEdge indicates an edge the graph refused.
	ErrEdge = errors.New("graphio: invalid edge")
)

// Format names a document encoding.
type Format string

const (
	// FormatYAML is the YAML encoding (.yaml, .yml).
	FormatYAML Format = "yaml"

	// FormatTOML is the TOML encoding (.toml).
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Document is the decoded form of a graph file.
type Document struct {
	Directed bool      `yaml:"directed" toml:"directed"`
	Multi    bool      `yaml:"multi" toml:"multi"`
	Loops    bool      `yaml:"loops" toml:"loops"`
	Vertices []string  `yaml:"vertices" toml:"vertices"`
	Edges    []EdgeDoc `yaml:"edges" toml:"edges"`
}

// EdgeDoc is one edge entry. Directed overrides the document default when set.
type EdgeDoc struct {
	From     string `yaml:"from" toml:"from"`
	To       string `yaml:"to" toml:"to"`
	Weight   int64  `yaml:"weight" toml:"weight"`
	Directed *bool  `yaml:"directed,omitempty" toml:"directed,omitempty"`
}

// Decode parses a document in the given format. Unknown keys are rejected.
// An empty input decodes to an empty document.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: yaml: %w", ErrDecode, err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrDecode, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: toml: unknown key %q", ErrDecode, undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &doc, nil
}

// Build creates a weighted core graph from the document.
//
// Vertices listed under "vertices" are added first, in order, then every
// edge in document order. The first refused edge aborts the build with an
// error wrapping both ErrEdge and the core sentinel.
func (d *Document) Build() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed), core.WithWeighted()}
	if d.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	if d.mixed() {
		opts = append(opts, core.WithMixedEdges())
	}
	g := core.NewGraph(opts...)

	for _, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", v, err)
		}
	}

	for i, e := range d.Edges {
		var eopts []core.EdgeOption
		if e.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*e.Directed))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight, eopts...); err != nil {
			return nil, fmt.Errorf("%w #%d (%s->%s): %w", ErrEdge, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// mixed reports whether any edge overrides the default directedness.
func (d *Document) mixed() bool {
	for _, e := range d.Edges {
		if e.Directed != nil {
			return true
		}
	}

	return false
}

// Read decodes a document from r and builds its graph.
func Read(r io.Reader, format Format) (*core.Graph, error) {
	doc, err := Decode(r, format)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}

// Load reads the file at path, choosing the format from its extension.
func Load(path string) (*core.Graph, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("graphio: read %s: %w", path, err)
	}

	return Read(bytes.NewReader(data), format)
}
