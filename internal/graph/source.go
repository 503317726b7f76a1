package graph

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/termviz/internal/errors"
	"gopkg.in/yaml.v3"
)

// NamedGraph is an adjacency matrix with a display name.
type NamedGraph struct {
	Name   string
	Matrix Matrix
}

// graphFile is the on-disk YAML layout:
//
//	graphs:
//	  - name: pair
//	    matrix:
//	      - [0, 1]
//	      - [1, 0]
type graphFile struct {
	Graphs []struct {
		Name   string  `yaml:"name"`
		Matrix [][]int `yaml:"matrix"`
	} `yaml:"graphs"`
}

// LoadFile reads graphs from a YAML file.
func LoadFile(path string) ([]NamedGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInput,
			"Can't read graph file "+path,
			"Check the path passed to --file or graph.file")
	}
	return Parse(data)
}

// Parse decodes graphs from YAML and validates every matrix.
func Parse(data []byte) ([]NamedGraph, error) {
	var f graphFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInput,
			"Graph file is not valid YAML",
			"Expected a top-level 'graphs' list of {name, matrix} entries")
	}
	if len(f.Graphs) == 0 {
		return nil, errors.New(errors.ErrInput,
			"Graph file has no graphs",
			"Add at least one entry under 'graphs'")
	}

	graphs := make([]NamedGraph, 0, len(f.Graphs))
	for i, g := range f.Graphs {
		m, err := FromInts(g.Matrix)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrInput,
				fmt.Sprintf("Graph %d (%q) is invalid", i+1, g.Name), "")
		}
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("graph %d", i+1)
		}
		graphs = append(graphs, NamedGraph{Name: name, Matrix: m})
	}
	return graphs, nil
}

// Builtin returns the two sample six-node graphs shown when no file is given.
func Builtin() []NamedGraph {
	return []NamedGraph{
		{
			Name: "tree",
			Matrix: MustFromInts([][]int{
				{0, 1, 1, 0, 0, 0},
				{1, 0, 0, 0, 0, 0},
				{1, 0, 0, 1, 1, 0},
				{0, 0, 1, 0, 0, 0},
				{0, 0, 1, 0, 0, 1},
				{0, 0, 0, 0, 1, 0},
			}),
		},
		{
			Name: "path",
			Matrix: MustFromInts([][]int{
				{0, 1, 0, 0, 1, 0},
				{1, 0, 1, 0, 0, 0},
				{0, 1, 0, 1, 0, 0},
				{0, 0, 1, 0, 0, 1},
				{1, 0, 0, 0, 0, 0},
				{0, 0, 0, 1, 0, 0},
			}),
		},
	}
}
