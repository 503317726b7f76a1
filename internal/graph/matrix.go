package graph

import (
	"fmt"

	"github.com/rileyhilliard/termviz/internal/errors"
)

// Matrix is an adjacency matrix: Matrix[i][j] marks an edge between nodes i and j.
type Matrix [][]bool

// Size returns the node count.
func (m Matrix) Size() int {
	return len(m)
}

// Edge reports whether i and j are connected. Either triangle marks the edge,
// so an asymmetric matrix loses nothing. Self-loops and ragged or out-of-range
// entries read as false.
func (m Matrix) Edge(i, j int) bool {
	if i == j {
		return false
	}
	return m.at(i, j) || m.at(j, i)
}

func (m Matrix) at(i, j int) bool {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[i]) {
		return false
	}
	return m[i][j]
}

// Validate checks that the matrix is square.
func (m Matrix) Validate() error {
	for i, row := range m {
		if len(row) != len(m) {
			return errors.New(errors.ErrInput,
				fmt.Sprintf("Adjacency matrix row %d has %d entries, expected %d", i, len(row), len(m)),
				"Give every row as many entries as there are rows")
		}
	}
	return nil
}

// FromInts converts a 0/1 integer matrix, rejecting other values and
// non-square shapes.
func FromInts(rows [][]int) (Matrix, error) {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = make([]bool, len(row))
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				m[i][j] = true
			default:
				return nil, errors.New(errors.ErrInput,
					fmt.Sprintf("Adjacency matrix entry [%d][%d] is %d", i, j, v),
					"Use 1 for an edge and 0 for no edge")
			}
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// MustFromInts is FromInts for literals known to be valid.
func MustFromInts(rows [][]int) Matrix {
	m, err := FromInts(rows)
	if err != nil {
		panic(err)
	}
	return m
}
