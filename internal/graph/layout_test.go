package graph

import (
	"testing"

	"github.com/rileyhilliard/termviz/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadius(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		want    int
		wantErr bool
	}{
		{"default canvas", 40, 20, 8, false},
		{"square", 10, 10, 3, false},
		{"odd size uses integer division", 41, 21, 8, false},
		{"smallest usable", 4, 4, 0, false},
		{"too narrow", 3, 20, 0, true},
		{"too short", 40, 2, 0, true},
		{"zero", 0, 0, 0, true},
		{"negative", -5, 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Radius(tt.w, tt.h)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrViewport))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestCircleLayout(t *testing.T) {
	t.Run("no nodes", func(t *testing.T) {
		pos, err := CircleLayout(0, 40, 20)
		require.NoError(t, err)
		assert.Empty(t, pos)
	})

	t.Run("single node sits right of centre", func(t *testing.T) {
		pos, err := CircleLayout(1, 40, 20)
		require.NoError(t, err)
		assert.Equal(t, []Point{{28, 10}}, pos)
	})

	t.Run("two nodes are opposite", func(t *testing.T) {
		pos, err := CircleLayout(2, 40, 20)
		require.NoError(t, err)
		assert.Equal(t, []Point{{28, 10}, {12, 10}}, pos)
	})

	t.Run("four nodes at compass points", func(t *testing.T) {
		pos, err := CircleLayout(4, 40, 20)
		require.NoError(t, err)
		assert.Equal(t, []Point{{28, 10}, {20, 18}, {12, 10}, {20, 2}}, pos)
	})

	t.Run("zero radius collapses to centre", func(t *testing.T) {
		pos, err := CircleLayout(3, 4, 4)
		require.NoError(t, err)
		for _, p := range pos {
			assert.Equal(t, Point{2, 2}, p)
		}
	})

	t.Run("viewport checked before node count", func(t *testing.T) {
		_, err := CircleLayout(0, 2, 2)
		assert.True(t, errors.IsCode(err, errors.ErrViewport))
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := CircleLayout(7, 40, 20)
		require.NoError(t, err)
		b, err := CircleLayout(7, 40, 20)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
