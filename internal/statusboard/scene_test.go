package statusboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScene(t *testing.T) {
	s := NewScene(DemoEndpoints, DemoProber())
	assert.Equal(t, "API Dashboard", s.Title())

	f, err := s.Render()
	require.NoError(t, err)
	assert.Nil(t, f)

	apply, err := s.Poll(context.Background())
	require.NoError(t, err)
	f, _ = s.Render()
	assert.Nil(t, f, "results are published only when the step runs")

	apply()
	f, err = s.Render()
	require.NoError(t, err)
	require.Len(t, f, 5)
	assert.Equal(t, "✅  https://api.github.com", f[2])

	apply, err = s.Poll(context.Background())
	require.NoError(t, err)
	apply()
	f, _ = s.Render()
	assert.Equal(t, "❌  https://api.github.com", f[2])
	assert.Equal(t, "✅  https://example.com", f[3])
	assert.Equal(t, "❌  https://httpstat.us/503", f[4])
}
