package cli

import (
	"testing"
	"time"

	"github.com/rileyhilliard/termviz/internal/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr bool
	}{
		{"empty uses default", "", 3 * time.Second, false},
		{"seconds", "5s", 5 * time.Second, false},
		{"milliseconds", "250ms", 250 * time.Millisecond, false},
		{"garbage", "soon", 0, true},
		{"zero", "0s", 0, true},
		{"negative", "-1s", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.flag, 3*time.Second)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddViewFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	var flags ViewFlags
	AddViewFlags(cmd, &flags)

	require.NoError(t, cmd.ParseFlags([]string{"--once", "--interval", "2s"}))
	assert.True(t, flags.Once)
	assert.False(t, flags.Plain)
	assert.Equal(t, "2s", flags.Interval)
}
