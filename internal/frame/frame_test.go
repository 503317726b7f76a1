package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrame_WidthAndHeight(t *testing.T) {
	f := Frame{"ab", "abcd", ""}
	assert.Equal(t, 4, f.Width())
	assert.Equal(t, 3, f.Height())

	assert.Equal(t, 0, Frame{}.Width())
	assert.Equal(t, 0, Frame(nil).Height())
}

func TestFrame_WidthCountsCellsNotBytes(t *testing.T) {
	f := Frame{"▁▂▃▄▅▆▇█"}
	assert.Equal(t, 8, f.Width())
}

func TestFrame_Pad(t *testing.T) {
	f := Frame{"a", "abc", ""}
	padded := f.Pad()

	assert.Equal(t, Frame{"a  ", "abc", "   "}, padded)
	assert.True(t, padded.IsRect())
	assert.False(t, f.IsRect())
	assert.Equal(t, Frame{"a", "abc", ""}, f, "Pad must not mutate the receiver")
}

func TestFrame_PadToKeepsWiderLines(t *testing.T) {
	f := Frame{"abcdef", "x"}
	assert.Equal(t, Frame{"abcdef", "x   "}, f.PadTo(4))
}

func TestFrame_Equal(t *testing.T) {
	assert.True(t, Frame{"a", "b"}.Equal(Frame{"a", "b"}))
	assert.False(t, Frame{"a", "b"}.Equal(Frame{"a", "c"}))
	assert.False(t, Frame{"a"}.Equal(Frame{"a", "b"}))
	assert.True(t, Frame{}.Equal(nil))
}

func TestFrame_String(t *testing.T) {
	assert.Equal(t, "a\nb", Frame{"a", "b"}.String())
	assert.Equal(t, "", Frame{}.String())
}

func TestCenter(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"even slack", "ab", 6, "  ab  "},
		{"odd slack goes right", "ab", 5, " ab  "},
		{"exact", "abc", 3, "abc"},
		{"too wide", "abcdef", 3, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Center(tt.in, tt.width))
		})
	}
}
