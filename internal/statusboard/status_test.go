package statusboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		status Status
		name   string
		icon   string
	}{
		{Live, "Live", "✅"},
		{Error, "Error", "❌"},
		{Degraded, "Degraded", "⚠️"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.status.String())
			assert.Equal(t, tt.icon, tt.status.Icon())
		})
	}
}

func TestRender(t *testing.T) {
	f := Render([]Result{
		{URL: "https://a.test", Status: Live},
		{URL: "https://b.test", Status: Error},
		{URL: "https://c.test", Status: Degraded},
	})

	assert.Equal(t, []string{
		"📊 API Status Dashboard",
		"",
		"✅  https://a.test",
		"❌  https://b.test",
		"⚠️  https://c.test",
	}, []string(f))
}

func TestRender_NoEndpoints(t *testing.T) {
	assert.Equal(t, []string{Header, ""}, []string(Render(nil)))
}
