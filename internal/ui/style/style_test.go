package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/ui/style"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		status domain.VertexStatus
		icon   string
	}{
		{domain.VertexStatusPending, style.Circle},
		{domain.VertexStatusRunning, style.Dot},
		{domain.VertexStatusCompleted, style.Check},
		{domain.VertexStatusCached, style.Tilde},
		{domain.VertexStatusFailed, style.Cross},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			icon, _ := style.Status(tt.status)
			assert.Equal(t, tt.icon, icon)
		})
	}

	_, color := style.Status(domain.VertexStatusFailed)
	assert.Equal(t, style.Red, color)
}
