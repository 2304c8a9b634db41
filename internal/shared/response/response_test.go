package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		pages int
	}{
		{"exact multiple", 1, 10, 30, 3},
		{"partial last page", 1, 10, 25, 3},
		{"pages independent of requested page", 7, 10, 25, 3},
		{"single item", 1, 10, 1, 1},
		{"empty set", 1, 10, 0, 0},
		{"zero limit guarded", 1, 0, 25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.pages, meta.Pages)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}
