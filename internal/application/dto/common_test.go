package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/wms-api/internal/application/dto"
)

func TestNormalizePage(t *testing.T) {
	casos := []struct {
		nombre              string
		page, limit         int
		wantPage, wantLimit int
	}{
		{"defaults con ceros", 0, 0, 1, 10},
		{"página negativa", -3, 25, 1, 25},
		{"límite sobre la cota", 2, 500, 2, 100},
		{"valores válidos intactos", 3, 50, 3, 50},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			page, limit := dto.NormalizePage(c.page, c.limit)
			assert.Equal(t, c.wantPage, page)
			assert.Equal(t, c.wantLimit, limit)
		})
	}
}
