package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		size     int
		wantPage int
		wantSize int
	}{
		{name: "oversized size clamps to max", page: 0, size: 500, wantPage: 0, wantSize: MaxPageSize},
		{name: "zero size falls back to max", page: 2, size: 0, wantPage: 2, wantSize: MaxPageSize},
		{name: "negative size falls back to max", page: 0, size: -5, wantPage: 0, wantSize: MaxPageSize},
		{name: "negative page resets to first", page: -3, size: 20, wantPage: 0, wantSize: 20},
		{name: "valid inputs pass through", page: 1, size: 50, wantPage: 1, wantSize: 50},
		{name: "size at the cap is kept", page: 4, size: MaxPageSize, wantPage: 4, wantSize: MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := NormalizePage(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}
