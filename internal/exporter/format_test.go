package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{3.5, "3.5"},
		{2.0, "2"},
		{0.05, "0.05"},
		{0.12, "0.12"},
		{12.0, "12"},
		{-1.25, "-1.25"},
		{0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFloat(tt.input))
		})
	}
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", formatInt(0))
	assert.Equal(t, "1000000000000", formatInt(1000000000000))
	assert.Equal(t, "-7", formatInt(-7))
}
