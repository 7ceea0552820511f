package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		year string
		want Status
	}{
		{"2025", StatusActive},
		{"2018", StatusActive},
		{"2017", StatusInactive},
		{"2015", StatusInactive},
		{"2014", StatusArchive},
		{"1980", StatusArchive},
		{" 2012 ", StatusArchive},
		{"2012 (old)", StatusArchive},
		{"2026", StatusActive},
		{"2030", StatusActive},
		{"1979", StatusActive},
		{"", StatusActive},
		{"unknown", StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.year, fixtureNow))
		})
	}
}

func TestLeadingInt(t *testing.T) {
	n, ok := leadingInt("  123abc")
	assert.True(t, ok)
	assert.Equal(t, 123, n)

	n, ok = leadingInt("-7")
	assert.True(t, ok)
	assert.Equal(t, -7, n)

	_, ok = leadingInt("abc")
	assert.False(t, ok)

	_, ok = leadingInt("-")
	assert.False(t, ok)
}
