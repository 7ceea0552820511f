package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextFileID(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"empty", nil, "ID1"},
		{"max plus one", []string{"ID3", "ID12", "ID7"}, "ID13"},
		{"ignores other shapes", []string{"ID2", "ID10x", "IDK99", "", "42"}, "ID3"},
		{"gaps are not reused", []string{"ID1", "ID5"}, "ID6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextFileID(tt.ids))
		})
	}
}

func TestNextRackEntryID(t *testing.T) {
	assert.Equal(t, "IDK001", NextRackEntryID(nil))
	assert.Equal(t, "IDK008", NextRackEntryID([]string{"IDK002", "IDK007", "ID9"}))
	assert.Equal(t, "IDK1000", NextRackEntryID([]string{"IDK999"}))
	assert.Equal(t, "IDK003", NextRackEntryID([]string{"IDK2", "IDK-5", "idk50"}))
}

func TestNextLookupID(t *testing.T) {
	assert.Equal(t, 1, NextLookupID(nil))
	assert.Equal(t, 1, NextLookupID([]int{0}))
	assert.Equal(t, 8, NextLookupID([]int{3, 7, 2}))
}
