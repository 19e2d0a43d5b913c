package flames

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Lookup(t *testing.T) {
	tests := []struct {
		category Category
		label    string
		icon     string
		color    string
	}{
		{Friends, "Friends", "👫", "blue"},
		{Love, "Love", "❤️", "red"},
		{Affection, "Affection", "🤗", "pink"},
		{Marriage, "Marriage", "💍", "purple"},
		{Enemies, "Enemies", "⚔️", "yellow"},
		{Siblings, "Siblings", "👪", "green"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			info, ok := Lookup(tt.category)
			require.True(t, ok)
			assert.Equal(t, tt.label, info.Label)
			assert.Equal(t, tt.icon, info.Icon)
			assert.Equal(t, tt.color, info.Color)
			assert.Equal(t, tt.category, info.Category)
			assert.NotEmpty(t, info.Description)
			assert.Equal(t, tt.label, tt.category.String())
		})
	}
}

func TestCategory_Invalid(t *testing.T) {
	for _, c := range []Category{0, -1, 7, 100} {
		_, ok := Lookup(c)
		assert.False(t, ok)
		assert.False(t, c.Valid())
		assert.Equal(t, "Unknown", c.String())
	}
}

func TestCategory_AllInFlamesOrder(t *testing.T) {
	var initials string
	for _, c := range All() {
		initials += c.String()[:1]
	}
	assert.Equal(t, "FLAMES", initials)
}

func TestFromRemainder(t *testing.T) {
	tests := []struct {
		count int
		want  Category
	}{
		{1, Friends},
		{2, Love},
		{3, Affection},
		{4, Marriage},
		{5, Enemies},
		{6, Siblings},
		{7, Friends},
		{12, Siblings},
		{13, Friends},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fromRemainder(tt.count), "count %d", tt.count)
	}
}

func TestCategory_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Category Category `json:"category"`
	}{Category: Marriage})
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"Marriage"}`, string(data))
}
