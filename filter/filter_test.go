package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splashctl/splashctl/unsplash"
)

func testPhoto() unsplash.Photo {
	photo := unsplash.Photo{
		ID:          "Dwu85P9SOIk",
		CreatedAt:   time.Now().AddDate(0, -6, 0),
		Width:       3000,
		Height:      2000,
		Color:       "#6E633A",
		Likes:       150,
		Description: "A man drinking a coffee.",
	}
	photo.User.Username = "jimmyexample"
	photo.User.Name = "James Example"
	return photo
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{name: "empty expression", expression: ""},
		{name: "whitespace only", expression: "   "},
		{name: "unbalanced parens", expression: "Likes > (100"},
		{name: "non-boolean result", expression: "1 + 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			require.Error(t, err)

			var compErr *CompilationError
			require.ErrorAs(t, err, &compErr)
		})
	}
}

func TestMatch(t *testing.T) {
	photo := testPhoto()

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{name: "likes threshold", expression: "Likes > 100", want: true},
		{name: "likes threshold not met", expression: "Likes > 1000", want: false},
		{name: "description contains", expression: `contains(Description, "coffee")`, want: true},
		{name: "case-insensitive contains", expression: `contains(Description, "COFFEE")`, want: true},
		{name: "by user", expression: `byUser("JimmyExample")`, want: true},
		{name: "by other user", expression: `byUser("ansel")`, want: false},
		{name: "landscape", expression: "isLandscape()", want: true},
		{name: "portrait", expression: "isPortrait()", want: false},
		{name: "aspect ratio", expression: "aspectRatio() == 1.5", want: true},
		{name: "recent photo", expression: "daysSince(CreatedAt) < 365", want: true},
		{name: "created after date", expression: `CreatedAt > parseDate("2020-01-01")`, want: true},
		{name: "combined", expression: `Likes >= 150 && isLandscape() && Username == "jimmyexample"`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Match(photo))
		})
	}
}

func TestMatchUndefinedVariableIsFalse(t *testing.T) {
	f, err := Compile("Nonexistent > 5")
	require.NoError(t, err)
	assert.False(t, f.Match(testPhoto()))
}

func TestApply(t *testing.T) {
	first := testPhoto()
	second := testPhoto()
	second.ID = "second"
	second.Likes = 10

	f, err := Compile("Likes > 100")
	require.NoError(t, err)

	matched := Apply(f, []unsplash.Photo{first, second})
	require.Len(t, matched, 1)
	assert.Equal(t, "Dwu85P9SOIk", matched[0].ID)

	f, err = Compile("Likes > 0")
	require.NoError(t, err)
	matched = Apply(f, []unsplash.Photo{first, second})
	require.Len(t, matched, 2)
	assert.Equal(t, "Dwu85P9SOIk", matched[0].ID)
	assert.Equal(t, "second", matched[1].ID)
}

func TestExpression(t *testing.T) {
	f, err := Compile("  Likes > 100  ")
	require.NoError(t, err)
	assert.Equal(t, "Likes > 100", f.Expression())
}
