package share

import (
	"net/url"
	"testing"

	"github.com/Veraticus/freemium-tools/internal/flames"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	outcome, err := flames.Compute("Tom", "Tim")
	require.NoError(t, err)

	assert.Equal(t,
		"Based on the Flames test, Tom and Tim's relationship type is Love! There's a romantic spark between you two!",
		Text(" Tom ", "Tim", outcome))
}

func TestURL(t *testing.T) {
	const page = "https://example.com/#/tool/mathematics/flames-calculator"
	const text = "A & B's result is Love!"

	tests := []struct {
		platform Platform
		want     string
	}{
		{
			platform: Facebook,
			want:     "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fexample.com%2F%23%2Ftool%2Fmathematics%2Fflames-calculator&quote=A%20%26%20B's%20result%20is%20Love!",
		},
		{
			platform: Twitter,
			want:     "https://twitter.com/intent/tweet?text=A%20%26%20B's%20result%20is%20Love!&url=https%3A%2F%2Fexample.com%2F%23%2Ftool%2Fmathematics%2Fflames-calculator",
		},
		{
			platform: LinkedIn,
			want:     "https://www.linkedin.com/sharing/share-offsite/?url=https%3A%2F%2Fexample.com%2F%23%2Ftool%2Fmathematics%2Fflames-calculator&title=A%20%26%20B's%20result%20is%20Love!",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			got, err := URL(tt.platform, page, text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			parsed, err := url.Parse(got)
			require.NoError(t, err)
			q := parsed.Query()
			for _, v := range q {
				assert.Len(t, v, 1)
			}
		})
	}
}

func TestURL_UnknownPlatform(t *testing.T) {
	_, err := URL("myspace", DefaultPageURL, "hi")
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestLinks(t *testing.T) {
	links := Links(DefaultPageURL, "hello")
	assert.Len(t, links, 3)
	for _, p := range Platforms {
		assert.NotEmpty(t, links[p])
	}
}
