// Package share builds social sharing links for FLAMES results.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Veraticus/freemium-tools/internal/flames"
)

// Platform is a supported social network.
type Platform string

// Supported platforms.
const (
	Facebook Platform = "facebook"
	Twitter  Platform = "twitter"
	LinkedIn Platform = "linkedin"
)

// Platforms lists the platforms in button order.
var Platforms = []Platform{Facebook, Twitter, LinkedIn}

// ErrUnknownPlatform is returned for platforms without a share endpoint.
var ErrUnknownPlatform = errors.New("unknown share platform")

// DefaultPageURL is the public page for the FLAMES tool.
const DefaultPageURL = "https://freemiumtools.com/#/tool/mathematics/flames-calculator"

// Text is the message shared for a result.
func Text(name1, name2 string, outcome flames.Outcome) string {
	return fmt.Sprintf("Based on the Flames test, %s and %s's relationship type is %s! %s",
		strings.TrimSpace(name1), strings.TrimSpace(name2), outcome.Category, outcome.Description)
}

// URL builds the share link for platform.
func URL(platform Platform, pageURL, text string) (string, error) {
	switch platform {
	case Facebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + escape(pageURL) +
			"&quote=" + escape(text), nil
	case Twitter:
		return "https://twitter.com/intent/tweet?text=" + escape(text) +
			"&url=" + escape(pageURL), nil
	case LinkedIn:
		return "https://www.linkedin.com/sharing/share-offsite/?url=" + escape(pageURL) +
			"&title=" + escape(text), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}
}

// Links builds a link for every platform.
func Links(pageURL, text string) map[Platform]string {
	out := make(map[Platform]string, len(Platforms))
	for _, p := range Platforms {
		link, _ := URL(p, pageURL, text)
		out[p] = link
	}
	return out
}

// escape matches encodeURIComponent: spaces become %20 and the
// characters !'()* are left alone.
func escape(s string) string {
	e := url.QueryEscape(s)
	e = strings.ReplaceAll(e, "+", "%20")
	for _, c := range []string{"!", "'", "(", ")", "*"} {
		e = strings.ReplaceAll(e, url.QueryEscape(c), c)
	}
	return e
}
