package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/", Home},
		{"", Home},
		{"/category/colors", CategoryRoute("colors")},
		{"/tool/mathematics/calculator", ToolRoute("mathematics", "calculator")},
		{"#/tool/mathematics/calculator", ToolRoute("mathematics", "calculator")},
		{"/tool/mathematics/calculator/", ToolRoute("mathematics", "calculator")},
		{"/tool/mathematics/calculator?ref=home", ToolRoute("mathematics", "calculator")},
		{"/privacy-policy", Route{Kind: RoutePrivacyPolicy}},
		{"/terms-of-service", Route{Kind: RouteTermsOfService}},
		{"/cookie-policy", Route{Kind: RouteCookiePolicy}},
		{"/does-not-exist", Home},
		{"/tool/only-category", Home},
		{"/tool/a/b/c", Home},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRoute(tt.path))
		})
	}
}

func TestRoute_PathRoundTrip(t *testing.T) {
	routes := []Route{
		Home,
		CategoryRoute("numbers"),
		ToolRoute("mathematics", "area-calculator"),
		{Kind: RoutePrivacyPolicy},
		{Kind: RouteTermsOfService},
		{Kind: RouteCookiePolicy},
	}
	for _, r := range routes {
		assert.Equal(t, r, ParseRoute(r.Path()), r.Path())
	}
}

func TestCatalog_Resolve(t *testing.T) {
	c := Default()

	assert.Equal(t, ToolRoute("mathematics", "flames-calculator"), c.Resolve("/tool/mathematics/flames-calculator"))
	assert.Equal(t, Home, c.Resolve("/category/unknown"))
	assert.Equal(t, CategoryRoute("videos"), c.Resolve("/category/videos"))

	missingTool := c.Resolve("/tool/mathematics/unknown")
	assert.Equal(t, RouteNotFound, missingTool.Kind)
	assert.Equal(t, "/tool/mathematics/unknown", missingTool.Path())

	assert.Equal(t, RouteNotFound, c.Resolve("/tool/unknown/calculator").Kind)
}

func TestRoute_LegalSlug(t *testing.T) {
	slug, ok := Route{Kind: RouteCookiePolicy}.LegalSlug()
	assert.True(t, ok)
	assert.Equal(t, SlugCookiePolicy, slug)

	_, ok = Home.LegalSlug()
	assert.False(t, ok)
}
