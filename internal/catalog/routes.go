package catalog

import (
	"strings"
)

// RouteKind identifies which page a route addresses.
type RouteKind int

// Route kinds.
const (
	RouteHome RouteKind = iota
	RouteCategory
	RouteTool
	RoutePrivacyPolicy
	RouteTermsOfService
	RouteCookiePolicy
	RouteNotFound
)

// Legal page slugs, which double as their route paths.
const (
	SlugPrivacyPolicy  = "privacy-policy"
	SlugTermsOfService = "terms-of-service"
	SlugCookiePolicy   = "cookie-policy"
)

// Route is a parsed application location.
type Route struct {
	CategoryID string
	ToolID     string
	Kind       RouteKind
}

// Home is the root route.
var Home = Route{Kind: RouteHome}

// CategoryRoute addresses a category listing.
func CategoryRoute(categoryID string) Route {
	return Route{Kind: RouteCategory, CategoryID: categoryID}
}

// ToolRoute addresses a tool page.
func ToolRoute(categoryID, toolID string) Route {
	return Route{Kind: RouteTool, CategoryID: categoryID, ToolID: toolID}
}

// Path renders the route back to its URL path.
func (r Route) Path() string {
	switch r.Kind {
	case RouteCategory:
		return "/category/" + r.CategoryID
	case RouteTool, RouteNotFound:
		return "/tool/" + r.CategoryID + "/" + r.ToolID
	case RoutePrivacyPolicy:
		return "/" + SlugPrivacyPolicy
	case RouteTermsOfService:
		return "/" + SlugTermsOfService
	case RouteCookiePolicy:
		return "/" + SlugCookiePolicy
	default:
		return "/"
	}
}

// LegalSlug returns the legal page slug for legal routes.
func (r Route) LegalSlug() (string, bool) {
	switch r.Kind {
	case RoutePrivacyPolicy:
		return SlugPrivacyPolicy, true
	case RouteTermsOfService:
		return SlugTermsOfService, true
	case RouteCookiePolicy:
		return SlugCookiePolicy, true
	default:
		return "", false
	}
}

// ParseRoute parses a path without consulting the catalog. A leading "#"
// is accepted so hash-style links work. Paths that match no pattern
// resolve to Home.
func ParseRoute(path string) Route {
	path = strings.TrimPrefix(strings.TrimSpace(path), "#")
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })

	switch len(parts) {
	case 1:
		switch parts[0] {
		case SlugPrivacyPolicy:
			return Route{Kind: RoutePrivacyPolicy}
		case SlugTermsOfService:
			return Route{Kind: RouteTermsOfService}
		case SlugCookiePolicy:
			return Route{Kind: RouteCookiePolicy}
		}
	case 2:
		if parts[0] == "category" {
			return CategoryRoute(parts[1])
		}
	case 3:
		if parts[0] == "tool" {
			return ToolRoute(parts[1], parts[2])
		}
	}
	return Home
}

// Resolve parses path and checks it against the catalog. Unknown
// categories redirect home; a tool page whose category or tool does not
// exist becomes RouteNotFound.
func (c *Catalog) Resolve(path string) Route {
	r := ParseRoute(path)
	switch r.Kind {
	case RouteCategory:
		if _, err := c.Category(r.CategoryID); err != nil {
			return Home
		}
	case RouteTool:
		if _, _, err := c.Tool(r.CategoryID, r.ToolID); err != nil {
			r.Kind = RouteNotFound
		}
	}
	return r
}
