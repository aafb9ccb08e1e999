// Package theme resolves the light/dark colour scheme from the visitor's
// cookie.
package theme

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"

	Default = Dark

	// CookieName matches the key the client script reads before first paint.
	CookieName = "ui-theme"

	cookieMaxAge = 3600 * 24 * 365
)

// Parse returns the theme named by s, or Default if s names none.
func Parse(s string) Theme {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark, System:
		return t
	default:
		return Default
	}
}

// Toggle flips between light and dark. A system preference toggles to light
// since the default rendering is dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	if t == Light {
		return Dark
	}
	return Light
}

// Class is the class set on the root element. System leaves the choice to the
// prefers-color-scheme media query.
func (t Theme) Class() string {
	if t == System {
		return ""
	}
	return string(t)
}

func (t Theme) String() string { return string(t) }

// FromRequest reads the theme cookie.
func FromRequest(c *gin.Context) Theme {
	v, err := c.Cookie(CookieName)
	if err != nil {
		return Default
	}
	return Parse(v)
}

// Store persists t in the theme cookie.
func Store(c *gin.Context, t Theme) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, t.String(), cookieMaxAge, "/", "", false, false)
}

// Middleware exposes the visitor's theme to handlers under the "theme" key.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKey, FromRequest(c))
		c.Next()
	}
}

const ContextKey = "theme"

// Current returns the theme set by Middleware, or Default.
func Current(c *gin.Context) Theme {
	if v, ok := c.Get(ContextKey); ok {
		if t, ok := v.(Theme); ok {
			return t
		}
	}
	return Default
}
