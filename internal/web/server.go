// Package web serves the portfolio pages and the contact form endpoints.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/armaanv/portfolio/internal/contact"
	"github.com/armaanv/portfolio/internal/content"
	"github.com/armaanv/portfolio/internal/drafts"
	"github.com/armaanv/portfolio/internal/indicator"
	"github.com/armaanv/portfolio/internal/logging"
	"github.com/armaanv/portfolio/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Server holds the collaborators the handlers need.
type Server struct {
	Site       *content.Site
	Contact    *contact.Service
	Drafts     *drafts.Store
	OwnerEmail string
	Log        logrus.FieldLogger

	now func() time.Time
}

func NewServer(site *content.Site, svc *contact.Service, store *drafts.Store, ownerEmail string, log logrus.FieldLogger) *Server {
	return &Server{
		Site:       site,
		Contact:    svc,
		Drafts:     store,
		OwnerEmail: ownerEmail,
		Log:        log,
		now:        time.Now,
	}
}

var funcs = template.FuncMap{
	"year": func() int { return time.Now().Year() },
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Router builds the gin engine with every route and middleware.
func (s *Server) Router() (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(s.Log), theme.Middleware(), drafts.Session())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.home)
	r.GET("/about", s.about)
	r.GET("/contact", s.contactPage)
	r.POST("/contact", s.submitContact)
	r.POST("/contact/draft", s.saveDraft)
	r.POST("/theme", s.toggleTheme)

	r.NoRoute(func(c *gin.Context) {
		s.render(c, http.StatusNotFound, "404.html", gin.H{"title": "Not Found"})
	})

	return r, nil
}

type navLink struct {
	indicator.NavItem
	Current bool
}

// render adds the layout data every page needs.
func (s *Server) render(c *gin.Context, status int, name string, data gin.H) {
	route := c.Request.URL.Path
	links := make([]navLink, 0, len(indicator.DefaultItems))
	for _, item := range indicator.DefaultItems {
		links = append(links, navLink{NavItem: item, Current: item.Route == route})
	}

	data["route"] = route
	data["nav"] = links
	data["theme"] = theme.Current(c)
	c.HTML(status, name, data)
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
