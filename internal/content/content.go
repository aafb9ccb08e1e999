// Package content loads the site's copy from an embedded TOML file and renders
// its markdown bodies.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/BurntSushi/toml"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed site.toml
var siteTOML string

type Site struct {
	Hero       Hero    `toml:"hero"`
	About      Section `toml:"about"`
	Experience []Entry `toml:"experience"`
	Education  []Entry `toml:"education"`
	Projects   []Entry `toml:"projects"`
}

type Hero struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
}

type Section struct {
	Title string        `toml:"title"`
	Body  string        `toml:"body"`
	HTML  template.HTML `toml:"-"`
}

// Entry is an experience, education or project card.
type Entry struct {
	Title string   `toml:"title"`
	Org   string   `toml:"org"`
	Start string   `toml:"start"`
	End   string   `toml:"end"`
	Logo  string   `toml:"logo"`
	URL   string   `toml:"url"`
	Tags  []string `toml:"tags"`
	Body  string   `toml:"body"`

	HTML template.HTML `toml:"-"`
}

// Period formats the entry's date range, or "" if it has none.
func (e Entry) Period() string {
	switch {
	case e.Start == "" && e.End == "":
		return ""
	case e.End == "":
		return e.Start + " – Present"
	default:
		return e.Start + " – " + e.End
	}
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Default parses the embedded site file.
func Default() (*Site, error) {
	return Parse(siteTOML)
}

// Parse decodes src and renders every markdown body. Unknown keys are
// rejected so typos in the content file surface at startup.
func Parse(src string) (*Site, error) {
	var site Site
	md, err := toml.Decode(src, &site)
	if err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode content: unknown key %q", undecoded[0].String())
	}
	if site.Hero.Title == "" {
		return nil, errors.New("decode content: hero title is required")
	}

	if site.About.HTML, err = render(site.About.Body); err != nil {
		return nil, err
	}
	for _, entries := range [][]Entry{site.Experience, site.Education, site.Projects} {
		for i := range entries {
			if entries[i].HTML, err = render(entries[i].Body); err != nil {
				return nil, fmt.Errorf("render %q: %w", entries[i].Title, err)
			}
		}
	}
	return &site, nil
}

// render converts trusted markdown from the content file to HTML.
func render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
