package web

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/armaanv/portfolio/internal/contact"
	"github.com/armaanv/portfolio/internal/drafts"
	"github.com/armaanv/portfolio/internal/theme"
)

// Home page route
func (s *Server) home(c *gin.Context) {
	s.render(c, http.StatusOK, "home.html", gin.H{
		"title": s.Site.Hero.Title,
		"site":  s.Site,
	})
}

// Experience, education and projects
func (s *Server) about(c *gin.Context) {
	s.render(c, http.StatusOK, "about.html", gin.H{
		"title": s.Site.About.Title,
		"site":  s.Site,
	})
}

func (s *Server) contactPage(c *gin.Context) {
	values := drafts.Draft{}
	if d, ok, err := s.Drafts.Load(c.Request.Context(), drafts.SessionID(c)); err != nil {
		// a broken draft only costs the visitor their cached input
		s.Log.WithError(err).Warn("loading contact draft")
	} else if ok {
		values = d
	}

	s.render(c, http.StatusOK, "contact.html", s.formData(values, nil))
}

func (s *Server) formData(values drafts.Draft, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = "Let's Talk"
	data["values"] = values
	data["greeting"] = contact.Greeting(s.now())
	if _, ok := data["errors"]; !ok {
		data["errors"] = contact.FieldErrors{}
	}
	return data
}

// Handle contact form submission with HTMX. HTMX requests get the form
// fragment back; plain form posts get the whole page.
func (s *Server) submitContact(c *gin.Context) {
	var sub contact.Submission
	bindErr := c.ShouldBind(&sub)
	values := draftOf(sub)

	err := bindErr
	if err == nil {
		err = s.Contact.Submit(c.Request.Context(), sub)
	}

	var fieldErrs contact.FieldErrors
	switch {
	case err == nil:
		if err := s.Drafts.Clear(c.Request.Context(), drafts.SessionID(c)); err != nil {
			s.Log.WithError(err).Warn("clearing contact draft")
		}
		s.renderForm(c, http.StatusOK, s.formData(drafts.Draft{}, gin.H{
			"success": contact.SuccessMessage,
		}))

	case errors.As(contact.FieldErrorsFrom(err), &fieldErrs):
		s.renderForm(c, http.StatusUnprocessableEntity, s.formData(values, gin.H{
			"errors": fieldErrs,
		}))

	case errors.Is(err, contact.ErrDelivery):
		// the draft stays cached so the visitor can resubmit
		s.renderForm(c, http.StatusOK, s.formData(values, gin.H{
			"error": contact.FailureMessage(s.OwnerEmail),
		}))

	default:
		_ = c.Error(err)
		s.renderForm(c, http.StatusBadRequest, s.formData(values, gin.H{
			"error": contact.FailureMessage(s.OwnerEmail),
		}))
	}
}

func (s *Server) renderForm(c *gin.Context, status int, data gin.H) {
	if isHTMX(c) {
		s.render(c, status, "contact-form.html", data)
		return
	}
	s.render(c, status, "contact.html", data)
}

// saveDraft caches the form on every change so a reload or navigation away
// does not lose it.
func (s *Server) saveDraft(c *gin.Context) {
	var sub contact.Submission
	_ = c.ShouldBindWith(&sub, formNoValidate{})

	if err := s.Drafts.Save(c.Request.Context(), drafts.SessionID(c), draftOf(sub)); err != nil {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

func draftOf(sub contact.Submission) drafts.Draft {
	return drafts.Draft{
		"email":   sub.Email,
		"name":    sub.Name,
		"company": sub.Company,
		"subject": sub.Subject,
		"message": sub.Message,
	}
}

func (s *Server) toggleTheme(c *gin.Context) {
	next := theme.Current(c).Toggle()
	theme.Store(c, next)

	if isHTMX(c) {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, backPath(c.Request.Referer()))
}

// backPath keeps only the path of the referer so the redirect stays on site.
func backPath(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return u.Path
}

// formNoValidate maps form fields like binding.Form but skips validation;
// drafts are saved while still incomplete.
type formNoValidate struct{}

func (formNoValidate) Name() string { return "form-novalidate" }

func (formNoValidate) Bind(req *http.Request, obj any) error {
	if err := req.ParseForm(); err != nil {
		return err
	}
	return binding.MapFormWithTag(obj, req.PostForm, "form")
}
