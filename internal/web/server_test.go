package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/armaanv/portfolio/internal/contact"
	"github.com/armaanv/portfolio/internal/content"
	"github.com/armaanv/portfolio/internal/drafts"
	"github.com/armaanv/portfolio/internal/storage"
)

type stubMailer struct {
	sent int
	err  error
}

func (m *stubMailer) Send(context.Context, contact.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent++
	return nil
}

const sessionID = "0b6f1f0e-3c55-4d37-9d0a-8a3f8f1f5b9e"

func validForm() url.Values {
	return url.Values{
		"email":   {"visitor@example.com"},
		"name":    {"Ada Lovelace"},
		"subject": {"Hello!"},
		"message": {"Would love to talk about engines."},
	}
}

func TestServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	Convey("Server", t, func() {
		log := logrus.New()
		log.SetOutput(io.Discard)

		db, err := storage.Open(":memory:")
		So(err, ShouldBeNil)
		Reset(func() { db.Close() })

		site, err := content.Default()
		So(err, ShouldBeNil)

		mailer := &stubMailer{}
		store := drafts.NewStore(db, time.Hour)
		srv := NewServer(site, contact.NewService(mailer, "owner@example.com", log), store, "me@armaanv.dev", log)
		srv.now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }

		r, err := srv.Router()
		So(err, ShouldBeNil)

		do := func(method, path string, form url.Values, header map[string]string) *httptest.ResponseRecorder {
			var body io.Reader
			if form != nil {
				body = strings.NewReader(form.Encode())
			}
			req := httptest.NewRequest(method, path, body)
			if form != nil {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			req.AddCookie(&http.Cookie{Name: drafts.SessionCookie, Value: sessionID})
			for k, v := range header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			return w
		}

		Convey("Should render the home page with the nav marking the current route", func() {
			w := do(http.MethodGet, "/", nil, nil)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Hi, I&#39;m Armaan")
			So(w.Body.String(), ShouldContainSubstring, `data-current-route="/"`)
			So(w.Body.String(), ShouldContainSubstring, `aria-current="page"`)
			So(w.Body.String(), ShouldContainSubstring, `class="dark"`)
		})

		Convey("Should render the about page cards", func() {
			w := do(http.MethodGet, "/about", nil, nil)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Experience")
			So(w.Body.String(), ShouldContainSubstring, "Projects")
		})

		Convey("Should answer unknown paths with 404", func() {
			w := do(http.MethodGet, "/blog", nil, nil)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Should greet by time of day on the contact page", func() {
			w := do(http.MethodGet, "/contact", nil, nil)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `placeholder="Good morning!"`)
		})

		Convey("Should restore a saved draft", func() {
			w := do(http.MethodPost, "/contact/draft", url.Values{"name": {"Grace"}}, nil)
			So(w.Code, ShouldEqual, http.StatusNoContent)

			w = do(http.MethodGet, "/contact", nil, nil)
			So(w.Body.String(), ShouldContainSubstring, `value="Grace"`)
		})

		Convey("Should send a valid submission and clear the draft", func() {
			do(http.MethodPost, "/contact/draft", validForm(), nil)

			w := do(http.MethodPost, "/contact", validForm(), map[string]string{"HX-Request": "true"})
			So(w.Code, ShouldEqual, http.StatusOK)
			So(mailer.sent, ShouldEqual, 1)
			So(w.Body.String(), ShouldContainSubstring, contact.SuccessMessage)
			So(w.Body.String(), ShouldNotContainSubstring, "<html")

			_, ok, err := store.Load(context.Background(), sessionID)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("Should show field errors and keep the input", func() {
			form := validForm()
			form.Set("message", "short")
			w := do(http.MethodPost, "/contact", form, map[string]string{"HX-Request": "true"})
			So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
			So(w.Body.String(), ShouldContainSubstring, "Message must be at least 10 characters")
			So(w.Body.String(), ShouldContainSubstring, `value="Ada Lovelace"`)
			So(mailer.sent, ShouldEqual, 0)
		})

		Convey("Should show a retryable error and keep the draft when delivery fails", func() {
			do(http.MethodPost, "/contact/draft", validForm(), nil)
			mailer.err = errors.New("dial tcp: connection refused")

			w := do(http.MethodPost, "/contact", validForm(), nil)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Failed to send message. Please try again later")
			So(w.Body.String(), ShouldContainSubstring, "<html")

			_, ok, _ := store.Load(context.Background(), sessionID)
			So(ok, ShouldBeTrue)
		})

		Convey("Should toggle the theme and redirect back", func() {
			w := do(http.MethodPost, "/theme", nil, map[string]string{"Referer": "https://armaanv.dev/contact"})
			So(w.Code, ShouldEqual, http.StatusSeeOther)
			So(w.Header().Get("Location"), ShouldEqual, "/contact")
			So(w.Header().Get("Set-Cookie"), ShouldContainSubstring, "ui-theme=light")
		})
	})
}

func TestBackPath(t *testing.T) {
	Convey("backPath", t, func() {
		So(backPath(""), ShouldEqual, "/")
		So(backPath("https://armaanv.dev/about?x=1"), ShouldEqual, "/about")
		So(backPath("https://evil.example//evil.example"), ShouldEqual, "/")
	})
}
