// Package contact validates contact form submissions and relays them to the
// site owner by email.
package contact

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Submission is the contact form. The binding tags are shared by gin's form
// binding and Validate.
type Submission struct {
	Email   string `form:"email" json:"email" binding:"required,email"`
	Name    string `form:"name" json:"name" binding:"required,min=2"`
	Company string `form:"company" json:"company"`
	Subject string `form:"subject" json:"subject" binding:"required,min=3"`
	Message string `form:"message" json:"message" binding:"required,min=10"`
}

// NoCompany replaces an empty company in outgoing mail.
const NoCompany = "N/A"

// Normalize trims every field and fills in the company placeholder.
func (s Submission) Normalize() Submission {
	s.Email = strings.TrimSpace(s.Email)
	s.Name = strings.TrimSpace(s.Name)
	s.Company = strings.TrimSpace(s.Company)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
	if s.Company == "" {
		s.Company = NoCompany
	}
	return s
}

// FieldErrors maps a form field name to the message shown under it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, field := range fieldOrder {
		if msg, ok := e[field]; ok {
			msgs = append(msgs, msg)
		}
	}
	return strings.Join(msgs, "; ")
}

var fieldOrder = []string{"email", "name", "company", "subject", "message"}

var messages = map[string]string{
	"email":   "Invalid email address",
	"name":    "Name must be at least 2 characters",
	"subject": "Subject must be at least 3 characters",
	"message": "Message must be at least 10 characters",
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// Validate checks s against its binding rules. It returns nil or FieldErrors.
func Validate(s Submission) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return FieldErrorsFrom(err)
}

// FieldErrorsFrom converts validator errors, including the ones produced by
// gin's binding, into user-facing messages. Other errors are returned as is.
func FieldErrorsFrom(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		if msg, ok := messages[field]; ok {
			out[field] = msg
		} else {
			out[field] = fe.Error()
		}
	}
	return out
}

// Greeting is the message placeholder for the visitor's local time.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning!"
	case h < 17:
		return "Good afternoon!"
	default:
		return "Good evening!"
	}
}
