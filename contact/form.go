// Package contact validates the contact form and hands the message to the
// visitor's own mail client: the body is copied to the clipboard, then a
// mailto link is opened. Nothing is sent from the site itself.
package contact

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	MinMessage = 10
	MaxMessage = 1000
)

// Form is what the visitor typed. Trap is the hidden honeypot input that
// only bots fill in.
type Form struct {
	Name    string `form:"name" validate:"notblank"`
	Email   string `form:"email" validate:"looseemail"`
	Subject string `form:"subject" validate:"notblank"`
	Message string `form:"message" validate:"trimmin=10,max=1000"`
	Trap    string `form:"-" validate:"-"`
}

// Fields lists the form fields in display order.
var Fields = []string{"name", "email", "subject", "message"}

var looseEmail = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := f.Tag.Get("form")
		if name == "-" {
			return ""
		}
		return name
	})
	must(v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	must(v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("trimmin", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// FieldError is one problem with one field, worded for the visitor.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field problem, in form order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid contact form: " + strings.Join(parts, "; ")
}

// For returns the message for field, or "" when the field is fine.
func (e *ValidationError) For(field string) string {
	if e == nil {
		return ""
	}
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Validate checks the form and returns nil or a *ValidationError.
func (f Form) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating contact form: %w", err)
	}

	byField := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, ok := byField[fe.Field()]; !ok {
			byField[fe.Field()] = message(fe)
		}
	}
	out := &ValidationError{}
	for _, name := range Fields {
		if msg, ok := byField[name]; ok {
			out.Fields = append(out.Fields, FieldError{Field: name, Message: msg})
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		return "Please enter your name."
	case "email":
		return "Enter a valid email address."
	case "subject":
		return "Please enter a subject."
	case "message":
		if fe.Tag() == "max" {
			return fmt.Sprintf("Keep it under %d characters.", MaxMessage)
		}
		return fmt.Sprintf("Please write at least %d characters.", MinMessage)
	}
	return "Invalid value."
}

// Body is the plain-text message handed to the mail client.
func (f Form) Body() string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\n\n%s", f.Name, f.Email, f.Subject, f.Message)
}

// MailtoURL builds a mailto link with the subject and body prefilled.
func MailtoURL(to, subject, body string) string {
	return "mailto:" + escape(to) + "?subject=" + escape(subject) + "&body=" + escape(body)
}

// componentUnescape maps QueryEscape output onto encodeURIComponent's:
// spaces become %20 and the marks !'()* stay literal.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escape percent-encodes s the way encodeURIComponent does.
func escape(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}
