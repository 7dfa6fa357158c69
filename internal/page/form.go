package page

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atomicstack/portfolio-tui/internal/logging/events"
)

const (
	submitLatency  = 1500 * time.Millisecond
	bannerLifetime = 5000 * time.Millisecond

	// SendingLabel replaces the submit text while a submission is pending.
	SendingLabel = "Sending..."
	// InvalidFormMessage is shown when any field fails validation.
	InvalidFormMessage = "Please fix the errors above"
	// SentMessage is shown once the simulated submission completes.
	SentMessage = "Thank you! Your message has been sent successfully. I'll get back to you soon!"
)

// FieldNames lists the contact form fields in display order.
var FieldNames = []string{"name", "email", "subject", "message"}

// Errors maps a field name to its validation message.
type Errors map[string]string

// emailPattern treats vertical tab, Unicode separators and the BOM as
// whitespace alongside \s.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

type rule func(value string) string

// minLength requires at least n runes after trimming. Runes are counted, not
// UTF-16 units, so a single emoji is one character.
func minLength(label string, n int) rule {
	return func(value string) string {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return label + " is required"
		}
		if utf8.RuneCountInString(trimmed) < n {
			return label + " must be at least " + strconv.Itoa(n) + " characters"
		}
		return ""
	}
}

func email(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(value) {
		return "Please enter a valid email address"
	}
	return ""
}

var rules = map[string]rule{
	"name":    minLength("Name", 2),
	"email":   email,
	"subject": minLength("Subject", 3),
	"message": minLength("Message", 10),
}

// ValidateField returns the message for an invalid value, or "" when valid.
// Unknown fields are always valid.
func ValidateField(field, value string) string {
	r, ok := rules[field]
	if !ok {
		return ""
	}
	return r(value)
}

// Validate checks every contact field. Missing values count as empty.
func Validate(values map[string]string) Errors {
	errs := Errors{}
	for _, name := range FieldNames {
		if msg := ValidateField(name, values[name]); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}

func (c *Controller) field(name string) *Field {
	for i := range c.el.Fields {
		if c.el.Fields[i].Name == name {
			return &c.el.Fields[i]
		}
	}
	return nil
}

func (c *Controller) validateField(name string) bool {
	f := c.field(name)
	if f == nil || f.Input == nil {
		return true
	}
	msg := ValidateField(name, f.Input.Value())
	if f.Error != nil {
		f.Error.SetText(msg)
	}
	if f.Control != nil {
		if msg != "" {
			f.Control.SetStyle("border-color", "error")
		} else {
			f.Control.SetStyle("border-color", "default")
		}
	}
	events.Form.Validate(name, msg)
	return msg == ""
}

// Blur validates a field when it loses focus.
func (c *Controller) Blur(name string) {
	c.validateField(name)
}

// Input re-validates a field on change, but only while it shows an error.
func (c *Controller) Input(name string) {
	f := c.field(name)
	if f == nil || f.Error == nil || f.Error.Text() == "" {
		return
	}
	c.validateField(name)
}

// FieldError returns the message currently shown for a field.
func (c *Controller) FieldError(name string) string {
	if f := c.field(name); f != nil && f.Error != nil {
		return f.Error.Text()
	}
	return ""
}

// Submitting reports whether a simulated submission is in flight.
func (c *Controller) Submitting() bool {
	if c.el.Submit == nil {
		return false
	}
	_, disabled := c.el.Submit.Attr("disabled")
	return disabled
}

// Submit validates every field and, when all pass, runs the simulated
// submission. It reports whether the submission was accepted.
func (c *Controller) Submit() bool {
	if c.Submitting() {
		return false
	}
	valid := true
	var failed []string
	for _, f := range c.el.Fields {
		if !c.validateField(f.Name) {
			valid = false
			failed = append(failed, f.Name)
		}
	}
	if !valid {
		c.showFormMessage(InvalidFormMessage, "error")
		events.Form.Blocked(failed)
		return false
	}

	id := c.newID()
	events.Form.Submit(id)
	original := ""
	if c.el.Submit != nil {
		original = c.el.Submit.Text()
		c.el.Submit.SetAttr("disabled", "true")
		c.el.Submit.SetText(SendingLabel)
	}
	c.sched.AfterFunc(submitLatency, func() {
		c.showFormMessage(SentMessage, "success")
		for _, f := range c.el.Fields {
			if f.Input != nil {
				f.Input.Reset()
			}
		}
		if c.el.Submit != nil {
			c.el.Submit.RemoveAttr("disabled")
			c.el.Submit.SetText(original)
		}
		events.Form.Sent(id)
		c.sched.AfterFunc(bannerLifetime, func() {
			if c.el.FormMessage != nil {
				c.el.FormMessage.SetStyle("display", "none")
			}
		})
	})
	return true
}

func (c *Controller) showFormMessage(text, kind string) {
	m := c.el.FormMessage
	if m == nil {
		return
	}
	m.SetText(text)
	m.SetClassName("form-message " + kind)
	m.SetStyle("display", "block")
}
