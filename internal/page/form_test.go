package page

import (
	"testing"
	"time"
)

func TestValidateReportsEveryField(t *testing.T) {
	errs := Validate(map[string]string{"name": "A", "email": "bad", "subject": "Hi", "message": "short"})
	want := Errors{
		"name":    "Name must be at least 2 characters",
		"email":   "Please enter a valid email address",
		"subject": "Subject must be at least 3 characters",
		"message": "Message must be at least 10 characters",
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), errs)
	}
	for k, v := range want {
		if errs[k] != v {
			t.Fatalf("field %s: expected %q, got %q", k, v, errs[k])
		}
	}

	ok := Validate(map[string]string{"name": "Jo", "email": "a@b.co", "subject": "Hey there", "message": "This is long enough."})
	if len(ok) != 0 {
		t.Fatalf("expected no errors, got %v", ok)
	}
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		field, value, want string
	}{
		{"name", "   ", "Name is required"},
		{"name", " J ", "Name must be at least 2 characters"},
		{"email", "", "Email is required"},
		{"email", "a @b.co", "Please enter a valid email address"},
		{"email", "a@bco", "Please enter a valid email address"},
		{"email", " a@b.co", "Please enter a valid email address"},
		{"email", "first.last@sub.example.org", ""},
		{"email", "a\u00a0b@c.de", "Please enter a valid email address"},
		{"email", "a\vb@c.de", "Please enter a valid email address"},
		{"email", "a@b\u2003c.de", "Please enter a valid email address"},
		{"email", "a@b.c\u3000de", "Please enter a valid email address"},
		{"email", "\ufeffa@b.de", "Please enter a valid email address"},
		{"email", "ü@bé.de", ""},
		{"name", "😀", "Name must be at least 2 characters"},
		{"subject", "Hey", ""},
		{"message", "  123456789  ", "Message must be at least 10 characters"},
		{"message", "ünïcödé ok", ""},
		{"unknown", "", ""},
	}
	for _, tt := range tests {
		if got := ValidateField(tt.field, tt.value); got != tt.want {
			t.Fatalf("%s=%q: expected %q, got %q", tt.field, tt.value, tt.want, got)
		}
	}
}

func fill(f *fixture, values map[string]string) {
	for k, v := range values {
		f.inputs[k].value = v
	}
}

func TestSubmitBlockedShowsAllErrors(t *testing.T) {
	f := newFixture(t)
	f.start()
	fill(f, map[string]string{"name": "A", "email": "bad", "subject": "Hi", "message": "short"})
	if f.ctrl.Submit() {
		t.Fatalf("expected submission blocked")
	}
	for _, name := range FieldNames {
		if f.ctrl.FieldError(name) == "" {
			t.Fatalf("expected error shown for %s", name)
		}
		if f.node(name).Style("border-color") != "error" {
			t.Fatalf("expected error border on %s", name)
		}
	}
	msg := f.node("formMessage")
	if msg.Text() != InvalidFormMessage || msg.ClassName() != "form-message error" || msg.Style("display") != "block" {
		t.Fatalf("unexpected banner %q %q %q", msg.Text(), msg.ClassName(), msg.Style("display"))
	}
	if f.ctrl.Submitting() {
		t.Fatalf("expected no pending submission")
	}
}

func TestSubmitSuccessFlow(t *testing.T) {
	f := newFixture(t)
	f.start()
	fill(f, map[string]string{"name": "Jo", "email": "a@b.co", "subject": "Hey there", "message": "This is long enough."})
	submit := f.node("submit")
	msg := f.node("formMessage")

	if !f.ctrl.Submit() {
		t.Fatalf("expected submission accepted")
	}
	if !f.ctrl.Submitting() || submit.Text() != SendingLabel {
		t.Fatalf("expected pending state, got %q", submit.Text())
	}
	if f.ctrl.Submit() {
		t.Fatalf("expected second submit ignored while pending")
	}

	f.clock.Advance(submitLatency - time.Millisecond)
	if msg.Text() != "" {
		t.Fatalf("expected no banner before latency elapses, got %q", msg.Text())
	}
	f.clock.Advance(time.Millisecond)
	if msg.Text() != SentMessage || msg.ClassName() != "form-message success" || msg.Style("display") != "block" {
		t.Fatalf("unexpected success banner %q %q", msg.Text(), msg.ClassName())
	}
	for _, name := range FieldNames {
		if f.inputs[name].value != "" {
			t.Fatalf("expected %s reset, got %q", name, f.inputs[name].value)
		}
	}
	if f.ctrl.Submitting() || submit.Text() != "Send Message" {
		t.Fatalf("expected submit restored, got %q", submit.Text())
	}

	f.clock.Advance(bannerLifetime)
	if msg.Style("display") != "none" {
		t.Fatalf("expected banner hidden after 5s, got %q", msg.Style("display"))
	}
}

func TestRevalidateOnlyAfterError(t *testing.T) {
	f := newFixture(t)
	f.start()
	name := f.inputs["name"]

	name.value = "A"
	f.ctrl.Input("name")
	if f.ctrl.FieldError("name") != "" {
		t.Fatalf("expected keystrokes ignored before any error")
	}

	f.ctrl.Blur("name")
	if f.ctrl.FieldError("name") == "" {
		t.Fatalf("expected blur to show an error")
	}

	name.value = ""
	f.ctrl.Input("name")
	if got := f.ctrl.FieldError("name"); got != "Name is required" {
		t.Fatalf("expected keystroke to re-validate, got %q", got)
	}
	name.value = "Jo"
	f.ctrl.Input("name")
	if got := f.ctrl.FieldError("name"); got != "" {
		t.Fatalf("expected error cleared once fixed, got %q", got)
	}
	if f.node("name").Style("border-color") != "default" {
		t.Fatalf("expected default border once valid")
	}

	name.value = "J"
	f.ctrl.Input("name")
	if f.ctrl.FieldError("name") != "" {
		t.Fatalf("expected keystrokes ignored again once the error cleared")
	}
}
