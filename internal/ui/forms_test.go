package ui

import (
	"testing"
	"time"

	"github.com/atomicstack/portfolio-tui/internal/page"
)

func TestContactFormValidatesAndSubmits(t *testing.T) {
	p := newTestPage(t)
	ctrl := p.h.Model().Controller()

	p.h.Keys("c")
	if got := p.h.Model().focusedName(); got != "name" {
		t.Fatalf("expected name focused, got %q", got)
	}
	p.h.Type("A")
	p.h.Keys("tab")
	if got := ctrl.FieldError("name"); got != "Name must be at least 2 characters" {
		t.Fatalf("expected short name error, got %q", got)
	}
	if got := p.node(t, "name").Style("border-color"); got != "error" {
		t.Fatalf("expected error border, got %q", got)
	}

	p.h.Type("bad")
	p.h.Keys("ctrl+s")
	if ctrl.Submitting() {
		t.Fatalf("expected invalid form to be blocked")
	}
	msg := p.node(t, "formMessage")
	if msg.Text() != page.InvalidFormMessage || !msg.HasClass("error") {
		t.Fatalf("expected invalid banner, got %q (%s)", msg.Text(), msg.ClassName())
	}
	if got := ctrl.FieldError("email"); got != "Please enter a valid email address" {
		t.Fatalf("expected email error, got %q", got)
	}

	p.h.Keys("shift+tab")
	p.h.Type("lex")
	if got := ctrl.FieldError("name"); got != "" {
		t.Fatalf("expected name error cleared while typing, got %q", got)
	}
	p.h.Keys("tab")
	p.h.Type("@example.com")
	if got := ctrl.FieldError("email"); got != "" {
		t.Fatalf("expected email error cleared, got %q", got)
	}
	p.h.Keys("enter")
	p.h.Type("Hello")
	p.h.Keys("tab")
	p.h.Type("Hello there, friend")
	if got := p.h.Model().focusedName(); got != "message" {
		t.Fatalf("expected message focused, got %q", got)
	}

	p.h.Keys("ctrl+s")
	submit := p.node(t, "submit")
	if !ctrl.Submitting() || submit.Text() != page.SendingLabel {
		t.Fatalf("expected pending submission, got %q", submit.Text())
	}
	p.h.Keys("ctrl+s")

	p.clock.Advance(1500 * time.Millisecond)
	if msg.Text() != page.SentMessage || !msg.HasClass("success") {
		t.Fatalf("expected success banner, got %q (%s)", msg.Text(), msg.ClassName())
	}
	if ctrl.Submitting() || submit.Text() != "Send Message" {
		t.Fatalf("expected submit restored, got %q", submit.Text())
	}
	for _, f := range p.h.Model().fields {
		if f.Value() != "" {
			t.Fatalf("expected %s cleared, got %q", f.name, f.Value())
		}
	}
	if got := msg.Style("display"); got != "block" {
		t.Fatalf("expected banner shown, got %q", got)
	}
	p.clock.Advance(5 * time.Second)
	if got := msg.Style("display"); got != "none" {
		t.Fatalf("expected banner hidden, got %q", got)
	}
}

func TestFormFocusWrapsAndEscapeLeaves(t *testing.T) {
	p := newTestPage(t)
	p.h.Keys("c", "shift+tab")
	if got := p.h.Model().focusedName(); got != "submit" {
		t.Fatalf("expected focus to wrap to submit, got %q", got)
	}
	p.h.Keys("tab")
	if got := p.h.Model().focusedName(); got != "name" {
		t.Fatalf("expected focus to wrap to name, got %q", got)
	}
	p.h.Keys("esc")
	if got := p.h.Model().focusedName(); got != "" {
		t.Fatalf("expected focus cleared, got %q", got)
	}
	if got := p.h.Model().Controller().FieldError("name"); got != "Name is required" {
		t.Fatalf("expected leaving an empty field to flag it, got %q", got)
	}
	p.h.Keys("t")
	if p.h.Model().Controller().Theme() != page.ThemeLight {
		t.Fatalf("expected page keys to work once the form is left")
	}
}

func TestMessageFieldAcceptsNewlines(t *testing.T) {
	p := newTestPage(t)
	p.h.Keys("c", "tab", "tab", "tab")
	p.h.Type("line one")
	p.h.Keys("enter")
	p.h.Type("line two")
	if got := p.h.Model().focusedName(); got != "message" {
		t.Fatalf("expected enter to stay in message, got %q", got)
	}
	if got := p.h.Model().fields[3].Value(); got != "line one\nline two" {
		t.Fatalf("expected multi-line value, got %q", got)
	}
}
