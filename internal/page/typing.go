package page

import (
	"time"

	"github.com/atomicstack/portfolio-tui/internal/logging/events"
)

const (
	typingStartDelay = 1000 * time.Millisecond
	typeDelay        = 100 * time.Millisecond
	deleteDelay      = 50 * time.Millisecond
	holdDelay        = 2000 * time.Millisecond
	nextPhraseDelay  = 500 * time.Millisecond
)

// typewriter is the typing/deleting state machine for the role phrases. The
// offset counts runes, so multi-byte characters appear whole.
type typewriter struct {
	phrases  [][]rune
	index    int
	offset   int
	deleting bool
}

func newTypewriter(phrases []string) *typewriter {
	w := &typewriter{}
	for _, p := range phrases {
		if p == "" {
			continue
		}
		w.phrases = append(w.phrases, []rune(p))
	}
	return w
}

// step performs one tick and returns the text to show and the delay before
// the next tick.
func (w *typewriter) step() (string, time.Duration) {
	phrase := w.phrases[w.index]
	var delay time.Duration
	if w.deleting {
		w.offset--
		delay = deleteDelay
	} else {
		w.offset++
		delay = typeDelay
	}
	text := string(phrase[:w.offset])

	switch {
	case !w.deleting && w.offset == len(phrase):
		delay = holdDelay
		w.deleting = true
	case w.deleting && w.offset == 0:
		w.deleting = false
		w.index = (w.index + 1) % len(w.phrases)
		delay = nextPhraseDelay
	}
	return text, delay
}

func (c *Controller) startTyping() {
	if len(c.writer.phrases) == 0 {
		return
	}
	c.sched.AfterFunc(typingStartDelay, c.typeRole)
}

func (c *Controller) typeRole() {
	before := c.writer.index
	text, delay := c.writer.step()
	if c.el.RoleText != nil {
		c.el.RoleText.SetText(text)
	}
	if c.writer.index != before {
		events.Typing.Phrase(c.writer.index, string(c.writer.phrases[c.writer.index]))
	}
	c.sched.AfterFunc(delay, c.typeRole)
}

// PhraseIndex returns the index of the phrase being typed or deleted.
func (c *Controller) PhraseIndex() int {
	return c.writer.index
}
