package events

import "github.com/atomicstack/portfolio-tui/internal/logging"

type ThemeTracer struct{}

type NavTracer struct{}

type TypingTracer struct{}

type RevealTracer struct{}

type FormTracer struct{}

type ScrollTracer struct{}

type ActionTracer struct{}

var (
	Theme  = ThemeTracer{}
	Nav    = NavTracer{}
	Typing = TypingTracer{}
	Reveal = RevealTracer{}
	Form   = FormTracer{}
	Scroll = ScrollTracer{}
	Action = ActionTracer{}
)

func (ThemeTracer) Apply(theme string) {
	logging.Trace("theme.apply", map[string]interface{}{"theme": theme})
}

func (ThemeTracer) Toggle(from, to string) {
	logging.Trace("theme.toggle", map[string]interface{}{"from": from, "to": to})
}

func (NavTracer) Active(section string) {
	logging.Trace("nav.active", map[string]interface{}{"section": section})
}

func (NavTracer) Menu(open bool) {
	logging.Trace("nav.menu", map[string]interface{}{"open": open})
}

func (NavTracer) Filter(query string, matches int) {
	logging.Trace("nav.filter", map[string]interface{}{"query": query, "matches": matches})
}

func (TypingTracer) Phrase(index int, phrase string) {
	logging.Trace("typing.phrase", map[string]interface{}{"index": index, "phrase": phrase})
}

func (RevealTracer) Reveal(target string) {
	logging.Trace("reveal.fade-in", map[string]interface{}{"target": target})
}

func (RevealTracer) Counter(target string, value float64) {
	logging.Trace("reveal.counter", map[string]interface{}{"target": target, "count": value})
}

func (RevealTracer) SkillCategory(target string, bars int) {
	logging.Trace("reveal.skills", map[string]interface{}{"target": target, "bars": bars})
}

func (FormTracer) Validate(field, message string) {
	logging.Trace("form.validate", map[string]interface{}{"field": field, "error": message})
}

func (FormTracer) Blocked(fields []string) {
	logging.Trace("form.blocked", map[string]interface{}{"fields": fields})
}

func (FormTracer) Submit(id string) {
	logging.Trace("form.submit", map[string]interface{}{"id": id})
}

func (FormTracer) Sent(id string) {
	logging.Trace("form.sent", map[string]interface{}{"id": id})
}

func (ScrollTracer) Anchor(href string, offset int) {
	logging.Trace("scroll.anchor", map[string]interface{}{"href": href, "offset": offset})
}

func (ActionTracer) Run(id, key string) {
	logging.Trace("action.run", map[string]interface{}{"id": id, "key": key})
}

func (ActionTracer) Unknown(key string) {
	logging.Trace("action.unknown", map[string]interface{}{"key": key})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}
