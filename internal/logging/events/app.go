package events

import "github.com/atomicstack/portfolio-tui/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Greeting(lines []string) {
	logging.Trace("app.greeting", map[string]interface{}{"lines": lines})
}
