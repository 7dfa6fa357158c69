package page

import (
	"context"
	"errors"

	"github.com/atomicstack/portfolio-tui/internal/logging"
	"github.com/atomicstack/portfolio-tui/internal/logging/events"
	"github.com/atomicstack/portfolio-tui/internal/prefs"
)

const (
	ThemeKey  = "theme"
	ThemeAttr = "data-theme"
	ThemeDark = "dark"
	// ThemeLight is the only alternative to the default.
	ThemeLight = "light"
)

func (c *Controller) applyStoredTheme(ctx context.Context) {
	theme := ThemeDark
	stored, err := c.store.Get(ctx, ThemeKey)
	switch {
	case err == nil && stored == ThemeLight:
		theme = ThemeLight
	case err != nil && !errors.Is(err, prefs.ErrNotFound):
		logging.Error(err)
	}
	c.el.Root.SetAttr(ThemeAttr, theme)
	events.Theme.Apply(theme)
}

// Theme returns the theme currently applied to the document.
func (c *Controller) Theme() string {
	if v, ok := c.el.Root.Attr(ThemeAttr); ok && v == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// ToggleTheme flips the document theme, persists it and returns the new value.
func (c *Controller) ToggleTheme(ctx context.Context) string {
	from := c.Theme()
	next := ThemeLight
	if from == ThemeLight {
		next = ThemeDark
	}
	c.el.Root.SetAttr(ThemeAttr, next)
	if err := c.store.Set(ctx, ThemeKey, next); err != nil {
		logging.Error(err)
	}
	events.Theme.Toggle(from, next)
	return next
}
