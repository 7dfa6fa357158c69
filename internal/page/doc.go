// Package page is the behaviour controller for the portfolio page.
//
// A Controller is built once from an explicit dependency set: the document
// handles it mutates, a one-shot timer scheduler, a visibility observer
// factory, a preference store and a scroller. Each behaviour lives in its own
// file and talks to the others only through shared nodes:
//
//   - theme.go: the dark/light document attribute and its stored preference.
//   - nav.go: the scrolled navbar flag, the mobile menu and the active
//     section highlight.
//   - typing.go: the role phrase typewriter, a self-rescheduling state machine.
//   - reveal.go: fade-in on first visibility and the stat counter.
//   - skills.go: staggered skill bar fill per category.
//   - form.go: contact field validation and the simulated submission.
//   - scroll.go: anchor scrolling and the parallax orbs.
//
// Nothing in the package blocks or locks. Every method, and every callback the
// scheduler runs, is expected on the same event loop.
package page
