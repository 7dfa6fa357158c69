// Package ui contains the Bubble Tea program that renders the portfolio page
// in a terminal. The package keeps Model focused on message orchestration,
// while dedicated helpers own layout, navigation, input, forms and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so key presses, mouse wheel
//     events, resizes and timer callbacks each have a focused function.
//   - Key presses go to the nav menu when it is open, then to the focused
//     contact form control, and finally through the keymap to the command bus
//     (internal/ui/command).
//   - Page behaviour lives in internal/page. The model only forwards browser
//     style events to the controller: ctrl.Scroll on viewport moves,
//     ctrl.Blur and ctrl.Input from form controls, ActivateNavLink and
//     ClickAnchor from navigation.
//
// Document and layout:
//   - newDocument builds the dom tree the controller expects (ids, classes,
//     data attributes). Leaf blocks render a fixed number of terminal rows;
//     layout converts rows into pixel offsets using the configured row height
//     so the observers and scroll thresholds work in page units.
//   - View draws the navbar, the visible slice of blocks, the orb gutter and
//     any overlay. Unrevealed blocks are dimmed until their fade-in class is
//     set.
//
// Timers:
//   - The controller schedules work through clock.Scheduler. At runtime the
//     scheduler posts callbacks into a channel that Update drains as
//     timerMsg, so every callback runs on the event loop. Tests use the
//     virtual clock and the Harness instead.
package ui
