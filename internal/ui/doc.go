// Package ui provides the terminal interface for browsing the character
// catalog.
//
// The UI is a Bubble Tea program. Model owns the widgets (search box,
// spinner, viewports) and a *browse.Session, which holds the screen state
// and the request bookkeeping. Every fetch runs as a tea.Cmd; results come
// back as messages and are applied through the session, which drops
// anything superseded by a newer request.
//
// Views:
//
//   - Browse: search box, character card grid, pagination bar and a status
//     line. Enter opens a detail modal once homeworld, species and films
//     are resolved.
//   - Activity log: the tail of the structured log file, colored by level.
//
// Typing in the search box restarts a debounce timer (debounceMsg); only the
// last term typed before a pause is fetched.
//
// Key bindings are listed in the help overlay (?).
package ui
