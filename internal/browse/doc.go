// Package browse orchestrates roster's fetches: debounced search, paginated
// list loading and detail enrichment.
//
// The package has no UI dependency. A Session mutates a state.State in
// response to events and hands back blocking work functions; the caller runs
// them off the event loop and feeds the results back through ApplyList or
// ApplyDetail. In the TUI each work function becomes a tea.Cmd.
//
// Every fetch is tagged with a sequence number. A result is committed only if
// it answers the latest request of its kind, so a slow response cannot
// overwrite a newer one. Superseded requests also have their contexts
// cancelled, and every request carries a timeout.
//
// Enrichment is all-or-nothing: homeworld, the first species and all films are
// fetched under one errgroup and a single failure fails the detail.
package browse
