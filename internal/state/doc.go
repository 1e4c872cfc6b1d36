// Package state defines the UI state container for roster.
//
// # Overview
//
// State holds everything the presentation layer renders: the search text,
// the committed query, pagination, the current page of characters, the
// loading flag and the open detail (if any). It is a plain struct with no
// locking. All mutation happens on the Bubble Tea event loop through the
// browse package's reducers, so there is exactly one writer.
//
// # Invariants
//
//   - TotalPages == PageCount(Total) >= 1
//   - 1 <= CurrentPage <= TotalPages (ClampPage enforces it)
//   - Selected is nil unless the detail modal is open
//
// # Rendering Predicates
//
// The view never inspects raw fields to decide what to draw; it asks:
//
//   - ShowLoading: spinner visible
//   - ShowEmpty: "no characters" / "failed to load" message visible
//   - ShowPagination: grid and page bar visible
//   - ModalOpen: detail overlay visible
//
// LoadErr distinguishes a failed list fetch from an empty result, which
// lets the view say "Failed to load" rather than "No characters found".
package state
