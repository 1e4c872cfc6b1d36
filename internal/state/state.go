package state

import (
	"time"

	"github.com/five82/roster/internal/catalog"
)

const (
	// ItemsPerPage is the fixed page size of the character service.
	ItemsPerPage = 10

	// UnknownSpecies is shown when a character references no species.
	UnknownSpecies = "Unknown"
)

// Detail is a character summary enriched with resolved display names.
// It is built fresh each time the modal opens and dropped when it closes.
type Detail struct {
	catalog.Character

	HomeworldName string // empty when the character has no homeworld
	SpeciesName   string
	FilmTitles    []string // same order as Character.Films
}

// State is everything the presentation layer renders.
type State struct {
	SearchTerm string // current text in the search box
	Query      string // last committed (debounced) search term

	CurrentPage int
	TotalPages  int
	Total       int

	Loading    bool
	Characters []catalog.Character
	LoadErr    error
	LoadedAt   time.Time

	Cursor int // highlighted card on the current page

	Enriching bool
	Selected  *Detail
	DetailErr error
}

// New returns the state at mount: empty search, page 1, not loading.
func New() State {
	return State{CurrentPage: 1, TotalPages: 1}
}

// PageCount returns ceil(total/ItemsPerPage), never less than 1.
func PageCount(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + ItemsPerPage - 1) / ItemsPerPage
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// ShowLoading reports whether the loading indicator is visible.
func (s State) ShowLoading() bool {
	return s.Loading
}

// ShowEmpty reports whether the empty-state message is visible.
func (s State) ShowEmpty() bool {
	return !s.Loading && len(s.Characters) == 0
}

// ShowPagination reports whether the grid and pagination controls are visible.
func (s State) ShowPagination() bool {
	return !s.Loading && len(s.Characters) > 0
}

// ModalOpen reports whether the detail modal is visible.
func (s State) ModalOpen() bool {
	return s.Selected != nil
}

// HasPrev reports whether a previous page exists.
func (s State) HasPrev() bool {
	return s.CurrentPage > 1
}

// HasNext reports whether a next page exists.
func (s State) HasNext() bool {
	return s.CurrentPage < s.TotalPages
}

// PageButtons lists the page numbers the pagination bar renders.
func (s State) PageButtons() []int {
	total := s.TotalPages
	if total < 1 {
		total = 1
	}
	pages := make([]int, total)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// Highlighted returns the character under the cursor.
func (s State) Highlighted() (catalog.Character, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Characters) {
		return catalog.Character{}, false
	}
	return s.Characters[s.Cursor], true
}

// MoveCursor shifts the cursor by delta, staying on the current page.
func (s *State) MoveCursor(delta int) {
	if len(s.Characters) == 0 {
		s.Cursor = 0
		return
	}
	next := s.Cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(s.Characters) {
		next = len(s.Characters) - 1
	}
	s.Cursor = next
}
