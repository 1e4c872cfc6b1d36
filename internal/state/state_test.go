package state

import (
	"errors"
	"reflect"
	"testing"

	"github.com/five82/roster/internal/catalog"
)

func TestNew_MountDefaults(t *testing.T) {
	s := New()
	if s.CurrentPage != 1 || s.TotalPages != 1 {
		t.Fatalf("New() pages = %d/%d, want 1/1", s.CurrentPage, s.TotalPages)
	}
	if s.Loading || s.SearchTerm != "" || s.Selected != nil {
		t.Fatalf("New() = %#v, want idle empty state", s)
	}
}

func TestPageCount_IsCeilOfTotalOverPageSize(t *testing.T) {
	for total := 0; total <= 1000; total++ {
		want := (total + 9) / 10
		if want < 1 {
			want = 1
		}
		if got := PageCount(total); got != want {
			t.Fatalf("PageCount(%d) = %d, want %d", total, got, want)
		}
	}
	if got := PageCount(-5); got != 1 {
		t.Fatalf("PageCount(-5) = %d, want 1", got)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       int
	}{
		{"below range", 0, 5, 1},
		{"negative", -3, 5, 1},
		{"in range", 3, 5, 3},
		{"above range", 9, 5, 5},
		{"zero total pages", 2, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPage(tt.page, tt.totalPages); got != tt.want {
				t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.totalPages, got, tt.want)
			}
		})
	}
}

func TestRenderingPredicates(t *testing.T) {
	s := New()
	s.Loading = true
	if !s.ShowLoading() || s.ShowEmpty() || s.ShowPagination() {
		t.Fatalf("loading state predicates wrong: %+v", s)
	}

	s.Loading = false
	if !s.ShowEmpty() || s.ShowPagination() {
		t.Fatalf("empty state predicates wrong: %+v", s)
	}

	s.Characters = []catalog.Character{{Name: "Leia Organa"}}
	if s.ShowEmpty() || !s.ShowPagination() {
		t.Fatalf("loaded state predicates wrong: %+v", s)
	}

	s.LoadErr = errors.New("boom")
	s.Characters = nil
	if !s.ShowEmpty() {
		t.Fatalf("failed load should still show the empty state")
	}

	if s.ModalOpen() {
		t.Fatalf("ModalOpen() = true with nil Selected")
	}
	s.Selected = &Detail{}
	if !s.ModalOpen() {
		t.Fatalf("ModalOpen() = false with Selected set")
	}
}

func TestPageButtonsAndBounds(t *testing.T) {
	s := New()
	if got := s.PageButtons(); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("PageButtons() = %v, want [1]", got)
	}
	if s.HasPrev() || s.HasNext() {
		t.Fatalf("single page should have neither prev nor next")
	}

	s.TotalPages = 4
	s.CurrentPage = 2
	if got := s.PageButtons(); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Fatalf("PageButtons() = %v, want [1 2 3 4]", got)
	}
	if !s.HasPrev() || !s.HasNext() {
		t.Fatalf("page 2 of 4 should have prev and next")
	}
}

func TestMoveCursorStaysOnPage(t *testing.T) {
	s := New()
	s.MoveCursor(3)
	if s.Cursor != 0 {
		t.Fatalf("cursor on empty page = %d, want 0", s.Cursor)
	}

	s.Characters = []catalog.Character{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	s.MoveCursor(1)
	if c, ok := s.Highlighted(); !ok || c.Name != "b" {
		t.Fatalf("Highlighted() = %v, %v; want b", c, ok)
	}
	s.MoveCursor(10)
	if s.Cursor != 2 {
		t.Fatalf("cursor = %d, want clamped to 2", s.Cursor)
	}
	s.MoveCursor(-10)
	if s.Cursor != 0 {
		t.Fatalf("cursor = %d, want clamped to 0", s.Cursor)
	}
}
