package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/roster/internal/browse"
	"github.com/five82/roster/internal/catalog"
)

type stubService struct {
	mu      sync.Mutex
	total   int
	listErr error
	queries []string
	pages   []int
}

func (s *stubService) FetchCharacters(_ context.Context, query string, page int) (catalog.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	s.pages = append(s.pages, page)
	if s.listErr != nil {
		return catalog.Page{}, s.listErr
	}
	if query == "Luke" {
		return catalog.Page{Results: []catalog.Character{luke()}, Total: 1}, nil
	}
	var results []catalog.Character
	for i := (page - 1) * 10; i < min(page*10, s.total); i++ {
		results = append(results, catalog.Character{Name: fmt.Sprintf("Character %d", i+1), BirthYear: "unknown"})
	}
	return catalog.Page{Results: results, Total: s.total}, nil
}

func (s *stubService) FetchPlanet(context.Context, string) (catalog.Planet, error) {
	return catalog.Planet{Name: "Tatooine"}, nil
}

func (s *stubService) FetchSpecies(context.Context, string) (catalog.Species, error) {
	return catalog.Species{Name: "Human"}, nil
}

func (s *stubService) FetchFilm(_ context.Context, url string) (catalog.Film, error) {
	return catalog.Film{Title: "Film " + url[len(url)-1:]}, nil
}

func (s *stubService) calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.pages...)
}

func luke() catalog.Character {
	return catalog.Character{
		Name:      "Luke Skywalker",
		BirthYear: "19BBY",
		Gender:    "male",
		Homeworld: "https://api.test/planets/1",
		Films:     []string{"https://api.test/films/1", "https://api.test/films/2"},
	}
}

func newTestModel(t *testing.T, svc browse.Service) Model {
	t.Helper()
	session := browse.NewSession(context.Background(), svc, browse.Options{
		SearchDelay:    10 * time.Millisecond,
		RequestTimeout: time.Second,
	})
	t.Cleanup(session.Close)

	m := New(Options{
		Session:   session,
		APIURL:    "https://api.test/v1",
		LogPath:   filepath.Join(t.TempDir(), "roster.log"),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

// run executes cmd and feeds list and detail results back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = run(t, m, c)
		}
	case listResultMsg, detailResultMsg, logLinesMsg:
		next, follow := m.Update(msg)
		m = next.(Model)
		m = run(t, m, follow)
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func plain(m Model) string {
	return ansi.Strip(m.View())
}

func TestModel_InitLoadsFirstPage(t *testing.T) {
	svc := &stubService{total: 25}
	m := newTestModel(t, svc)
	cmd := m.Init()
	assert.True(t, m.session.State.Loading)
	assert.Contains(t, plain(m), "Loading characters")

	m = run(t, m, cmd)

	assert.False(t, m.session.State.Loading)
	assert.Equal(t, 3, m.session.State.TotalPages)
	view := plain(m)
	assert.Contains(t, view, "Character 1")
	assert.Contains(t, view, "Showing 1-10 of 25")
	assert.Contains(t, view, "Page 1/3")
}

func TestModel_SearchIsDebounced(t *testing.T) {
	svc := &stubService{total: 25}
	m := newTestModel(t, svc)
	m = run(t, m, m.Init())

	m, _ = press(t, m, runes("/"))
	require.True(t, m.search.Focused())
	for _, r := range "Luke" {
		m, _ = press(t, m, runes(string(r)))
	}
	assert.Equal(t, "Luke", m.session.State.SearchTerm)
	assert.Equal(t, []int{1}, svc.calls(), "typing must not fetch")

	m = run(t, m, listCmd(m.session.Tick(time.Now().Add(time.Second))))

	assert.Equal(t, "Luke", m.session.State.Query)
	assert.Equal(t, 1, m.session.State.Total)
	assert.Contains(t, plain(m), "Luke Skywalker")
}

func TestModel_PageKeys(t *testing.T) {
	svc := &stubService{total: 25}
	m := newTestModel(t, svc)
	m = run(t, m, m.Init())

	m, cmd := press(t, m, runes("]"))
	m = run(t, m, cmd)
	assert.Equal(t, 2, m.session.State.CurrentPage)

	m, cmd = press(t, m, runes("9"))
	m = run(t, m, cmd)
	assert.Equal(t, 3, m.session.State.CurrentPage, "page digits clamp to the last page")
	assert.Contains(t, plain(m), "Showing 21-25 of 25")

	m, cmd = press(t, m, runes("]"))
	assert.Nil(t, cmd)
	assert.Equal(t, []int{1, 2, 3}, svc.calls())
}

func TestModel_OpenAndCloseDetail(t *testing.T) {
	svc := &stubService{total: 1}
	m := newTestModel(t, svc)
	m = run(t, m, listCmd(m.session.Load("Luke", 1)))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.session.State.Enriching)
	m = run(t, m, cmd)

	require.True(t, m.session.State.ModalOpen())
	view := plain(m)
	assert.Contains(t, view, "Tatooine")
	assert.Contains(t, view, "Unknown")
	assert.Contains(t, view, "1. Film 1")
	assert.Contains(t, view, "2. Film 2")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.session.State.ModalOpen())
	assert.Contains(t, plain(m), "Luke Skywalker")
}

func TestModel_EscCancelsPendingDetail(t *testing.T) {
	svc := &stubService{total: 1}
	m := newTestModel(t, svc)
	m = run(t, m, listCmd(m.session.Load("Luke", 1)))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.session.State.Enriching)

	m = run(t, m, cmd)
	assert.False(t, m.session.State.ModalOpen(), "late detail must be dropped")
}

func TestModel_ListFailureShowsError(t *testing.T) {
	svc := &stubService{listErr: errors.New("connection refused")}
	m := newTestModel(t, svc)
	m = run(t, m, m.Init())

	assert.False(t, m.session.State.Loading)
	assert.Contains(t, plain(m), "Failed to load characters")
	assert.Contains(t, plain(m), "Offline")
}

func TestModel_LogView(t *testing.T) {
	svc := &stubService{total: 1}
	m := newTestModel(t, svc)
	line := `{"level":"warn","component":"browse","time":"2026-01-02T15:04:05Z","message":"list fetch timed out"}`
	require.NoError(t, os.WriteFile(m.logPath, []byte(line+"\n"), 0o644))

	m, cmd := press(t, m, runes("L"))
	require.Equal(t, ViewLogs, m.currentView)
	m = run(t, m, cmd)

	view := plain(m)
	assert.Contains(t, view, "Activity Log")
	assert.Contains(t, view, "list fetch timed out")
	assert.Contains(t, view, "1 lines")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.logState.follow)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewBrowse, m.currentView)
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t, &stubService{total: 1})
	m, _ = press(t, m, runes("?"))
	assert.True(t, m.showHelp)
	assert.True(t, strings.Contains(plain(m), "Pages"))

	m, _ = press(t, m, runes("x"))
	assert.False(t, m.showHelp)
}
