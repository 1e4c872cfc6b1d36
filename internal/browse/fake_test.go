package browse

import (
	"context"
	"fmt"
	"sync"

	"github.com/five82/roster/internal/catalog"
)

type listCall struct {
	Query string
	Page  int
}

// fakeService serves canned resources keyed by URL. Unknown URLs fail.
type fakeService struct {
	mu sync.Mutex

	pages   map[listCall]catalog.Page
	listErr error
	calls   []listCall

	planets map[string]string
	species map[string]string
	films   map[string]string

	// filmHook runs before a film lookup returns, letting tests reorder completions.
	filmHook func(ctx context.Context, url string)
}

func newFakeService() *fakeService {
	return &fakeService{
		pages:   map[listCall]catalog.Page{},
		planets: map[string]string{},
		species: map[string]string{},
		films:   map[string]string{},
	}
}

func (f *fakeService) FetchCharacters(ctx context.Context, query string, page int) (catalog.Page, error) {
	f.mu.Lock()
	call := listCall{Query: query, Page: page}
	f.calls = append(f.calls, call)
	p, ok := f.pages[call]
	err := f.listErr
	f.mu.Unlock()

	if err != nil {
		return catalog.Page{}, err
	}
	if err := ctx.Err(); err != nil {
		return catalog.Page{}, err
	}
	if !ok {
		return catalog.Page{Results: []catalog.Character{}}, nil
	}
	return p, nil
}

func (f *fakeService) FetchPlanet(_ context.Context, url string) (catalog.Planet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, ok := f.planets[url]
	if !ok {
		return catalog.Planet{}, &catalog.APIError{StatusCode: 404, Class: catalog.ErrorClassClient, URL: url}
	}
	return catalog.Planet{Name: name, URL: url}, nil
}

func (f *fakeService) FetchSpecies(_ context.Context, url string) (catalog.Species, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, ok := f.species[url]
	if !ok {
		return catalog.Species{}, &catalog.APIError{StatusCode: 404, Class: catalog.ErrorClassClient, URL: url}
	}
	return catalog.Species{Name: name, URL: url}, nil
}

func (f *fakeService) FetchFilm(ctx context.Context, url string) (catalog.Film, error) {
	if f.filmHook != nil {
		f.filmHook(ctx, url)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	title, ok := f.films[url]
	if !ok {
		return catalog.Film{}, fmt.Errorf("film %s: %w", url, &catalog.APIError{StatusCode: 404, Class: catalog.ErrorClassClient, URL: url})
	}
	return catalog.Film{Title: title, URL: url}, nil
}

func (f *fakeService) listCalls() []listCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]listCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// characters returns n placeholder summaries.
func characters(n int) []catalog.Character {
	out := make([]catalog.Character, n)
	for i := range out {
		out[i] = catalog.Character{Name: fmt.Sprintf("Character %d", i+1)}
	}
	return out
}
