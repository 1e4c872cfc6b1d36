package browse

import (
	"context"

	"github.com/five82/roster/internal/catalog"
)

// CharacterLister fetches one page of characters.
type CharacterLister interface {
	FetchCharacters(ctx context.Context, query string, page int) (catalog.Page, error)
}

// ResourceFetcher resolves the resources a character references by URL.
type ResourceFetcher interface {
	FetchPlanet(ctx context.Context, rawURL string) (catalog.Planet, error)
	FetchSpecies(ctx context.Context, rawURL string) (catalog.Species, error)
	FetchFilm(ctx context.Context, rawURL string) (catalog.Film, error)
}

// Service is everything a Session needs from the character service.
// *catalog.Client implements it.
type Service interface {
	CharacterLister
	ResourceFetcher
}

var _ Service = (*catalog.Client)(nil)
