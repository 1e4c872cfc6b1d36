package browse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/five82/roster/internal/catalog"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/state"
)

// Enricher resolves a character's homeworld, species and films into names.
type Enricher struct {
	fetcher ResourceFetcher
	logger  zerolog.Logger
}

// NewEnricher returns an Enricher backed by fetcher.
func NewEnricher(fetcher ResourceFetcher) *Enricher {
	return &Enricher{
		fetcher: fetcher,
		logger:  logging.NewLogger("browse"),
	}
}

// Enrich builds a Detail for summary. Homeworld, the first species and every
// film are fetched concurrently. If any fetch fails the whole enrichment
// fails and no partial Detail is returned.
func (e *Enricher) Enrich(ctx context.Context, summary catalog.Character) (state.Detail, error) {
	start := time.Now()
	defer func() {
		enrichmentDuration.Observe(time.Since(start).Seconds())
	}()

	g, gctx := errgroup.WithContext(ctx)

	var homeworld string
	if strings.TrimSpace(summary.Homeworld) != "" {
		g.Go(func() error {
			planet, err := e.fetcher.FetchPlanet(gctx, summary.Homeworld)
			if err != nil {
				return fmt.Errorf("fetch homeworld: %w", err)
			}
			homeworld = planet.Name
			return nil
		})
	}

	species := state.UnknownSpecies
	if len(summary.Species) > 0 {
		g.Go(func() error {
			sp, err := e.fetcher.FetchSpecies(gctx, summary.Species[0])
			if err != nil {
				return fmt.Errorf("fetch species: %w", err)
			}
			species = sp.Name
			return nil
		})
	}

	// Indexed by position in summary.Films, not completion order.
	titles := make([]string, len(summary.Films))
	for i, filmURL := range summary.Films {
		g.Go(func() error {
			film, err := e.fetcher.FetchFilm(gctx, filmURL)
			if err != nil {
				return fmt.Errorf("fetch film %d: %w", i+1, err)
			}
			titles[i] = film.Title
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		enrichmentsTotal.WithLabelValues("error").Inc()
		return state.Detail{}, fmt.Errorf("enrich %q: %w", summary.Name, err)
	}
	enrichmentsTotal.WithLabelValues("ok").Inc()

	return state.Detail{
		Character:     summary,
		HomeworldName: homeworld,
		SpeciesName:   species,
		FilmTitles:    titles,
	}, nil
}
