package processor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/rustizarr/internal/artwork"
	"github.com/vmunix/rustizarr/internal/plex"
)

// Report summarizes a library scan.
type Report struct {
	Kind     plex.Kind
	Results  []Result
	Duration time.Duration
}

// Count returns how many results have the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome.Status == s {
			n++
		}
	}
	return n
}

// Processed returns the number of published posters.
func (r *Report) Processed() int {
	return r.Count(StatusProcessed)
}

// String renders one line per item followed by a summary.
func (r *Report) String() string {
	var b strings.Builder
	for _, res := range r.Results {
		fmt.Fprintf(&b, "%s : '%s'\n", res.Outcome, res.Title)
	}
	fmt.Fprintf(&b, "%d %s(s): %d processed, %d already processed, %d skipped, %d failed (%s)\n",
		len(r.Results), r.Kind,
		r.Count(StatusProcessed),
		r.Count(StatusSkipped),
		r.Count(StatusNoID)+r.Count(StatusNoImage),
		r.Count(StatusFailed),
		r.Duration.Round(time.Millisecond))
	return b.String()
}

// ScanMovies processes every movie of a library. The listing omits labels
// and streams, so each movie is fetched in full first.
func (p *Processor) ScanMovies(ctx context.Context, libraryID string, parallel int, force bool) (*Report, error) {
	start := time.Now()
	items, err := p.plex.List(ctx, libraryID, plex.KindMovie)
	if err != nil {
		return nil, fmt.Errorf("list library %s: %w", libraryID, err)
	}
	p.log.Info("movie scan started", "library", libraryID, "items", len(items))

	results := p.dispatch(ctx, items, parallel, func(ctx context.Context, summary *plex.Item) Outcome {
		item, err := p.plex.Item(ctx, summary.RatingKey)
		if err != nil {
			p.log.Warn("detail fetch failed", "key", summary.RatingKey, "title", summary.Title, "error", err)
			return failed(fmt.Errorf("details of %s: %w", summary.Title, err))
		}
		item.Type = plex.KindMovie
		return p.ProcessMovie(ctx, item, force)
	})

	return p.report(plex.KindMovie, results, start), nil
}

// ScanShows processes every show of a library.
func (p *Processor) ScanShows(ctx context.Context, libraryID string, parallel int, force bool) (*Report, error) {
	start := time.Now()
	items, err := p.plex.List(ctx, libraryID, plex.KindShow)
	if err != nil {
		return nil, fmt.Errorf("list library %s: %w", libraryID, err)
	}
	p.log.Info("show scan started", "library", libraryID, "items", len(items))

	for i := range items {
		items[i].Type = plex.KindShow
	}
	results := p.ProcessMany(ctx, items, parallel, force)

	return p.report(plex.KindShow, results, start), nil
}

// ScanSeasons processes every season of a show. The show status is looked
// up once and shared by all seasons.
func (p *Processor) ScanSeasons(ctx context.Context, showKey string, parallel int, force bool) (*Report, error) {
	start := time.Now()
	show, err := p.plex.Item(ctx, showKey)
	if err != nil {
		return nil, fmt.Errorf("show %s: %w", showKey, err)
	}
	seasons, err := p.plex.Seasons(ctx, showKey)
	if err != nil {
		return nil, fmt.Errorf("seasons of %s: %w", showKey, err)
	}
	status := p.showStatus(ctx, show.TMDBID())
	p.log.Info("season scan started", "show", show.Title, "seasons", len(seasons), "status", status)

	titles := make(map[string]string, len(seasons))
	for _, s := range seasons {
		titles[s.RatingKey] = artwork.SeasonTitle(show.Title, s.Index)
	}

	results := p.dispatch(ctx, seasons, parallel, func(ctx context.Context, season *plex.Item) Outcome {
		return p.processSeason(ctx, show, season, status, force)
	})
	for i := range results {
		results[i].Title = titles[results[i].Key]
	}

	return p.report(plex.KindSeason, results, start), nil
}

func (p *Processor) report(kind plex.Kind, results []Result, start time.Time) *Report {
	r := &Report{Kind: kind, Results: results, Duration: time.Since(start)}
	p.log.Info("scan finished",
		"kind", kind,
		"items", len(results),
		"processed", r.Count(StatusProcessed),
		"skipped", r.Count(StatusSkipped),
		"failed", r.Count(StatusFailed),
		"duration_ms", r.Duration.Milliseconds())
	return r
}
