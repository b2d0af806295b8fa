package processor

import (
	"context"
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/vmunix/rustizarr/internal/artwork"
	"github.com/vmunix/rustizarr/internal/plex"
	"github.com/vmunix/rustizarr/internal/tmdb"
)

// Process runs the pipeline matching the item's kind.
func (p *Processor) Process(ctx context.Context, item *plex.Item, force bool) Outcome {
	switch item.Type {
	case plex.KindShow:
		return p.ProcessShow(ctx, item, force)
	case plex.KindSeason:
		return p.processSeasonItem(ctx, item, force)
	default:
		return p.ProcessMovie(ctx, item, force)
	}
}

// ProcessMovie publishes the overlay poster of a movie.
func (p *Processor) ProcessMovie(ctx context.Context, item *plex.Item, force bool) Outcome {
	log := p.log.With("key", item.RatingKey, "title", item.Title)
	if !force && item.HasLabel(ProcessedLabel) {
		log.Debug("already processed")
		return skipped
	}

	id, ok := overrideID(item.Title)
	if ok {
		log.Debug("tmdb id overridden", "tmdb_id", id)
	} else {
		id = item.TMDBID()
	}
	if id == "" {
		log.Info("no tmdb id, skipping")
		return noID
	}

	src, err := p.posterURL(ctx, tmdb.MediaMovie, id)
	if err != nil {
		log.Error("poster lookup failed", "tmdb_id", id, "error", err)
		return failed(err)
	}
	if src == "" {
		log.Info("no poster found", "tmdb_id", id)
		return noImage
	}

	layers := artwork.Plan(artwork.SubjectFor(item, ""), p.now())
	return p.publish(ctx, item.RatingKey, item.Title, src, layers)
}

// ProcessShow publishes the overlay poster of a show.
func (p *Processor) ProcessShow(ctx context.Context, item *plex.Item, force bool) Outcome {
	log := p.log.With("key", item.RatingKey, "title", item.Title)
	if !force && item.HasLabel(ProcessedLabel) {
		log.Debug("already processed")
		return skipped
	}

	id := item.TMDBID()
	if id == "" {
		log.Info("no tmdb id, skipping")
		return noID
	}

	src, err := p.posterURL(ctx, tmdb.MediaTV, id)
	if err != nil {
		log.Error("poster lookup failed", "tmdb_id", id, "error", err)
		return failed(err)
	}
	if src == "" {
		log.Info("no poster found", "tmdb_id", id)
		return noImage
	}

	status := p.showStatus(ctx, id)
	layers := artwork.Plan(artwork.SubjectFor(item, status), p.now())
	return p.publish(ctx, item.RatingKey, item.Title, src, layers)
}

// ProcessSeason publishes the overlay poster of season n of a show.
func (p *Processor) ProcessSeason(ctx context.Context, showKey string, n int, force bool) Outcome {
	show, err := p.plex.Item(ctx, showKey)
	if err != nil {
		return failed(fmt.Errorf("show %s: %w", showKey, err))
	}
	seasons, err := p.plex.Seasons(ctx, showKey)
	if err != nil {
		return failed(fmt.Errorf("seasons of %s: %w", showKey, err))
	}

	i := slices.IndexFunc(seasons, func(s plex.Item) bool { return s.Index == n })
	if i < 0 {
		return failed(fmt.Errorf("%s season %d: %w", show.Title, n, ErrSeasonNotFound))
	}

	status := p.showStatus(ctx, show.TMDBID())
	return p.processSeason(ctx, show, &seasons[i], status, force)
}

func (p *Processor) processSeasonItem(ctx context.Context, season *plex.Item, force bool) Outcome {
	if !force && season.HasLabel(ProcessedLabel) {
		return skipped
	}
	show, err := p.plex.Item(ctx, season.ParentRatingKey)
	if err != nil {
		return failed(fmt.Errorf("show %s: %w", season.ParentRatingKey, err))
	}
	return p.processSeason(ctx, show, season, p.showStatus(ctx, show.TMDBID()), force)
}

// processSeason runs the season pipeline with the show's id and status.
func (p *Processor) processSeason(ctx context.Context, show, season *plex.Item, status string, force bool) Outcome {
	title := artwork.SeasonTitle(show.Title, season.Index)
	log := p.log.With("key", season.RatingKey, "title", title)
	if !force && season.HasLabel(ProcessedLabel) {
		log.Debug("already processed")
		return skipped
	}

	id := show.TMDBID()
	if id == "" {
		log.Info("show has no tmdb id, skipping")
		return noID
	}

	src, err := p.tmdb.SeasonPoster(ctx, id, season.Index)
	if err != nil {
		log.Error("season poster lookup failed", "tmdb_id", id, "error", err)
		return failed(err)
	}
	if src == "" {
		log.Info("no poster found", "tmdb_id", id)
		return noImage
	}

	layers := artwork.Plan(artwork.SeasonSubject(season, show.Title, status), p.now())
	return p.publish(ctx, season.RatingKey, title, src, layers)
}

// posterURL returns the textless poster, else the standard one. A failed
// textless lookup counts as none.
func (p *Processor) posterURL(ctx context.Context, mediaType tmdb.MediaType, id string) (string, error) {
	src, err := p.tmdb.TextlessPoster(ctx, mediaType, id)
	if err != nil {
		p.log.Warn("textless poster lookup failed", "type", mediaType, "tmdb_id", id, "error", err)
		src = ""
	}
	if src != "" {
		return src, nil
	}
	return p.tmdb.StandardPoster(ctx, mediaType, id)
}

// showStatus returns the TMDB status of a show, or "" if it is unknown.
func (p *Processor) showStatus(ctx context.Context, id string) string {
	if id == "" {
		return ""
	}
	status, err := p.tmdb.ShowStatus(ctx, id)
	if err != nil {
		p.log.Warn("show status lookup failed", "tmdb_id", id, "error", err)
		return ""
	}
	return status
}

// publish renders, uploads and labels. The label is only added after a
// successful upload; a labeling failure does not fail the item.
func (p *Processor) publish(ctx context.Context, key, title, src string, layers []artwork.Layer) Outcome {
	log := p.log.With("key", key, "title", title)

	data, err := p.renderer.Render(ctx, src, layers)
	if err != nil {
		log.Error("render failed", "source", src, "error", err)
		return failed(fmt.Errorf("render %s: %w", title, err))
	}

	if err := p.plex.UploadPoster(ctx, key, data); err != nil {
		log.Error("upload failed", "error", err)
		return failed(fmt.Errorf("upload %s: %w", title, err))
	}
	log.Info("poster uploaded", "size", humanize.Bytes(uint64(len(data))), "layers", len(layers))

	if err := p.plex.AddLabel(ctx, key, ProcessedLabel); err != nil {
		log.Warn("label failed", "error", err)
	}
	return processed
}
