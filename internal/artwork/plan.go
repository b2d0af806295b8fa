package artwork

import (
	"fmt"
	"time"

	"github.com/vmunix/rustizarr/internal/overlay"
	"github.com/vmunix/rustizarr/internal/plex"
)

// Badge geometry, as fractions of the canvas height.
const (
	TopBadgeHeight   = 0.065
	CodecBadgeHeight = 0.050
	ScoreBadgeHeight = 0.065
	movieFreshDays   = 7
	seriesFreshDays  = 30
	secondsPerDay    = 86400
)

// Corner anchors a badge.
type Corner int

const (
	TopLeft Corner = iota
	BottomLeft
)

// BorderKind tells which of the three mutually exclusive borders applies.
type BorderKind int

const (
	BorderInnerGlow BorderKind = iota
	BorderRecentlyAdded
	BorderStatus
)

func (k BorderKind) String() string {
	switch k {
	case BorderStatus:
		return "status"
	case BorderRecentlyAdded:
		return "recently_added"
	default:
		return "inner_glow"
	}
}

// Layer is one compositing step. The concrete types below are the only
// implementations.
type Layer interface {
	layer()
}

// Gradient shades the top and bottom of the poster.
type Gradient struct {
	Top, Bottom string
}

// Title draws the banner text near the bottom.
type Title struct {
	Text string
	Font string
}

// Badge places an asset in a corner. Consecutive top-left badges stack
// horizontally.
type Badge struct {
	Asset  string
	Corner Corner
	Height float64
}

// ScoreBadge places the audience badge bottom-right with the rating on it.
type ScoreBadge struct {
	Asset  string
	Score  float64
	Font   string
	Height float64
}

// Border stretches a frame over the whole canvas. Fallback is used when
// Asset is missing; it is empty for the inner glow itself.
type Border struct {
	Kind     BorderKind
	Asset    string
	Fallback string
}

func (Gradient) layer()   {}
func (Title) layer()      {}
func (Badge) layer()      {}
func (ScoreBadge) layer() {}
func (Border) layer()     {}

// Subject is what the planner needs to know about an item.
type Subject struct {
	Kind    plex.Kind
	Title   string // as printed on the banner
	Rating  *float64
	AddedAt int64 // unix seconds, 0 when unknown
	Status  string
	Media   *plex.Media
}

// SubjectFor builds the subject of a movie or show. Status is only
// meaningful for shows.
func SubjectFor(item *plex.Item, status string) Subject {
	s := Subject{
		Kind:    item.Type,
		Title:   item.Title,
		Rating:  item.AudienceRating,
		AddedAt: item.AddedAt,
		Status:  status,
	}
	if s.Kind == "" {
		s.Kind = plex.KindMovie
	}
	if s.Kind == plex.KindMovie {
		s.Status = ""
		s.Media = item.PrimaryMedia()
	}
	return s
}

// SeasonSubject builds the subject of a season, titled after its show and
// carrying the show's status.
func SeasonSubject(season *plex.Item, showTitle, showStatus string) Subject {
	return Subject{
		Kind:    plex.KindSeason,
		Title:   SeasonTitle(showTitle, season.Index),
		Rating:  season.AudienceRating,
		AddedAt: season.AddedAt,
		Status:  showStatus,
	}
}

// SeasonTitle is the banner text of a season poster.
func SeasonTitle(showTitle string, n int) string {
	return fmt.Sprintf("%s - Saison %d", showTitle, n)
}

// Plan returns the ordered layers for a subject.
func Plan(s Subject, now time.Time) []Layer {
	layers := []Layer{
		Gradient{Top: overlay.GradientTop, Bottom: overlay.GradientBottom},
		Title{Text: s.Title, Font: overlay.TitleFont},
	}

	if s.Kind == plex.KindMovie {
		if s.Media != nil {
			if asset, ok := ResolutionBadge(s.Media.VideoResolution); ok {
				layers = append(layers, Badge{Asset: overlay.Resolution(asset), Corner: TopLeft, Height: TopBadgeHeight})
			}
		}
		if asset, ok := EditionBadge(s.Title); ok {
			layers = append(layers, Badge{Asset: overlay.Edition(asset), Corner: TopLeft, Height: TopBadgeHeight})
		}
		if asset, ok := CodecBadge(s.Media); ok {
			layers = append(layers, Badge{Asset: overlay.Codec(asset), Corner: BottomLeft, Height: CodecBadgeHeight})
		}
	}

	if s.Rating != nil {
		layers = append(layers, ScoreBadge{
			Asset:  overlay.Audience(AudienceBadge(*s.Rating)),
			Score:  *s.Rating,
			Font:   overlay.ScoreFont,
			Height: ScoreBadgeHeight,
		})
	}

	return append(layers, SelectBorder(s, now))
}

// SelectBorder picks exactly one border: status, else recently added,
// else inner glow.
func SelectBorder(s Subject, now time.Time) Border {
	if s.Kind != plex.KindMovie && s.Status != "" {
		return Border{Kind: BorderStatus, Asset: overlay.Status(StatusBorder(s.Status)), Fallback: overlay.InnerGlow}
	}
	if RecentlyAdded(s.Kind, s.AddedAt, now) {
		return Border{Kind: BorderRecentlyAdded, Asset: overlay.RecentlyAdded, Fallback: overlay.InnerGlow}
	}
	return Border{Kind: BorderInnerGlow, Asset: overlay.InnerGlow}
}

// RecentlyAdded reports whether whole days since addedAt are within the
// freshness window: 7 days for movies, 30 for shows and seasons.
func RecentlyAdded(kind plex.Kind, addedAt int64, now time.Time) bool {
	if addedAt <= 0 {
		return false
	}
	elapsed := now.Unix() - addedAt
	if elapsed < 0 {
		elapsed = 0
	}
	window := int64(seriesFreshDays)
	if kind == plex.KindMovie {
		window = movieFreshDays
	}
	return elapsed/secondsPerDay <= window
}
