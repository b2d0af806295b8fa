// Package plex provides a client for the Plex Media Server JSON API.
package plex

import (
	"encoding/json"
	"strings"
	"time"
)

// Kind identifies the variant of a catalog item.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindShow   Kind = "show"
	KindSeason Kind = "season"
)

// sectionType returns the Plex library type filter for listing.
func (k Kind) sectionType() string {
	if k == KindShow {
		return "2"
	}
	return "1"
}

// Item is a movie, show or season as returned by Plex.
// Field names follow the Plex JSON payload so the value round-trips to
// frontends unchanged.
type Item struct {
	RatingKey      string   `json:"ratingKey"`
	Type           Kind     `json:"type,omitempty"`
	Title          string   `json:"title"`
	Year           int      `json:"year,omitempty"`
	AudienceRating *float64 `json:"audienceRating,omitempty"`
	AddedAt        int64    `json:"addedAt,omitempty"`

	// GUID is the legacy agent identifier, e.g.
	// "com.plexapp.agents.themoviedb://603?lang=en".
	GUID  string `json:"guid,omitempty"`
	GUIDs []GUID `json:"Guid,omitempty"`

	Media []Media `json:"Media,omitempty"`

	// Label is either an array of {"tag": ...} objects or a single object.
	Label json.RawMessage `json:"Label,omitempty"`

	// Season fields.
	Index           int    `json:"index,omitempty"`
	ParentRatingKey string `json:"parentRatingKey,omitempty"`
	ParentTitle     string `json:"parentTitle,omitempty"`
}

// GUID is an external identifier such as "tmdb://603".
type GUID struct {
	ID string `json:"id"`
}

// Media is one version of a movie file.
type Media struct {
	VideoResolution string `json:"videoResolution,omitempty"`
	AudioCodec      string `json:"audioCodec,omitempty"`

	// Part holds the nested parts/streams payload untouched. Plex emits
	// both Part and Part[].Stream as either a list or a single object.
	Part json.RawMessage `json:"Part,omitempty"`
}

// Rating returns the audience rating if Plex reported one.
func (it *Item) Rating() (float64, bool) {
	if it.AudienceRating == nil {
		return 0, false
	}
	return *it.AudienceRating, true
}

// AddedTime returns when the item was added to the library.
func (it *Item) AddedTime() (time.Time, bool) {
	if it.AddedAt <= 0 {
		return time.Time{}, false
	}
	return time.Unix(it.AddedAt, 0), true
}

// PrimaryMedia returns the first media version, or nil.
func (it *Item) PrimaryMedia() *Media {
	if len(it.Media) == 0 {
		return nil
	}
	return &it.Media[0]
}

// TMDBID extracts the TMDB id. Movies fall back to the legacy agent guid;
// shows only consult the Guid list. Seasons carry no id of their own.
func (it *Item) TMDBID() string {
	for _, g := range it.GUIDs {
		if id, ok := strings.CutPrefix(g.ID, "tmdb://"); ok {
			return id
		}
	}
	if it.Type == KindShow || it.Type == KindSeason {
		return ""
	}
	_, rest, ok := strings.Cut(it.GUID, "themoviedb://")
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, "?")
	return id
}

// container is the envelope of every Plex JSON response.
type container struct {
	MediaContainer struct {
		Size     int               `json:"size"`
		Metadata []json.RawMessage `json:"Metadata"`
	} `json:"MediaContainer"`
}
