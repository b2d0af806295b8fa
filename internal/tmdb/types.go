// Package tmdb provides a client for The Movie Database API.
package tmdb

// MediaType selects the TMDB endpoint family.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// Details is the subset of movie, show and season details the poster
// pipeline consumes.
type Details struct {
	PosterPath string `json:"poster_path"` // "/abc123.jpg"
	Status     string `json:"status,omitempty"`
}

// Image is one poster candidate from an /images endpoint.
type Image struct {
	FilePath    string  `json:"file_path"`
	Language    *string `json:"iso_639_1"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	VoteAverage float64 `json:"vote_average"`
}

// Textless reports whether the poster carries no embedded title.
func (i Image) Textless() bool {
	return i.Language == nil || *i.Language == "xx" || *i.Language == "null"
}

func (i Image) pixels() int {
	return i.Width * i.Height
}

type imagesResponse struct {
	Posters []Image `json:"posters"`
}
