package processor

import "errors"

var (
	// ErrNoExternalID indicates the item has no TMDB id.
	ErrNoExternalID = errors.New("no external id")

	// ErrNoImage indicates TMDB has no usable poster for the item.
	ErrNoImage = errors.New("no poster found")

	// ErrSeasonNotFound indicates the show has no season with that number.
	ErrSeasonNotFound = errors.New("season not found")
)
