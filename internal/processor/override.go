package processor

import "strings"

// titleOverrides maps lowercased titles whose Plex match is known to be
// wrong onto the correct TMDB movie id.
var titleOverrides = map[string]string{
	"abyss":                      "1025527",
	"kingsman : le cercle d'or":  "343668",
	"kingsman the golden circle": "343668",
}

func overrideID(title string) (string, bool) {
	id, ok := titleOverrides[strings.ToLower(title)]
	return id, ok
}
