package main

import (
	"fmt"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/cases"

	"github.com/vmunix/rustizarr/internal/plex"
)

// minTitleScore is the lowest Jaro-Winkler similarity accepted by --title.
const minTitleScore = 0.85

// findByTitle returns the library item whose title is closest to query.
func findByTitle(items []plex.Item, query string) (*plex.Item, error) {
	fold := cases.Fold()
	want := fold.String(query)

	best, bestScore := -1, 0.0
	for i, it := range items {
		score := float64(edlib.JaroWinklerSimilarity(want, fold.String(it.Title)))
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 || bestScore < minTitleScore {
		return nil, fmt.Errorf("no title matching %q", query)
	}
	return &items[best], nil
}
