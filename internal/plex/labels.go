package plex

import (
	"encoding/json"
	"strings"
)

type labelTag struct {
	Tag string `json:"tag"`
}

// Labels returns the item's label tags regardless of the payload shape.
func (it *Item) Labels() []string {
	raw := it.Label
	if len(raw) == 0 {
		return nil
	}

	var many []labelTag
	if err := json.Unmarshal(raw, &many); err == nil {
		tags := make([]string, 0, len(many))
		for _, l := range many {
			if l.Tag != "" {
				tags = append(tags, l.Tag)
			}
		}
		return tags
	}

	var one labelTag
	if err := json.Unmarshal(raw, &one); err == nil && one.Tag != "" {
		return []string{one.Tag}
	}
	return nil
}

// HasLabel reports whether the item carries tag, compared case-insensitively.
func (it *Item) HasLabel(tag string) bool {
	for _, l := range it.Labels() {
		if strings.EqualFold(l, tag) {
			return true
		}
	}
	return false
}
