// Package artwork decides which overlay layers a poster receives. Every
// function here is pure: the same item and clock yield the same plan.
package artwork

import "strings"

// rule maps any of several lowercase keys to an asset file name.
type rule struct {
	keys  []string
	asset string
}

// resolutionRules are matched against the exact lowercase video resolution.
var resolutionRules = []rule{
	{[]string{"4k", "ultra hd"}, "Ultra-HD.png"},
	{[]string{"1080", "1080p", "fhd"}, "1080P.png"},
}

// editionRules are matched as substrings of the lowercase title, in order.
var editionRules = []rule{
	{[]string{"director's cut", "director cut"}, "Directors-Cut.png"},
	{[]string{"extended"}, "Extended-Edition.png"},
	{[]string{"remastered"}, "Remastered.png"},
	{[]string{"uncut"}, "Uncut.png"},
	{[]string{"imax"}, "IMAX.png"},
}

// statusRules are matched against the exact lowercase show status.
var statusRules = []rule{
	{[]string{"returning series", "returning"}, "returning_border.png"},
	{[]string{"canceled", "cancelled"}, "cancelled_full.png"},
	{[]string{"ended"}, "ended_border.png"},
	{[]string{"in production", "airing"}, "airing_border.png"},
}

const defaultStatusBorder = "airing_border.png"

// audienceRules are tried in order; the first threshold reached wins.
var audienceRules = []struct {
	min   float64
	asset string
}{
	{8.0, "audience_score_high.png"},
	{6.0, "audience_score_mid.png"},
}

const lowAudienceBadge = "audience_score_low.png"

func matchExact(rules []rule, value string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, r := range rules {
		for _, k := range r.keys {
			if v == k {
				return r.asset, true
			}
		}
	}
	return "", false
}

func matchContains(rules []rule, value string) (string, bool) {
	v := strings.ToLower(value)
	for _, r := range rules {
		for _, k := range r.keys {
			if strings.Contains(v, k) {
				return r.asset, true
			}
		}
	}
	return "", false
}

// ResolutionBadge maps a Plex videoResolution to its badge file.
func ResolutionBadge(videoResolution string) (string, bool) {
	return matchExact(resolutionRules, videoResolution)
}

// EditionBadge finds an edition keyword in the title.
func EditionBadge(title string) (string, bool) {
	return matchContains(editionRules, title)
}

// AudienceBadge maps a 0-10 audience rating to its badge file.
func AudienceBadge(rating float64) string {
	for _, r := range audienceRules {
		if rating >= r.min {
			return r.asset
		}
	}
	return lowAudienceBadge
}

// StatusBorder maps a TMDB show status to its border file. Unknown
// statuses use the airing border.
func StatusBorder(status string) string {
	if asset, ok := matchExact(statusRules, status); ok {
		return asset
	}
	return defaultStatusBorder
}
