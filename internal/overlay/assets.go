// Package overlay locates and loads the artwork assets composited onto
// posters: PNG badges and borders, gradients and TrueType fonts.
package overlay

import "path"

// Asset paths relative to the overlay root.
const (
	GradientTop    = "gradients/gradient_top.png"
	GradientBottom = "gradients/gradient_bottom.png"
	InnerGlow      = "overlay-innerglow.png"
	RecentlyAdded  = "recently_added.png"

	TitleFont = "fonts/Colus-Regular.ttf"
	ScoreFont = "fonts/AvenirNextLTPro-Bold.ttf"
)

// Status returns the path of a status border file.
func Status(file string) string { return path.Join("Status", file) }

// Resolution returns the path of a resolution badge.
func Resolution(file string) string { return path.Join("media_info", "resolution", file) }

// Edition returns the path of an edition badge.
func Edition(file string) string { return path.Join("media_info", "edition", file) }

// Codec returns the path of a combined codec badge.
func Codec(file string) string { return path.Join("media_info", "codec", file) }

// Audience returns the path of an audience score badge.
func Audience(file string) string { return path.Join("audience_score", file) }
