package artwork

import (
	"encoding/json"
	"strings"

	"github.com/vmunix/rustizarr/internal/plex"
)

// Plex stream types.
const (
	streamVideo = 1
	streamAudio = 2
)

// codecFlags accumulates what the streams of one media version reveal.
type codecFlags struct {
	dolbyVision bool
	hdr         bool
	hdr10Plus   bool

	atmos  bool
	trueHD bool
	dtsHD  bool
	dtsX   bool
	ddPlus bool
}

// videoComponents and audioComponents are tried in order, first match wins.
var videoComponents = []struct {
	name  string
	match func(codecFlags) bool
}{
	{"DV-HDR", func(f codecFlags) bool { return f.dolbyVision && f.hdr }},
	{"DV-Plus", func(f codecFlags) bool { return f.dolbyVision && f.hdr10Plus }},
	{"DV", func(f codecFlags) bool { return f.dolbyVision }},
	{"Plus", func(f codecFlags) bool { return f.hdr10Plus }},
	{"HDR", func(f codecFlags) bool { return f.hdr }},
}

var audioComponents = []struct {
	name  string
	match func(codecFlags) bool
}{
	{"TrueHD-Atmos", func(f codecFlags) bool { return f.trueHD && f.atmos }},
	{"TrueHD", func(f codecFlags) bool { return f.trueHD }},
	{"DTS-X", func(f codecFlags) bool { return f.dtsX }},
	{"DTS-HD", func(f codecFlags) bool { return f.dtsHD }},
	{"Atmos", func(f codecFlags) bool { return f.atmos }},
	{"DigitalPlus", func(f codecFlags) bool { return f.ddPlus }},
}

// CodecBadge returns the combined video and audio badge file for a media
// version, e.g. "DV-HDR-TrueHD-Atmos.png". When the parts payload carries
// no streams the coarse audio codec is used alone.
func CodecBadge(m *plex.Media) (string, bool) {
	if m == nil {
		return "", false
	}

	flags, ok := streamFlags(m.Part)
	if !ok {
		flags = codecFlags{}
		applyAudioCodec(&flags, strings.ToLower(m.AudioCodec), "")
		return joinBadge("", audioName(flags))
	}
	return joinBadge(videoName(flags), audioName(flags))
}

func videoName(f codecFlags) string {
	for _, c := range videoComponents {
		if c.match(f) {
			return c.name
		}
	}
	return ""
}

func audioName(f codecFlags) string {
	for _, c := range audioComponents {
		if c.match(f) {
			return c.name
		}
	}
	return ""
}

func joinBadge(video, audio string) (string, bool) {
	switch {
	case video != "" && audio != "":
		return video + "-" + audio + ".png", true
	case video != "":
		return video + ".png", true
	case audio != "":
		return audio + ".png", true
	default:
		return "", false
	}
}

// streamFlags walks Part and Part.Stream, each either a list or a single
// object. It reports false when no part exposes a stream payload.
func streamFlags(raw json.RawMessage) (codecFlags, bool) {
	var flags codecFlags
	if len(raw) == 0 {
		return flags, false
	}

	var parts any
	if err := json.Unmarshal(raw, &parts); err != nil {
		return flags, false
	}

	found := false
	for _, part := range asList(parts) {
		obj, ok := part.(map[string]any)
		if !ok {
			continue
		}
		streams, ok := obj["Stream"]
		if !ok {
			streams, ok = obj["stream"]
		}
		if !ok {
			continue
		}
		found = true

		for _, s := range asList(streams) {
			if stream, ok := s.(map[string]any); ok {
				applyStream(&flags, stream)
			}
		}
	}
	return flags, found
}

func applyStream(f *codecFlags, stream map[string]any) {
	display := lowerString(stream, "displayTitle")
	title := lowerString(stream, "title")
	either := func(substr string) bool {
		return strings.Contains(display, substr) || strings.Contains(title, substr)
	}

	switch streamType(stream) {
	case streamVideo:
		for _, key := range []string{"doviprofile", "DOVIProfile", "DOVIPresent"} {
			if _, ok := stream[key]; ok {
				f.dolbyVision = true
			}
		}
		if either("dolby vision") || either("dovi") {
			f.dolbyVision = true
		}
		if either("hdr10+") {
			f.hdr10Plus = true
		} else if either("hdr") {
			f.hdr = true
		}

	case streamAudio:
		if either("atmos") {
			f.atmos = true
		}
		applyAudioCodec(f, lowerString(stream, "codec"), lowerString(stream, "audioProfile"))
	}
}

func applyAudioCodec(f *codecFlags, codec, profile string) {
	switch codec {
	case "truehd":
		f.trueHD = true
	case "dca", "dts":
		f.dtsHD = true
		if profile == "dts:x" {
			f.dtsX = true
		}
	case "eac3", "ac3":
		f.ddPlus = true
	}
}

func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	if v == nil {
		return nil
	}
	return []any{v}
}

func lowerString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.ToLower(s)
}

// streamType reads streamType as a JSON number, tolerating strings.
func streamType(m map[string]any) int {
	switch v := m["streamType"].(type) {
	case float64:
		return int(v)
	case string:
		switch v {
		case "1":
			return streamVideo
		case "2":
			return streamAudio
		}
	}
	return 0
}
