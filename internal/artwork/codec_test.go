package artwork

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/rustizarr/internal/plex"
)

func media(audioCodec, parts string) *plex.Media {
	m := &plex.Media{AudioCodec: audioCodec}
	if parts != "" {
		m.Part = json.RawMessage(parts)
	}
	return m
}

func TestCodecBadge(t *testing.T) {
	tests := []struct {
		name  string
		media *plex.Media
		want  string
	}{
		{
			name: "dolby vision hdr truehd atmos",
			media: media("truehd", `[{"Stream":[
				{"streamType":2,"codec":"truehd","title":"Atmos 7.1"},
				{"streamType":1,"displayTitle":"Dolby Vision · HDR10"}
			]}]`),
			want: "DV-HDR-TrueHD-Atmos.png",
		},
		{
			name:  "single part object and single stream object",
			media: media("", `{"Stream":{"streamType":1,"displayTitle":"4K HDR10+"}}`),
			want:  "Plus.png",
		},
		{
			name:  "dovi profile key",
			media: media("", `[{"Stream":[{"streamType":1,"DOVIProfile":8,"displayTitle":"4K HDR10+"}]}]`),
			want:  "DV-Plus.png",
		},
		{
			name:  "dovi present only",
			media: media("", `[{"Stream":[{"streamType":1,"DOVIPresent":true}]}]`),
			want:  "DV.png",
		},
		{
			name:  "hdr with dts-x",
			media: media("", `[{"Stream":[{"streamType":1,"displayTitle":"4K HDR"},{"streamType":2,"codec":"DCA","audioProfile":"dts:x"}]}]`),
			want:  "HDR-DTS-X.png",
		},
		{
			name:  "dts hd alone",
			media: media("", `[{"Stream":[{"streamType":2,"codec":"dts","audioProfile":"ma"}]}]`),
			want:  "DTS-HD.png",
		},
		{
			name:  "atmos without truehd",
			media: media("", `[{"Stream":[{"streamType":2,"codec":"eac3","displayTitle":"Dolby Digital+ Atmos"}]}]`),
			want:  "Atmos.png",
		},
		{
			name:  "digital plus",
			media: media("", `[{"stream":[{"streamType":2,"codec":"ac3"}]}]`),
			want:  "DigitalPlus.png",
		},
		{
			name:  "truehd without atmos",
			media: media("", `[{"Stream":[{"streamType":2,"codec":"truehd"}]}]`),
			want:  "TrueHD.png",
		},
		{
			name:  "no payload falls back to media audio codec",
			media: media("eac3", ""),
			want:  "DigitalPlus.png",
		},
		{
			name:  "no stream key falls back to media audio codec",
			media: media("dca", `[{"file":"/movies/a.mkv"}]`),
			want:  "DTS-HD.png",
		},
		{
			name:  "fallback truehd",
			media: media("TrueHD", ""),
			want:  "TrueHD.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CodecBadge(tt.media)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodecBadge_None(t *testing.T) {
	tests := []struct {
		name  string
		media *plex.Media
	}{
		{"nil media", nil},
		{"aac fallback", media("aac", "")},
		{"streams present but nothing notable", media("eac3", `[{"Stream":[{"streamType":2,"codec":"aac"},{"streamType":1,"displayTitle":"1080p"}]}]`)},
		{"garbage payload, unknown codec", media("opus", `"oops"`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := CodecBadge(tt.media)
			assert.False(t, ok)
		})
	}
}
