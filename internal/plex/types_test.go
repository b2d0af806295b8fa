package plex

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_TMDBID(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"guid list", Item{Type: KindMovie, GUIDs: []GUID{{ID: "imdb://tt1"}, {ID: "tmdb://603"}}}, "603"},
		{"legacy guid", Item{Type: KindMovie, GUID: "com.plexapp.agents.themoviedb://438631?lang=fr"}, "438631"},
		{"legacy guid without query", Item{Type: KindMovie, GUID: "com.plexapp.agents.themoviedb://11"}, "11"},
		{"list wins over legacy", Item{Type: KindMovie, GUIDs: []GUID{{ID: "tmdb://1"}}, GUID: "x.themoviedb://2?"}, "1"},
		{"show ignores legacy", Item{Type: KindShow, GUID: "x.themoviedb://2?"}, ""},
		{"show guid list", Item{Type: KindShow, GUIDs: []GUID{{ID: "tmdb://1399"}}}, "1399"},
		{"nothing", Item{Type: KindMovie, GUID: "plex://movie/5d776"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.TMDBID())
		})
	}
}

func TestItem_Labels(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  []string
	}{
		{"array", `[{"tag":"Rustizarr"},{"tag":"4K"}]`, []string{"Rustizarr", "4K"}},
		{"single object", `{"tag":"Rustizarr"}`, []string{"Rustizarr"}},
		{"null", `null`, nil},
		{"garbage", `"text"`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Item{Label: json.RawMessage(tt.label)}
			if tt.want == nil {
				assert.Empty(t, it.Labels())
				return
			}
			assert.Equal(t, tt.want, it.Labels())
		})
	}
}

func TestItem_HasLabel(t *testing.T) {
	it := Item{Label: json.RawMessage(`[{"tag":"rustizarr"}]`)}
	assert.True(t, it.HasLabel("Rustizarr"))
	assert.False(t, it.HasLabel("Kometa"))

	var none Item
	assert.False(t, none.HasLabel("Rustizarr"))
}

func TestItem_AddedTime(t *testing.T) {
	_, ok := (&Item{}).AddedTime()
	assert.False(t, ok)

	at, ok := (&Item{AddedAt: 1700000000}).AddedTime()
	assert.True(t, ok)
	assert.Equal(t, int64(1700000000), at.Unix())
}
