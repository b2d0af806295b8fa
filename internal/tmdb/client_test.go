package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lang(s string) *string { return &s }

func TestClient_TextlessPoster(t *testing.T) {
	// Mock TMDB API
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/438631/images", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		resp := imagesResponse{Posters: []Image{
			{FilePath: "/en.jpg", Language: lang("en"), Width: 4000, Height: 6000},
			{FilePath: "/small.jpg", Language: lang("xx"), Width: 1000, Height: 1500, VoteAverage: 9},
			{FilePath: "/big.jpg", Width: 2000, Height: 3000, VoteAverage: 5},
		}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	poster, err := client.TextlessPoster(context.Background(), MediaMovie, "438631")
	require.NoError(t, err)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/big.jpg", poster)
}

func TestClient_TextlessPoster_SoftMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	poster, err := client.TextlessPoster(context.Background(), MediaTV, "1")
	require.NoError(t, err)
	assert.Empty(t, poster)
}

func TestClient_TextlessPoster_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.TextlessPoster(context.Background(), MediaMovie, "1")
	assert.Error(t, err)
}

func TestClient_StandardPoster(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/tv/1399", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":1399,"name":"Game of Thrones","poster_path":"/got.jpg","status":"Ended"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithImageBaseURL("http://img.test/t/p/"))

	poster, err := client.StandardPoster(context.Background(), MediaTV, "1399")
	require.NoError(t, err)
	assert.Equal(t, "http://img.test/t/p/original/got.jpg", poster)
}

func TestClient_StandardPoster_NoPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"poster_path":null}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	poster, err := client.StandardPoster(context.Background(), MediaMovie, "1")
	require.NoError(t, err)
	assert.Empty(t, poster)
}

func TestClient_ShowStatus_Cached(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/3/tv/66732", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":66732,"name":"Stranger Things","status":"Returning Series"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	for range 3 {
		status, err := client.ShowStatus(context.Background(), "66732")
		require.NoError(t, err)
		assert.Equal(t, "Returning Series", status)
	}
	assert.Equal(t, int32(1), calls.Load(), "details should be fetched once")
}

func TestClient_ShowStatus_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithCacheTTL(time.Minute))

	status, err := client.ShowStatus(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, status)
}

func TestClient_SeasonPoster(t *testing.T) {
	tests := []struct {
		name   string
		images string
		want   string
	}{
		{
			name:   "textless season image",
			images: `{"posters":[{"file_path":"/s2-xx.jpg","iso_639_1":null,"width":1000,"height":1500}]}`,
			want:   "https://image.tmdb.org/t/p/original/s2-xx.jpg",
		},
		{
			name:   "falls back to season details",
			images: `{"posters":[{"file_path":"/s2-en.jpg","iso_639_1":"en","width":1000,"height":1500}]}`,
			want:   "https://image.tmdb.org/t/p/original/s2.jpg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/3/tv/66732/season/2/images":
					_, _ = w.Write([]byte(tt.images))
				case "/3/tv/66732/season/2":
					_, _ = w.Write([]byte(`{"id":7,"name":"Saison 2","poster_path":"/s2.jpg"}`))
				default:
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
			}))
			defer server.Close()

			client := NewClient("test-key", WithBaseURL(server.URL))
			poster, err := client.SeasonPoster(context.Background(), "66732", 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, poster)
		})
	}
}

func TestSelectPoster(t *testing.T) {
	tests := []struct {
		name    string
		posters []Image
		want    string
		found   bool
	}{
		{
			name: "vote breaks resolution tie",
			posters: []Image{
				{FilePath: "/a", Language: lang("xx"), Width: 2000, Height: 3000, VoteAverage: 5.1},
				{FilePath: "/b", Language: lang("null"), Width: 2000, Height: 3000, VoteAverage: 5.5},
			},
			want:  "/b",
			found: true,
		},
		{
			name: "french fallback by resolution",
			posters: []Image{
				{FilePath: "/en", Language: lang("en"), Width: 4000, Height: 6000},
				{FilePath: "/fr-small", Language: lang("fr"), Width: 500, Height: 750, VoteAverage: 10},
				{FilePath: "/fr-big", Language: lang("fr"), Width: 1000, Height: 1500},
			},
			want:  "/fr-big",
			found: true,
		},
		{
			name:    "none",
			posters: []Image{{FilePath: "/de", Language: lang("de"), Width: 1, Height: 1}},
			found:   false,
		},
		{
			name:  "empty",
			found: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectPoster(tt.posters)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got.FilePath)
		})
	}
}
