package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/rustizarr/internal/api"
	"github.com/vmunix/rustizarr/internal/api/mocks"
	"github.com/vmunix/rustizarr/internal/catalog"
	"github.com/vmunix/rustizarr/internal/plex"
	"github.com/vmunix/rustizarr/internal/processor"
	"github.com/vmunix/rustizarr/internal/webhook"
)

type itemSource struct{}

func (itemSource) Item(_ context.Context, key string) (*plex.Item, error) {
	return &plex.Item{RatingKey: key, Type: plex.KindMovie, Title: "Dune"}, nil
}

type recordingPipeline struct {
	keys chan string
}

func (p *recordingPipeline) Process(_ context.Context, item *plex.Item, _ bool) processor.Outcome {
	p.keys <- item.RatingKey
	return processor.Outcome{Status: processor.StatusProcessed}
}

func TestWebhookInvalidatesCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)

	var loads atomic.Int32
	cache := catalog.New(func(context.Context, string) ([]plex.Item, error) {
		loads.Add(1)
		return []plex.Item{{RatingKey: "99", Title: "Dune"}}, nil
	}, testLogger())

	pipeline := &recordingPipeline{keys: make(chan string, 1)}
	dispatcher := webhook.NewDispatcher(itemSource{}, pipeline, cache, testLogger(), webhook.WithDelay(30*time.Millisecond))

	srv, err := api.New(api.Config{LibraryID: "1", ShowsLibraryID: "2", Parallel: 1}, api.ServerDeps{
		Scanner:  mocks.NewMockScanner(ctrl),
		Catalog:  cache,
		Thumbs:   mocks.NewMockThumbSource(ctrl),
		Webhooks: dispatcher,
		Log:      testLogger(),
	})
	require.NoError(t, err)
	handler := srv.Handler()

	get := func() {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/library", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	get()
	get()
	require.Equal(t, int32(1), loads.Load(), "second listing is served from cache")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, webhookRequest(t, `{"event":"library.new","Metadata":{"ratingKey":"99","type":"movie"}}`))
	require.Equal(t, http.StatusAccepted, w.Code)

	select {
	case key := <-pipeline.keys:
		assert.Equal(t, "99", key)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook task did not run")
	}
	require.NoError(t, dispatcher.Close(context.Background()))

	get()
	assert.Equal(t, int32(2), loads.Load(), "listing is fetched again after a successful webhook")
}
