package webhook

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/rustizarr/internal/plex"
	"github.com/vmunix/rustizarr/internal/processor"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func multipartRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/webhook", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestParseRequest(t *testing.T) {
	req := multipartRequest(t, map[string]string{
		"payload": `{"event":"library.new","Metadata":{"ratingKey":"99","type":"movie","title":"Dune"}}`,
	})

	p, err := ParseRequest(req)
	require.NoError(t, err)

	assert.Equal(t, EventLibraryNew, p.Event)
	assert.Equal(t, "99", p.Metadata.RatingKey)
	assert.Equal(t, plex.KindMovie, p.Metadata.Type)
	assert.True(t, p.Actionable())
}

func TestParseRequest_Errors(t *testing.T) {
	t.Run("no payload field", func(t *testing.T) {
		_, err := ParseRequest(multipartRequest(t, map[string]string{"thumb": "..."}))
		assert.ErrorIs(t, err, ErrNoPayload)
	})
	t.Run("bad json", func(t *testing.T) {
		_, err := ParseRequest(multipartRequest(t, map[string]string{"payload": "{"}))
		assert.ErrorContains(t, err, "decode payload")
	})
	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		_, err := ParseRequest(req)
		assert.Error(t, err)
	})
}

func TestPayload_Actionable(t *testing.T) {
	tests := []struct {
		name string
		p    Payload
		want bool
	}{
		{"new movie", Payload{Event: "library.new", Metadata: Metadata{RatingKey: "1", Type: plex.KindMovie}}, true},
		{"new show", Payload{Event: "library.new", Metadata: Metadata{RatingKey: "1", Type: plex.KindShow}}, true},
		{"new episode", Payload{Event: "library.new", Metadata: Metadata{RatingKey: "1", Type: "episode"}}, false},
		{"playback", Payload{Event: "media.play", Metadata: Metadata{RatingKey: "1", Type: plex.KindMovie}}, false},
		{"no key", Payload{Event: "library.new", Metadata: Metadata{Type: plex.KindMovie}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Actionable())
		})
	}
}

type fakeItems struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (f *fakeItems) Item(_ context.Context, key string) (*plex.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	if f.err != nil {
		return nil, f.err
	}
	return &plex.Item{RatingKey: key, Title: "Dune"}, nil
}

func (f *fakeItems) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.keys...)
}

type fakePipeline struct {
	outcome processor.Outcome
	items   chan *plex.Item
	block   chan struct{}
}

func (f *fakePipeline) Process(ctx context.Context, item *plex.Item, force bool) processor.Outcome {
	if f.block != nil {
		<-f.block
	}
	if f.items != nil {
		f.items <- item
	}
	return f.outcome
}

type fakeCache struct{ invalidations atomic.Int32 }

func (f *fakeCache) InvalidateAll() { f.invalidations.Add(1) }

func TestDispatcher_ProcessesAfterDelay(t *testing.T) {
	items := &fakeItems{}
	pipeline := &fakePipeline{outcome: processor.Outcome{Status: processor.StatusProcessed}, items: make(chan *plex.Item, 1)}
	cache := &fakeCache{}
	d := NewDispatcher(items, pipeline, cache, testLogger(), WithDelay(50*time.Millisecond))

	start := time.Now()
	id, ok := d.Dispatch(&Payload{Event: EventLibraryNew, Metadata: Metadata{RatingKey: "99", Type: plex.KindMovie}})
	require.True(t, ok)
	assert.NotEmpty(t, id)
	assert.Empty(t, items.calls(), "nothing is fetched before the delay")

	select {
	case item := <-pipeline.items:
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
		assert.Equal(t, "99", item.RatingKey)
		assert.Equal(t, plex.KindMovie, item.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("pipeline not run")
	}

	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, []string{"99"}, items.calls())
	assert.Equal(t, int32(1), cache.invalidations.Load())
}

func TestDispatcher_NoInvalidationWithoutPoster(t *testing.T) {
	cache := &fakeCache{}
	pipeline := &fakePipeline{outcome: processor.Outcome{Status: processor.StatusNoImage, Err: processor.ErrNoImage}}
	d := NewDispatcher(&fakeItems{}, pipeline, cache, testLogger(), WithDelay(time.Millisecond))

	_, ok := d.Dispatch(&Payload{Metadata: Metadata{RatingKey: "1", Type: plex.KindShow}})
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		return d.Close(context.Background()) == nil
	}, time.Second, 10*time.Millisecond)
	assert.Zero(t, cache.invalidations.Load())
}

func TestDispatcher_FetchFailure(t *testing.T) {
	items := &fakeItems{err: errors.New("unexpected status: 500")}
	cache := &fakeCache{}
	d := NewDispatcher(items, &fakePipeline{}, cache, testLogger(), WithDelay(time.Millisecond))

	_, _ = d.Dispatch(&Payload{Metadata: Metadata{RatingKey: "1", Type: plex.KindMovie}})
	require.Eventually(t, func() bool { return len(items.calls()) == 1 }, time.Second, time.Millisecond)

	require.NoError(t, d.Close(context.Background()))
	assert.Zero(t, cache.invalidations.Load())
}

func TestDispatcher_CloseAbandonsDelayedTasks(t *testing.T) {
	items := &fakeItems{}
	d := NewDispatcher(items, &fakePipeline{}, nil, testLogger(), WithDelay(time.Hour))

	_, ok := d.Dispatch(&Payload{Metadata: Metadata{RatingKey: "1", Type: plex.KindMovie}})
	require.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
	assert.Empty(t, items.calls())

	_, ok = d.Dispatch(&Payload{Metadata: Metadata{RatingKey: "2", Type: plex.KindMovie}})
	assert.False(t, ok, "closed dispatcher rejects tasks")
}

func TestDispatcher_CloseWaitsForRunningTasks(t *testing.T) {
	block := make(chan struct{})
	pipeline := &fakePipeline{outcome: processor.Outcome{Status: processor.StatusProcessed}, block: block}
	items := &fakeItems{}
	d := NewDispatcher(items, pipeline, nil, testLogger(), WithDelay(time.Millisecond))

	_, _ = d.Dispatch(&Payload{Metadata: Metadata{RatingKey: "1", Type: plex.KindMovie}})
	require.Eventually(t, func() bool { return len(items.calls()) == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded, "running upload is not cut short")

	close(block)
	require.NoError(t, d.Close(context.Background()))
}
