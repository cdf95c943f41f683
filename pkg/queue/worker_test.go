package queue

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esyang202423/tripboard/pkg/config"
	"github.com/esyang202423/tripboard/pkg/log"
	"github.com/esyang202423/tripboard/pkg/models"
	"github.com/esyang202423/tripboard/pkg/store"
)

func testManager(t *testing.T, maxWidth int) (*Manager, *store.Store) {
	t.Helper()

	cfg := &config.Config{
		Ingest: config.IngestConfig{
			WorkerCount:   1,
			QueueSize:     4,
			MaxImageWidth: maxWidth,
		},
	}
	logger, err := log.New(&config.LoggingConfig{Level: "error", Format: "text", Output: "stdout"})
	require.NoError(t, err)

	st := store.NewWithDays([]models.TripDay{
		{
			ID:    "day1",
			Date:  "02/12",
			Title: "抵達宿霧",
			Activities: []models.Activity{
				{ID: "a1", Time: "10:00", Description: "抵達機場"},
			},
		},
	})

	return NewManager(cfg, st, logger), st
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func waitForImage(t *testing.T, st *store.Store) string {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		act, ok := st.Activity("day1", "a1")
		require.True(t, ok)
		if act.ImageURL != "" {
			return act.ImageURL
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("photo was never applied")
	return ""
}

func TestIngestAppliesDataURI(t *testing.T) {
	m, st := testManager(t, 0)
	require.NoError(t, m.Start(context.Background()))

	ok := m.Enqueue(Job{DayID: "day1", ActivityID: "a1", Filename: "beach.png", Data: pngBytes(t, 4, 4)})
	require.True(t, ok)

	uri := waitForImage(t, st)
	m.Stop()

	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(decoded))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestIngestDownscalesOversizedPhotos(t *testing.T) {
	m, st := testManager(t, 8)
	require.NoError(t, m.Start(context.Background()))

	require.True(t, m.Enqueue(Job{DayID: "day1", ActivityID: "a1", Filename: "wide.png", Data: pngBytes(t, 64, 16)}))

	uri := waitForImage(t, st)
	m.Stop()

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(decoded))
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestIngestEmptyPayloadIsSkipped(t *testing.T) {
	m, st := testManager(t, 0)
	require.NoError(t, m.Start(context.Background()))

	require.True(t, m.Enqueue(Job{DayID: "day1", ActivityID: "a1", Filename: "empty.png"}))
	m.Stop()

	act, _ := st.Activity("day1", "a1")
	assert.Empty(t, act.ImageURL)
}

func TestIngestUnknownActivityIsTolerated(t *testing.T) {
	m, st := testManager(t, 0)
	require.NoError(t, m.Start(context.Background()))

	require.True(t, m.Enqueue(Job{DayID: "day1", ActivityID: "gone", Filename: "x.png", Data: pngBytes(t, 2, 2)}))
	m.Stop()

	act, _ := st.Activity("day1", "a1")
	assert.Empty(t, act.ImageURL)
}

func TestIngestNonImagePayloadPassesThrough(t *testing.T) {
	m, st := testManager(t, 0)
	require.NoError(t, m.Start(context.Background()))

	raw := []byte("not really a picture")
	require.True(t, m.Enqueue(Job{DayID: "day1", ActivityID: "a1", Filename: "notes.txt", Data: raw}))

	uri := waitForImage(t, st)
	m.Stop()

	require.True(t, strings.HasPrefix(uri, "data:"))
	parts := strings.SplitN(uri, ";base64,", 2)
	require.Len(t, parts, 2)
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestEnqueueNeverBlocks(t *testing.T) {
	// manager never started, so nothing drains the queue
	m, _ := testManager(t, 0)

	data := pngBytes(t, 2, 2)
	for i := 0; i < 4; i++ {
		assert.True(t, m.Enqueue(Job{DayID: "day1", ActivityID: "a1", Data: data}))
	}
	assert.False(t, m.Enqueue(Job{DayID: "day1", ActivityID: "a1", Data: data}))
}
