package youtube

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := NewHistory(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestHistorySaveOverwrites(t *testing.T) {
	h := newTestHistory(t)

	require.NoError(t, h.Save(&HistoryEntry{VideoID: "video", URL: "https://a.example", FileName: "public/video.mp4"}))
	require.NoError(t, h.Save(&HistoryEntry{VideoID: "video", URL: "https://b.example", FileName: "public/video.mp4"}))

	entries, err := h.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://b.example", entries[0].URL)
}

func TestHistoryGet(t *testing.T) {
	h := newTestHistory(t)

	entry, err := h.Get("dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Nil(t, entry)

	require.NoError(t, h.Save(&HistoryEntry{VideoID: "dQw4w9WgXcQ", URL: "https://youtu.be/dQw4w9WgXcQ"}))
	entry, err = h.Get("dQw4w9WgXcQ")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", entry.URL)
	assert.False(t, entry.DownloadedAt.IsZero())
}

func TestHistoryListNewestFirst(t *testing.T) {
	h := newTestHistory(t)
	now := time.Now()

	require.NoError(t, h.Save(&HistoryEntry{VideoID: "old00000000", DownloadedAt: now.Add(-time.Hour)}))
	require.NoError(t, h.Save(&HistoryEntry{VideoID: "new00000000", DownloadedAt: now}))

	entries, err := h.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "new00000000", entries[0].VideoID)
	assert.Equal(t, "old00000000", entries[1].VideoID)
}
