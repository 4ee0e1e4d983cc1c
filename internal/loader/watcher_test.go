package loader

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbastida/mailfind/internal/search"
)

func appendToFile(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestWatcher_CatchUpIngestsInitialContent(t *testing.T) {
	path := writeMailbox(t, "a@x.com;one;;2025-01-01\nb@x.com;two;;2025-01-02\n")
	engine := search.NewEngine()
	w := NewWatcher(path, engine, 0)

	n, err := w.catchUp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, engine.Stats().Messages)
}

func TestWatcher_CatchUpOnlyReadsAppendedLines(t *testing.T) {
	path := writeMailbox(t, "a@x.com;one;;2025-01-01\n")
	engine := search.NewEngine()
	w := NewWatcher(path, engine, 0)

	_, err := w.catchUp(context.Background())
	require.NoError(t, err)

	appendToFile(t, path, "b@x.com;two;;2025-01-02\n")

	n, err := w.catchUp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, engine.Stats().Messages)
}

func TestWatcher_PartialLineWaitsForTerminator(t *testing.T) {
	path := writeMailbox(t, "")
	engine := search.NewEngine()
	w := NewWatcher(path, engine, 0)

	// An unterminated line is buffered, not ingested.
	appendToFile(t, path, "a@x.com;sub")
	n, err := w.catchUp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, engine.Stats().Messages)

	// Completing the line ingests exactly one message with intact fields.
	appendToFile(t, path, "ject;body;2025-01-01\n")
	n, err = w.catchUp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	msgs := engine.BySender("a@x.com")
	require.Len(t, msgs, 1)
	assert.Equal(t, "subject", msgs[0].Subject)
}

func TestWatcher_TruncationIsIgnored(t *testing.T) {
	path := writeMailbox(t, "a@x.com;one;;2025-01-01\nb@x.com;two;;2025-01-02\n")
	engine := search.NewEngine()
	w := NewWatcher(path, engine, 0)

	_, err := w.catchUp(context.Background())
	require.NoError(t, err)

	// Rewrite the file shorter: messages are append-only, nothing is
	// re-ingested or removed.
	require.NoError(t, os.WriteFile(path, []byte("c@x.com;three;;2025-01-03\n"), 0o644))
	n, err := w.catchUp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 2, engine.Stats().Messages)

	// Growth past the remembered offset resumes ingestion.
	appendToFile(t, path, "d@x.com;four;;2025-01-04\n")
	n, err = w.catchUp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWatcher_SkipsEmptySenderAppends(t *testing.T) {
	path := writeMailbox(t, "")
	engine := search.NewEngine()
	w := NewWatcher(path, engine, 0)

	appendToFile(t, path, ";ghost;;2025-01-01\na@x.com;real;;2025-01-02\n")
	n, err := w.catchUp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWatcher_MissingFileIsNotFatal(t *testing.T) {
	engine := search.NewEngine()
	w := NewWatcher("/nonexistent/mailbox.txt", engine, 0)

	n, err := w.catchUp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
