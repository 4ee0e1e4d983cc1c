package loader

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mbastida/mailfind/internal/errors"
	"github.com/mbastida/mailfind/internal/search"
)

// DefaultDebounce is the quiet window before appended lines are ingested.
const DefaultDebounce = 200 * time.Millisecond

// Watcher tails a mailbox file and ingests lines appended after the
// initial load. Messages are append-only, so the watcher only ever moves
// forward through the file: a truncated or rewritten file is logged and
// ignored until it grows past the last ingested offset again.
type Watcher struct {
	path     string
	engine   *search.Engine
	debounce time.Duration

	// offset is the byte position after the last fully ingested line.
	offset int64
	// partial buffers an unterminated trailing line between events.
	partial strings.Builder
}

// NewWatcher creates a watcher for the given mailbox file.
// A zero debounce uses DefaultDebounce.
func NewWatcher(path string, engine *search.Engine, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     path,
		engine:   engine,
		debounce: debounce,
	}
}

// Run ingests the current file content, then blocks tailing the file until
// the context is cancelled. The initial pass makes Run self-contained, so
// watch mode does not need a separate Load call.
func (w *Watcher) Run(ctx context.Context) error {
	if _, err := w.catchUp(ctx); err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.New(errors.ErrCodeMailboxRead, "cannot create file watcher", err)
	}
	defer fw.Close()

	// Watch the directory, not the file: editors replace files and the
	// watch would die with the old inode.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return errors.New(errors.ErrCodeMailboxRead, "cannot watch mailbox directory", err).
			WithDetail("dir", dir)
	}

	slog.Info("watching mailbox", slog.String("path", w.path))

	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Debounce: restart the quiet window on every burst event.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher error", slog.String("error", err.Error()))

		case <-timerC:
			timer = nil
			timerC = nil
			if n, err := w.catchUp(ctx); err != nil {
				if errors.IsFatal(err) || ctx.Err() != nil {
					return err
				}
				slog.Warn("mailbox catch-up failed", slog.String("error", err.Error()))
			} else if n > 0 {
				slog.Info("ingested appended messages", slog.Int("count", n))
			}
		}
	}
}

// catchUp ingests complete lines appended since the last offset.
// Returns the number of messages ingested.
func (w *Watcher) catchUp(ctx context.Context) (int, error) {
	f, err := os.Open(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			// The file may be mid-replace; the next event retries.
			return 0, nil
		}
		return 0, errors.New(errors.ErrCodeMailboxRead, "cannot open mailbox file", err).
			WithDetail("path", w.path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, errors.New(errors.ErrCodeMailboxRead, "cannot stat mailbox file", err)
	}
	if info.Size() < w.offset {
		slog.Warn("mailbox file shrank; ignoring rewrite, messages are append-only",
			slog.Int64("size", info.Size()),
			slog.Int64("offset", w.offset))
		w.offset = info.Size()
		w.partial.Reset()
		return 0, nil
	}

	if _, err := f.Seek(w.offset, io.SeekStart); err != nil {
		return 0, errors.New(errors.ErrCodeMailboxRead, "cannot seek mailbox file", err)
	}

	ingested := 0
	reader := bufio.NewReader(f)
	for {
		if err := ctx.Err(); err != nil {
			return ingested, err
		}

		chunk, err := reader.ReadString('\n')
		if err == io.EOF {
			// Keep the unterminated tail for the next event.
			w.partial.WriteString(chunk)
			w.offset += int64(len(chunk))
			return ingested, nil
		}
		if err != nil {
			return ingested, errors.New(errors.ErrCodeMailboxRead, "error reading mailbox file", err)
		}

		w.partial.WriteString(strings.TrimRight(chunk, "\r\n"))
		w.offset += int64(len(chunk))

		line := ParseLine(w.partial.String())
		w.partial.Reset()
		if line.Sender == "" {
			continue
		}

		if _, err := w.engine.Ingest(line.Sender, line.Subject, line.Body, line.DateKey); err != nil {
			if errors.IsFatal(err) {
				return ingested, err
			}
			slog.Warn("appended line rejected by engine", slog.String("error", err.Error()))
			continue
		}
		ingested++
	}
}
