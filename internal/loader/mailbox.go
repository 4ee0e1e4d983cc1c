// Package loader feeds mailbox files into the indexing engine. The format
// is line-oriented, four semicolon-separated fields per line:
//
//	sender;subject;body;date
//
// The engine never sees this format; parsing and line skipping happen here.
package loader

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/mbastida/mailfind/internal/errors"
	"github.com/mbastida/mailfind/internal/search"
)

// Line is one parsed mailbox line.
type Line struct {
	Sender  string
	Subject string
	Body    string
	DateKey string
}

// ParseLine splits a mailbox line into its four fields. Missing trailing
// fields are empty; anything after the fourth semicolon is dropped, like
// the per-field reads the format comes from.
func ParseLine(line string) Line {
	fields := strings.Split(line, ";")
	get := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}
	return Line{
		Sender:  get(0),
		Subject: get(1),
		Body:    get(2),
		DateKey: get(3),
	}
}

// Result summarizes one load pass.
type Result struct {
	// Loaded is the number of messages ingested.
	Loaded int
	// Skipped is the number of lines dropped for an empty sender field.
	Skipped int
}

// Load reads the mailbox file at path and ingests every well-formed line.
// Lines with an empty sender are skipped before the engine is called.
// The context is checked between lines so large files stay cancellable.
func Load(ctx context.Context, path string, engine *search.Engine) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{}, errors.New(errors.ErrCodeMailboxNotFound, "mailbox file not found", err).
				WithDetail("path", path)
		}
		return Result{}, errors.New(errors.ErrCodeMailboxRead, "cannot open mailbox file", err).
			WithDetail("path", path)
	}
	defer f.Close()

	res, err := ingestLines(ctx, f, engine)
	if err != nil {
		return res, err
	}

	slog.Info("mailbox loaded",
		slog.String("path", path),
		slog.Int("loaded", res.Loaded),
		slog.Int("skipped", res.Skipped))
	return res, nil
}

// ingestLines scans reader line by line and feeds the engine.
func ingestLines(ctx context.Context, f *os.File, engine *search.Engine) (Result, error) {
	var res Result

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		line := ParseLine(scanner.Text())
		if line.Sender == "" {
			res.Skipped++
			slog.Debug("skipping mailbox line with empty sender")
			continue
		}

		if _, err := engine.Ingest(line.Sender, line.Subject, line.Body, line.DateKey); err != nil {
			if errors.IsFatal(err) {
				return res, err
			}
			// Malformed lines are the file's problem, not the engine's.
			res.Skipped++
			slog.Warn("line rejected by engine", slog.String("error", err.Error()))
			continue
		}
		res.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return res, errors.New(errors.ErrCodeMailboxRead, "error reading mailbox file", err)
	}

	return res, nil
}

// SeedMessages ingests the built-in demo messages. Used when no mailbox
// file is available so the TUI has something to show.
func SeedMessages(engine *search.Engine) error {
	seeds := []Line{
		{Sender: "juan@mail.com", Subject: "Team meeting", Body: "Urgent meeting tomorrow", DateKey: "2025-11-10"},
		{Sender: "ana@mail.com", Subject: "Homework delivery", Body: "The homework is ready", DateKey: "2025-11-11"},
		{Sender: "luis@mail.com", Subject: "New project", Body: "We must deliver the report", DateKey: "2025-11-09"},
	}
	for _, s := range seeds {
		if _, err := engine.Ingest(s.Sender, s.Subject, s.Body, s.DateKey); err != nil {
			return err
		}
	}
	return nil
}
