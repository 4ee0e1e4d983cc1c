// Package search provides the indexing engine: the composition root that
// owns the message store and the three index structures and exposes the
// ingest and query operations the CLI and TUI consume.
package search

import (
	"iter"
	"log/slog"
	"strconv"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mbastida/mailfind/internal/errors"
	"github.com/mbastida/mailfind/internal/store"
)

// DefaultKeywordCacheSize is the default number of keyword lookups to
// keep in the result cache.
const DefaultKeywordCacheSize = 256

// Engine indexes messages and answers the three query patterns:
// chronological enumeration, sender lookup, and keyword lookup.
//
// Ingest takes the write lock; queries take the read lock and may run
// concurrently with each other, but never with an in-flight Ingest. None
// of the underlying structures is designed for concurrent mutation.
type Engine struct {
	mu      sync.RWMutex
	store   *store.MessageStore
	dates   *store.DateTree
	senders *store.SenderIndex
	terms   *store.TermIndex

	// cache holds keyword results keyed by generation+token. Ingest bumps
	// the generation, so entries from before a mutation are never served
	// and age out through LRU eviction.
	cache *lru.Cache[string, []*store.Message]
	gen   uint64

	logger *slog.Logger

	// onIngest, when set, observes every successfully ingested message.
	// Called after the write lock is released, so the hook may query the
	// engine.
	onIngest func(*store.Message)
}

// Option configures the engine.
type Option func(*Engine)

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithKeywordCacheSize sets the keyword result cache capacity.
func WithKeywordCacheSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.cache, _ = lru.New[string, []*store.Message](size)
		}
	}
}

// WithIngestHook registers an observer for successfully ingested messages.
// Watch mode uses it to print messages as they arrive.
func WithIngestHook(hook func(*store.Message)) Option {
	return func(e *Engine) {
		e.onIngest = hook
	}
}

// NewEngine creates an empty engine.
func NewEngine(opts ...Option) *Engine {
	cache, _ := lru.New[string, []*store.Message](DefaultKeywordCacheSize)
	e := &Engine{
		store:   store.NewMessageStore(),
		dates:   store.NewDateTree(),
		senders: store.NewSenderIndex(),
		terms:   store.NewTermIndex(),
		cache:   cache,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Ingest stores a new message and updates the date tree, the sender index,
// and the term index. Validation fails before any structure is touched and
// consumes no ID. An index update that leaves the structures disagreeing
// with the store is surfaced as a fatal ERR_502 rather than swallowed.
func (e *Engine) Ingest(sender, subject, body, dateKey string) (*store.Message, error) {
	msg, err := e.ingest(sender, subject, body, dateKey)
	if err == nil && e.onIngest != nil {
		e.onIngest(msg)
	}
	return msg, err
}

// ingest does the work of Ingest under the write lock.
func (e *Engine) ingest(sender, subject, body, dateKey string) (*store.Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	msg, err := e.store.Create(sender, subject, body, dateKey)
	if err != nil {
		return nil, err
	}

	tokens := store.Tokenize(msg.IndexText())

	e.dates.Insert(msg.DateKey, msg.ID)
	e.senders.Insert(msg.Sender, msg.ID)
	e.terms.Insert(msg.ID, tokens)

	if err := e.verifyIndexed(msg, tokens); err != nil {
		e.logger.Error("index update left stores inconsistent",
			slog.Uint64("id", uint64(msg.ID)),
			slog.String("error", err.Error()))
		return nil, err
	}

	e.gen++
	e.logger.Debug("message ingested",
		slog.Uint64("id", uint64(msg.ID)),
		slog.String("sender", msg.Sender),
		slog.String("date", msg.DateKey),
		slog.Int("tokens", len(tokens)))
	return msg, nil
}

// verifyIndexed checks the post-ingest invariants for one message: the ID
// is stored, each index saw exactly this insertion, and every token of the
// message resolves back to it. Any violation is fatal.
func (e *Engine) verifyIndexed(msg *store.Message, tokens []string) error {
	if !e.store.Contains(msg.ID) {
		return errors.New(errors.ErrCodeIndexInconsistent, "stored message vanished from store", nil)
	}
	if e.dates.Len() != e.store.Len() {
		return errors.New(errors.ErrCodeIndexInconsistent, "date tree disagrees with store size", nil)
	}
	ids := e.senders.Lookup(msg.Sender)
	if len(ids) == 0 || ids[len(ids)-1] != msg.ID {
		return errors.New(errors.ErrCodeIndexInconsistent, "sender index missed insertion", nil)
	}
	for _, token := range tokens {
		if !e.terms.Contains(token, msg.ID) {
			return errors.New(errors.ErrCodeIndexInconsistent, "term index missed token", nil).
				WithDetail("token", token)
		}
	}
	return nil
}

// GetByID returns the message with the given ID, or ERR_301 on a miss.
func (e *Engine) GetByID(id store.MessageID) (*store.Message, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Get(id)
}

// AllOrdered returns a lazy sequence of messages in ascending date-key
// order; messages sharing a date key appear in ingestion order. Each call
// starts a fresh traversal. The read lock is held while the sequence is
// being consumed.
func (e *Engine) AllOrdered() iter.Seq[*store.Message] {
	return func(yield func(*store.Message) bool) {
		e.mu.RLock()
		defer e.mu.RUnlock()
		for id := range e.dates.InOrder() {
			msg, err := e.store.Get(id)
			if err != nil {
				// Indexed ID without a stored message: invariant broken.
				panic(errors.New(errors.ErrCodeIndexInconsistent, "date tree holds unknown ID", err))
			}
			if !yield(msg) {
				return
			}
		}
	}
}

// BySender returns the sender's messages in ingestion order, or an empty
// slice for an unknown sender. Matching is exact and case-sensitive.
func (e *Engine) BySender(sender string) []*store.Message {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ids := e.senders.Lookup(sender)
	msgs := make([]*store.Message, 0, len(ids))
	for _, id := range ids {
		msg, err := e.store.Get(id)
		if err != nil {
			panic(errors.New(errors.ErrCodeIndexInconsistent, "sender index holds unknown ID", err))
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// ByKeyword returns the set of messages whose subject or body contains the
// word, in ascending ID order. The word is normalized with the ingestion
// lowercasing rule first; matching is exact-token membership. Results are
// served from the LRU cache when the engine has not changed since they
// were computed.
func (e *Engine) ByKeyword(word string) []*store.Message {
	token := store.NormalizeToken(word)

	e.mu.RLock()
	defer e.mu.RUnlock()

	key := strconv.FormatUint(e.gen, 10) + ":" + token
	if msgs, ok := e.cache.Get(key); ok {
		return msgs
	}

	msgs := make([]*store.Message, 0)
	for id := range e.terms.Lookup(token) {
		msg, err := e.store.Get(id)
		if err != nil {
			panic(errors.New(errors.ErrCodeIndexInconsistent, "term index holds unknown ID", err))
		}
		msgs = append(msgs, msg)
	}

	e.cache.Add(key, msgs)
	return msgs
}

// Stats summarizes the engine's index state.
type Stats struct {
	Messages int
	Senders  int
	Terms    int
}

// Stats returns current index counts.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Stats{
		Messages: e.store.Len(),
		Senders:  e.senders.Senders(),
		Terms:    e.terms.Terms(),
	}
}
