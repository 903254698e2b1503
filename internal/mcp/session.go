package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/peterkuimelis/wixoss/internal/cache"
	"github.com/peterkuimelis/wixoss/internal/card"
	"github.com/peterkuimelis/wixoss/internal/log"
)

// Session holds what the tools share for the life of one stdio process:
// the cache directory, the event log and the cards parsed so far.
type Session struct {
	dir    *cache.Dir
	logger log.EventLogger

	mu     sync.Mutex
	parsed map[string]card.Card
}

// NewSession returns a session reading cards from dir. A nil logger
// discards events.
func NewSession(dir *cache.Dir, logger log.EventLogger) *Session {
	if logger == nil {
		logger = log.Discard{}
	}
	return &Session{dir: dir, logger: logger, parsed: make(map[string]card.Card)}
}

// Lookup returns the card from the cache, parsing it on first use.
func (s *Session) Lookup(no string) (card.Card, error) {
	s.mu.Lock()
	c, ok := s.parsed[no]
	s.mu.Unlock()
	if ok {
		return c, nil
	}

	if s.dir == nil {
		return card.Card{}, fmt.Errorf("no cache directory configured")
	}
	body, err := s.dir.Get(no)
	if err != nil {
		s.logger.Log(log.NewFailedEvent(no, "cache", err))
		return card.Card{}, err
	}
	c, err = s.parse(card.KindUnknown, body)
	if err != nil {
		return card.Card{}, err
	}

	s.mu.Lock()
	s.parsed[no] = c
	s.mu.Unlock()
	return c, nil
}

// parse reads one fragment; KindUnknown detects the kind.
func (s *Session) parse(kind card.Kind, body string) (card.Card, error) {
	rec, err := card.ParseAs(kind, body)
	if err != nil {
		s.logger.Log(log.NewFailedEvent("", "mcp", err))
		return card.Card{}, err
	}
	s.logger.Log(log.NewParsedEvent(rec.No, rec.Kind().Slug(), rec.Features.Len()))
	return card.Project(rec), nil
}

// Events returns the session log.
func (s *Session) Events() []log.ParseEvent {
	return s.logger.Events()
}

func respondJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
