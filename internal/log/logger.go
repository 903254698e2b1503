package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// EventLogger is the interface for logging parse events. Implementations
// must be safe for concurrent use.
type EventLogger interface {
	Log(event ParseEvent)
	Events() []ParseEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	mu     sync.Mutex
	events []ParseEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event ParseEvent) {
	l.record(event)
}

func (l *MemoryLogger) record(event ParseEvent) ParseEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
	return event
}

// Events returns a copy of every event logged so far.
func (l *MemoryLogger) Events() []ParseEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]ParseEvent, len(l.events))
	copy(out, l.events)
	return out
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []ParseEvent {
	var result []ParseEvent
	for _, e := range l.Events() {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() ParseEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.events) == 0 {
		return ParseEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	wmu sync.Mutex
	w   io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event ParseEvent) {
	event = l.record(event)
	l.wmu.Lock()
	defer l.wmu.Unlock()
	fmt.Fprintln(l.w, FormatEvent(event))
}

// Discard logs nothing.
type Discard struct{}

func (Discard) Log(ParseEvent)       {}
func (Discard) Events() []ParseEvent { return nil }

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e ParseEvent) string {
	no := e.CardNo
	if no == "" {
		no = "-"
	}
	return fmt.Sprintf("#%-4d %-10s %-16s| %s", e.Seq, e.Type, no, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []ParseEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewParsedEvent(cardNo, kind string, features int) ParseEvent {
	return ParseEvent{
		CardNo:  cardNo,
		Kind:    kind,
		Type:    EventParsed,
		Details: fmt.Sprintf("parsed %s with %d features", kind, features),
	}
}

func NewFailedEvent(cardNo, source string, err error) ParseEvent {
	return ParseEvent{
		CardNo:  cardNo,
		Type:    EventFailed,
		Details: fmt.Sprintf("%s: %v", source, err),
	}
}

func NewSentinelEvent(cardNo, field, value string) ParseEvent {
	return ParseEvent{
		CardNo:  cardNo,
		Type:    EventSentinel,
		Details: fmt.Sprintf("%s missing, using %q", field, value),
	}
}

func NewSkippedEvent(source, reason string) ParseEvent {
	return ParseEvent{
		Type:    EventSkipped,
		Details: fmt.Sprintf("skip %s: %s", source, reason),
	}
}

func NewBatchStartEvent(cards, workers int) ParseEvent {
	return ParseEvent{
		Type:    EventBatchStart,
		Details: fmt.Sprintf("=== %d cards, %d workers ===", cards, workers),
	}
}

func NewBatchDoneEvent(parsed, failed int) ParseEvent {
	return ParseEvent{
		Type:    EventBatchDone,
		Details: fmt.Sprintf("=== %d parsed, %d failed ===", parsed, failed),
	}
}
