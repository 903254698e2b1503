package log

// EventType enumerates all observable parse events.
type EventType int

const (
	EventParsed   EventType = iota
	EventFailed             // the card could not be parsed
	EventSentinel           // a header field fell back to its unknown value
	EventSkipped            // a cached file that is not a card fragment
	EventBatchStart
	EventBatchDone
)

func (e EventType) String() string {
	switch e {
	case EventParsed:
		return "Parsed"
	case EventFailed:
		return "Failed"
	case EventSentinel:
		return "Sentinel"
	case EventSkipped:
		return "Skipped"
	case EventBatchStart:
		return "BatchStart"
	case EventBatchDone:
		return "BatchDone"
	default:
		return "Unknown"
	}
}

// ParseEvent represents a single observable event while reading cards.
type ParseEvent struct {
	Seq     int       // monotonic sequence number
	CardNo  string    // card number (if known)
	Kind    string    // card kind slug (if known)
	Type    EventType // event type
	Details string    // human-readable detail string
}
