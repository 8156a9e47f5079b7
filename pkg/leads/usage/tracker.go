package usage

import (
	"sync"
	"time"

	"lead-generator-be/internal/pkg/logger"
	"lead-generator-be/pkg/events"
)

// Stats is a point-in-time copy of the tracker counters.
type Stats struct {
	SessionsCreated   int
	SelectionsChanged int
	DashboardsViewed  int
	ExportsGenerated  int
	ExportedRows      int
	LastEventAt       time.Time
}

// Tracker counts dashboard activity events
type Tracker struct {
	mu     sync.Mutex
	stats  Stats
	logger logger.ILogger
}

// NewTracker creates a new usage tracker
func NewTracker(logger logger.ILogger) *Tracker {
	return &Tracker{logger: logger}
}

// Record folds one event into the counters. Unknown types are logged and ignored.
func (t *Tracker) Record(evt events.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch evt.EventType() {
	case events.TypeSessionCreated:
		t.stats.SessionsCreated++
	case events.TypeSelectionChanged:
		t.stats.SelectionsChanged++
	case events.TypeDashboardViewed:
		t.stats.DashboardsViewed++
	case events.TypeExportGenerated:
		t.stats.ExportsGenerated++
		t.stats.ExportedRows += intValue(evt.Payload()["rows"])
	default:
		t.logger.Warn("UsageTracker", "Unknown event type", map[string]interface{}{"type": evt.EventType()})
		return
	}
	if ts := evt.Timestamp(); ts.After(t.stats.LastEventAt) {
		t.stats.LastEventAt = ts
	}
}

func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// intValue accepts both native ints and JSON-decoded numbers.
func intValue(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
