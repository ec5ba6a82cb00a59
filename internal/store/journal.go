package store

import (
	"sync"
	"time"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/models"
)

// DefaultCapacity is how many query records the journal retains.
const DefaultCapacity = 50

// QueryJournal is an append-only, process-local record of analysis queries.
// When the journal is full the oldest record is evicted first. Handlers run
// concurrently under gin, so appends and reads are mutex-guarded.
type QueryJournal struct {
	mu       sync.Mutex
	capacity int
	records  []models.QueryRecord
}

// NewQueryJournal creates a journal bounded to capacity records. A
// non-positive capacity falls back to DefaultCapacity.
func NewQueryJournal(capacity int) *QueryJournal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &QueryJournal{capacity: capacity}
}

// Append records a query and returns the post-insert length, which doubles
// as the synthetic query id reported to clients.
func (j *QueryJournal) Append(rec models.QueryRecord) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.records = append(j.records, rec)
	if len(j.records) > j.capacity {
		j.records = j.records[1:]
	}
	return len(j.records)
}

// Tail returns the most recent n records in insertion order. It copies the
// slice so callers never alias the journal's backing array.
func (j *QueryJournal) Tail(n int) []models.QueryRecord {
	j.mu.Lock()
	defer j.mu.Unlock()

	start := len(j.records) - n
	if start < 0 {
		start = 0
	}
	out := make([]models.QueryRecord, len(j.records)-start)
	copy(out, j.records[start:])
	return out
}

// Len reports the number of retained records.
func (j *QueryJournal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.records)
}

// AlertBook is the append-only list of market alerts. It is unbounded and
// alerts are never evaluated or deactivated; both behaviors are inherited
// from the dashboard contract rather than chosen here.
type AlertBook struct {
	mu     sync.Mutex
	alerts []models.Alert
}

// NewAlertBook creates an empty alert book.
func NewAlertBook() *AlertBook {
	return &AlertBook{}
}

// Add records an alert with a server-assigned creation timestamp. It never
// rejects input: missing fields arrive zero-valued and are stored as such.
func (b *AlertBook) Add(symbol, condition string, threshold float64) models.Alert {
	alert := models.Alert{
		Symbol:    symbol,
		Condition: condition,
		Threshold: threshold,
		Created:   time.Now().Format(time.RFC3339),
		Active:    true,
	}

	b.mu.Lock()
	b.alerts = append(b.alerts, alert)
	b.mu.Unlock()

	return alert
}

// All returns a copy of every recorded alert.
func (b *AlertBook) All() []models.Alert {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Alert, len(b.alerts))
	copy(out, b.alerts)
	return out
}
