package store

import (
	"fmt"
	"testing"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/models"
)

func TestJournalAppendReturnsPostInsertLength(t *testing.T) {
	j := NewQueryJournal(50)

	for i := 1; i <= 5; i++ {
		id := j.Append(models.QueryRecord{Question: fmt.Sprintf("q%d", i)})
		if id != i {
			t.Fatalf("append %d: expected id %d, got %d", i, i, id)
		}
	}
}

func TestJournalEvictsOldestAtCapacity(t *testing.T) {
	j := NewQueryJournal(50)

	for i := 0; i < 60; i++ {
		id := j.Append(models.QueryRecord{Question: fmt.Sprintf("q%d", i)})
		if i >= 49 && id != 50 {
			t.Fatalf("append %d: id should be pinned at capacity, got %d", i, id)
		}
	}

	if j.Len() != 50 {
		t.Fatalf("expected 50 retained records, got %d", j.Len())
	}

	all := j.Tail(50)
	if all[0].Question != "q10" {
		t.Errorf("oldest retained record should be q10, got %s", all[0].Question)
	}
	if all[len(all)-1].Question != "q59" {
		t.Errorf("newest record should be q59, got %s", all[len(all)-1].Question)
	}
}

func TestJournalTailReturnsChronologicalSlice(t *testing.T) {
	j := NewQueryJournal(50)
	for i := 0; i < 25; i++ {
		j.Append(models.QueryRecord{Question: fmt.Sprintf("q%d", i)})
	}

	tail := j.Tail(10)
	if len(tail) != 10 {
		t.Fatalf("expected 10 records, got %d", len(tail))
	}
	for i, rec := range tail {
		want := fmt.Sprintf("q%d", 15+i)
		if rec.Question != want {
			t.Errorf("tail[%d]: expected %s, got %s", i, want, rec.Question)
		}
	}
}

func TestJournalTailShorterThanRequest(t *testing.T) {
	j := NewQueryJournal(50)
	j.Append(models.QueryRecord{Question: "only"})

	tail := j.Tail(10)
	if len(tail) != 1 || tail[0].Question != "only" {
		t.Fatalf("expected single record, got %v", tail)
	}
}

func TestAlertBookDefaultsAndAppend(t *testing.T) {
	b := NewAlertBook()

	alert := b.Add("", "", 0)
	if alert.Symbol != "" || alert.Condition != "" || alert.Threshold != 0 {
		t.Errorf("zero-valued fields should be stored as-is: %+v", alert)
	}
	if !alert.Active {
		t.Error("new alerts must be active")
	}
	if alert.Created == "" {
		t.Error("created timestamp must be set")
	}

	b.Add("AAPL", "above", 200)
	b.Add("AAPL", "above", 200) // duplicates are appended, never deduplicated

	if got := len(b.All()); got != 3 {
		t.Fatalf("expected 3 alerts, got %d", got)
	}
}
