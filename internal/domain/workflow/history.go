package workflow

import (
	"time"

	"sapataria_xpto/internal/domain/entities"
)

// Actor identifies who performed a status change.
type Actor struct {
	ID   string
	Nome string
}

// RecordTransition appends one audit entry for newStatus to the given history
// and returns the extended sequence. Prior entries are never reordered or
// dropped; a nil history starts a fresh one.
//
// The entry carries the calendar date, wall-clock time at minute precision,
// and the actor. An actor with no display name is recorded as "Sistema".
func RecordTransition(history []entities.StatusEntry, newStatus string, actor Actor, now time.Time) []entities.StatusEntry {
	name := actor.Nome
	if name == "" {
		name = "Sistema"
	}

	out := make([]entities.StatusEntry, len(history), len(history)+1)
	copy(out, history)
	return append(out, entities.StatusEntry{
		Status:   newStatus,
		Date:     now.Format("2006-01-02"),
		Time:     now.Format("15:04"),
		UserID:   actor.ID,
		UserName: name,
	})
}
