// Package store keeps the practice records logged while srm is running
package store

import (
	"github.com/srmtimer/srm/internal/apperr"
	"github.com/srmtimer/srm/internal/models"
)

// ErrOutOfRange is returned when a record is requested by an index that has
// not been assigned.
var ErrOutOfRange = &apperr.Error{
	Message: "record index %d is out of range [0, %d)",
}

// Log is the read side of a record log, used by display code.
type Log interface {
	// Count returns the number of records in the log
	Count() int
	// Get returns the record at index i, where 0 is the oldest record
	Get(i int) (models.Record, error)
	// Records returns a copy of all the records in the order they were logged
	Records() []models.Record
}

// RecordLog is an append-only, in-memory list of records in the order they
// were logged. Once a record is appended its index never changes. A
// RecordLog is not safe for concurrent use.
type RecordLog struct {
	entries []models.Record
}

// NewRecordLog returns an empty record log.
func NewRecordLog() *RecordLog {
	return &RecordLog{}
}

// Append adds r to the end of the log.
func (l *RecordLog) Append(r models.Record) {
	l.entries = append(l.entries, r)
}

func (l *RecordLog) Count() int {
	return len(l.entries)
}

func (l *RecordLog) Get(i int) (models.Record, error) {
	if i < 0 || i >= len(l.entries) {
		return models.Record{}, ErrOutOfRange.Fmt(i, len(l.entries))
	}

	return l.entries[i], nil
}

func (l *RecordLog) Records() []models.Record {
	records := make([]models.Record, len(l.entries))
	copy(records, l.entries)

	return records
}
