package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/srmtimer/srm/internal/models"
)

func sampleRecords(k int) []models.Record {
	records := make([]models.Record, k)

	for i := range records {
		records[i] = models.NewRecord(
			fmt.Sprintf("Problem %d", i+1),
			i%2,
			i%len(models.Languages),
			(i+1)*60,
		)
	}

	return records
}

func TestAppendAndGet(t *testing.T) {
	for _, k := range []int{0, 1, 2, 25} {
		log := NewRecordLog()
		want := sampleRecords(k)

		for _, r := range want {
			log.Append(r)
		}

		if log.Count() != k {
			t.Fatalf("expected count to be %d, but got %d", k, log.Count())
		}

		for i := range want {
			got, err := log.Get(i)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(want[i], got); diff != "" {
				t.Errorf("record %d mismatch (-want +got):\n%s", i, diff)
			}
		}
	}
}

func TestIndexIsStable(t *testing.T) {
	log := NewRecordLog()
	records := sampleRecords(3)

	log.Append(records[0])

	first, _ := log.Get(0)

	log.Append(records[1])
	log.Append(records[2])

	again, _ := log.Get(0)

	if diff := cmp.Diff(first, again); diff != "" {
		t.Errorf("record 0 changed after append (-before +after):\n%s", diff)
	}
}

func TestGetOutOfRange(t *testing.T) {
	log := NewRecordLog()

	for _, r := range sampleRecords(2) {
		log.Append(r)
	}

	for _, i := range []int{-1, log.Count(), 100} {
		_, err := log.Get(i)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Get(%d): expected ErrOutOfRange, but got %v", i, err)
		}
	}

	_, err := NewRecordLog().Get(0)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Get(0) on empty log: expected ErrOutOfRange, but got %v", err)
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	log := NewRecordLog()
	want := sampleRecords(3)

	for _, r := range want {
		log.Append(r)
	}

	got := log.Records()
	got[0].Name = "changed"

	if diff := cmp.Diff(want, log.Records()); diff != "" {
		t.Errorf("log was modified through Records (-want +got):\n%s", diff)
	}
}
