package activity

import (
	"fmt"
	"time"
)

// Record represents one user's activity totals for one business day.
// Records are immutable once created; duplicate submissions for the same
// owner and day are summed by the store, not deduplicated.
type Record struct {
	id         uint
	ownerID    uint
	recordDate time.Time
	totals     SumRecord
	createdAt  time.Time
	updatedAt  time.Time
}

// NewRecord creates a new activity record for an owner and business day.
// All numeric inputs must be non-negative.
func NewRecord(ownerID uint, recordDate time.Time, totals SumRecord) (*Record, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if recordDate.IsZero() {
		return nil, fmt.Errorf("record date is required")
	}
	if err := validateTotals(totals); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Record{
		ownerID:    ownerID,
		recordDate: recordDate,
		totals:     totals,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructRecord reconstructs an activity record from persistence.
func ReconstructRecord(
	id, ownerID uint,
	recordDate time.Time,
	totals SumRecord,
	createdAt, updatedAt time.Time,
) (*Record, error) {
	if id == 0 {
		return nil, fmt.Errorf("record ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Record{
		id:         id,
		ownerID:    ownerID,
		recordDate: recordDate,
		totals:     totals,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func validateTotals(t SumRecord) error {
	if t.NewSignAmount < 0 || t.ReferralAmount < 0 || t.RenewalAmount < 0 || t.UpgradeAmount < 0 {
		return fmt.Errorf("amounts must be non-negative")
	}
	if t.NewSignCount < 0 || t.ReferralCount < 0 || t.RenewalCount < 0 || t.UpgradeCount < 0 ||
		t.CallCount < 0 || t.TaskTotalCount < 0 || t.TaskCompletedCount < 0 {
		return fmt.Errorf("counts must be non-negative")
	}
	if t.TaskCompletedCount > t.TaskTotalCount {
		return fmt.Errorf("completed task count cannot exceed total task count")
	}
	return nil
}

// ID returns the record ID.
func (r *Record) ID() uint {
	return r.id
}

// SetID sets the record ID after persistence.
func (r *Record) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("record ID already set")
	}
	if id == 0 {
		return fmt.Errorf("record ID cannot be zero")
	}
	r.id = id
	return nil
}

// OwnerID returns the owning user's ID.
func (r *Record) OwnerID() uint {
	return r.ownerID
}

// RecordDate returns the business day this record covers.
func (r *Record) RecordDate() time.Time {
	return r.recordDate
}

// Totals returns the numeric activity totals.
func (r *Record) Totals() SumRecord {
	return r.totals
}

// CreatedAt returns the creation timestamp.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the last update timestamp.
func (r *Record) UpdatedAt() time.Time {
	return r.updatedAt
}
