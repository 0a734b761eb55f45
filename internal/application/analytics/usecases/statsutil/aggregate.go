package statsutil

import (
	"opsight/internal/domain/activity"
	"opsight/internal/shared/biztime"
)

// OwnerSum is the per-owner accumulator: summed numeric fields plus the
// count of distinct days the owner had any record.
type OwnerSum struct {
	Totals     activity.SumRecord
	ActiveDays int
}

// Aggregate holds the two parallel fold results of one record scan. Owner
// and date orders preserve first occurrence in the scan, which the record
// store keeps stable by ordering rows by date then ID; the ranker relies on
// that order for reproducible tie-breaking.
type Aggregate struct {
	ByOwner    map[uint]*OwnerSum
	OwnerOrder []uint

	ByDate    map[string]*activity.SumRecord
	DateOrder []string
}

// NewAggregate returns an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{
		ByOwner: make(map[uint]*OwnerSum),
		ByDate:  make(map[string]*activity.SumRecord),
	}
}

// Total folds every per-owner sum into one record.
func (a *Aggregate) Total() activity.SumRecord {
	var total activity.SumRecord
	for _, id := range a.OwnerOrder {
		total.Add(a.ByOwner[id].Totals)
	}
	return total
}

// ActiveDayCount returns the number of distinct dates with any activity.
func (a *Aggregate) ActiveDayCount() int {
	return len(a.DateOrder)
}

// AggregateRecords folds records into per-owner and per-day sums. Owner IDs
// matching a known alias are canonicalized to the primary ID so one person
// never produces two aggregation entries. Dates are bucketed by business
// day.
func AggregateRecords(records []*activity.Record, aliasIndex map[uint]uint) *Aggregate {
	agg := NewAggregate()
	activeDays := make(map[uint]map[string]struct{})

	for _, record := range records {
		ownerID := record.OwnerID()
		if primary, ok := aliasIndex[ownerID]; ok {
			ownerID = primary
		}
		date := biztime.FormatDateInBizTimezone(record.RecordDate())

		ownerSum, ok := agg.ByOwner[ownerID]
		if !ok {
			ownerSum = &OwnerSum{}
			agg.ByOwner[ownerID] = ownerSum
			agg.OwnerOrder = append(agg.OwnerOrder, ownerID)
			activeDays[ownerID] = make(map[string]struct{})
		}
		ownerSum.Totals.Add(record.Totals())
		if _, seen := activeDays[ownerID][date]; !seen {
			activeDays[ownerID][date] = struct{}{}
			ownerSum.ActiveDays++
		}

		daySum, ok := agg.ByDate[date]
		if !ok {
			daySum = &activity.SumRecord{}
			agg.ByDate[date] = daySum
			agg.DateOrder = append(agg.DateOrder, date)
		}
		daySum.Add(record.Totals())
	}

	return agg
}
