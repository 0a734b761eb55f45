package statsutil

import (
	"testing"

	"opsight/internal/domain/activity"
)

func aggregateFromValues(ownerIDs []uint, amounts []float64) *Aggregate {
	agg := NewAggregate()
	for i, id := range ownerIDs {
		agg.ByOwner[id] = &OwnerSum{Totals: activity.SumRecord{NewSignAmount: amounts[i]}, ActiveDays: 1}
		agg.OwnerOrder = append(agg.OwnerOrder, id)
	}
	return agg
}

func TestRank(t *testing.T) {
	t.Run("sorts descending with contiguous ranks", func(t *testing.T) {
		// A has 300, B has 500
		agg := aggregateFromValues([]uint{1, 2}, []float64{300, 500})

		result := Rank(agg, MetricPeriodSalesAmount, 0, 10, nil)
		if len(result.Top) != 2 {
			t.Fatalf("Top length = %d, want 2", len(result.Top))
		}
		if result.Top[0].OwnerID != 2 || result.Top[0].Rank != 1 {
			t.Errorf("Top[0] = %+v, want owner 2 rank 1", result.Top[0])
		}
		if result.Top[1].OwnerID != 1 || result.Top[1].Rank != 2 {
			t.Errorf("Top[1] = %+v, want owner 1 rank 2", result.Top[1])
		}
	})

	t.Run("top n caps the slice at population size", func(t *testing.T) {
		agg := aggregateFromValues([]uint{1, 2, 3}, []float64{10, 30, 20})

		result := Rank(agg, MetricPeriodSalesAmount, 0, 2, nil)
		if len(result.Top) != 2 {
			t.Fatalf("Top length = %d, want 2", len(result.Top))
		}
		if result.Top[0].OwnerID != 2 || result.Top[1].OwnerID != 3 {
			t.Errorf("Top = %+v", result.Top)
		}
	})

	t.Run("requester rank resolvable beyond top n", func(t *testing.T) {
		agg := aggregateFromValues([]uint{1, 2, 3, 4}, []float64{40, 30, 20, 10})

		requester := uint(4)
		result := Rank(agg, MetricPeriodSalesAmount, 0, 2, &requester)
		if result.Requester == nil {
			t.Fatal("Requester = nil, want entry with rank 4")
		}
		if result.Requester.Rank != 4 {
			t.Errorf("Requester.Rank = %d, want 4", result.Requester.Rank)
		}
	})

	t.Run("requester inside top n duplicates the entry", func(t *testing.T) {
		agg := aggregateFromValues([]uint{1, 2}, []float64{300, 500})

		requester := uint(2)
		result := Rank(agg, MetricPeriodSalesAmount, 0, 10, &requester)
		if result.Requester == nil || result.Requester.Rank != 1 {
			t.Fatalf("Requester = %+v, want rank 1", result.Requester)
		}
	})

	t.Run("requester outside population yields nil", func(t *testing.T) {
		agg := aggregateFromValues([]uint{1}, []float64{100})

		requester := uint(9)
		result := Rank(agg, MetricPeriodSalesAmount, 0, 10, &requester)
		if result.Requester != nil {
			t.Errorf("Requester = %+v, want nil", result.Requester)
		}
	})

	t.Run("empty aggregate yields empty result", func(t *testing.T) {
		requester := uint(1)
		result := Rank(NewAggregate(), MetricPeriodSalesAmount, 0, 10, &requester)
		if len(result.Top) != 0 || result.Requester != nil {
			t.Errorf("result = %+v, want empty", result)
		}
	})

	t.Run("ties keep first occurrence order", func(t *testing.T) {
		agg := aggregateFromValues([]uint{5, 3, 8}, []float64{100, 100, 100})

		result := Rank(agg, MetricPeriodSalesAmount, 0, 10, nil)
		wantOrder := []uint{5, 3, 8}
		for i, want := range wantOrder {
			if result.Top[i].OwnerID != want {
				t.Errorf("Top[%d].OwnerID = %d, want %d", i, result.Top[i].OwnerID, want)
			}
			if result.Top[i].Rank != i+1 {
				t.Errorf("Top[%d].Rank = %d, want %d", i, result.Top[i].Rank, i+1)
			}
		}
	})

	t.Run("unknown key ranks like the default composite", func(t *testing.T) {
		agg := aggregateFromValues([]uint{1, 2}, []float64{300, 500})

		known := Rank(agg, MetricPeriodSalesAmount, 0, 10, nil)
		fallback := Rank(agg, ParseMetricKey("unknown_key"), 0, 10, nil)
		for i := range known.Top {
			if known.Top[i] != fallback.Top[i] {
				t.Errorf("entry %d differs: %+v vs %+v", i, known.Top[i], fallback.Top[i])
			}
		}
	})
}

func TestFormatMetricValue(t *testing.T) {
	tests := []struct {
		name  string
		key   MetricKey
		value float64
		want  string
	}{
		{"amount as-is", MetricPeriodSalesAmount, 500, "500"},
		{"fractional amount keeps precision", MetricPeriodSalesAmount, 10.5, "10.5"},
		{"rate gets percent suffix", MetricTaskCompletionRate, 75, "75%"},
		{"zero rate", MetricReportSubmissionRate, 0, "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMetricValue(tt.key, tt.value); got != tt.want {
				t.Errorf("FormatMetricValue(%q, %v) = %q, want %q", tt.key, tt.value, got, tt.want)
			}
		})
	}
}
