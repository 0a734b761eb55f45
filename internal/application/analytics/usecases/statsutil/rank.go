package statsutil

import (
	"sort"
	"strconv"
)

// RankedEntry is one leaderboard row. Rank is 1-based and contiguous.
// DisplayName and Avatar are filled by the enricher, never here.
type RankedEntry struct {
	OwnerID        uint    `json:"owner_id"`
	Rank           int     `json:"rank"`
	RawValue       float64 `json:"raw_value"`
	FormattedValue string  `json:"formatted_value"`
	DisplayName    string  `json:"display_name"`
	Avatar         string  `json:"avatar,omitempty"`
}

// RankResult holds the top slice and the requester's own entry. Requester
// is nil when no requester ID was supplied or the requester is not in the
// population; it may duplicate an entry already in Top.
type RankResult struct {
	Top       []RankedEntry
	Requester *RankedEntry
}

// Rank sorts the aggregated owners by the metric value descending, assigns
// contiguous 1-based ranks, and slices the top N. The sort is stable over
// the aggregate's first-occurrence owner order, which makes ties
// reproducible for an unchanged snapshot. An empty aggregate yields an
// empty Top and a nil Requester.
func Rank(agg *Aggregate, key MetricKey, daysInWindow, topN int, requesterID *uint) RankResult {
	ranked := make([]RankedEntry, 0, len(agg.OwnerOrder))
	for _, ownerID := range agg.OwnerOrder {
		value := MetricValue(key, *agg.ByOwner[ownerID], daysInWindow)
		ranked = append(ranked, RankedEntry{
			OwnerID:        ownerID,
			RawValue:       value,
			FormattedValue: FormatMetricValue(key, value),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RawValue > ranked[j].RawValue
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	result := RankResult{Top: ranked}
	if topN >= 0 && topN < len(ranked) {
		result.Top = ranked[:topN]
	}

	if requesterID != nil {
		for i := range ranked {
			if ranked[i].OwnerID == *requesterID {
				entry := ranked[i]
				result.Requester = &entry
				break
			}
		}
	}

	return result
}

// FormatMetricValue stringifies a metric value, appending % for rate keys.
func FormatMetricValue(key MetricKey, value float64) string {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	if IsRateMetric(key) {
		formatted += "%"
	}
	return formatted
}
