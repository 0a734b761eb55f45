package statsutil

import "math"

// MetricKey identifies a rankable metric. The key set is fixed at compile
// time; free-form client strings are parsed through ParseMetricKey which
// falls back to the default composite metric on anything unrecognized.
type MetricKey string

const (
	// MetricPeriodSalesAmount is the composite sales total and the
	// fallback for unknown keys.
	MetricPeriodSalesAmount    MetricKey = "period_sales_amount"
	MetricNewSignAmount        MetricKey = "new_sign_amount"
	MetricReferralAmount       MetricKey = "referral_amount"
	MetricRenewalAmount        MetricKey = "renewal_amount"
	MetricUpgradeAmount        MetricKey = "upgrade_amount"
	MetricCallCount            MetricKey = "call_count"
	MetricTaskCompletionRate   MetricKey = "task_completion_rate"
	MetricReportSubmissionRate MetricKey = "report_submission_rate"
)

// metricExtractors is the fixed key-to-value table. daysInWindow is the
// submission rate denominator; 0 means "no explicit window" and the
// owner's own active day count is used instead.
var metricExtractors = map[MetricKey]func(sum OwnerSum, daysInWindow int) float64{
	MetricPeriodSalesAmount: func(sum OwnerSum, _ int) float64 {
		return sum.Totals.TotalSales()
	},
	MetricNewSignAmount: func(sum OwnerSum, _ int) float64 {
		return sum.Totals.NewSignAmount
	},
	MetricReferralAmount: func(sum OwnerSum, _ int) float64 {
		return sum.Totals.ReferralAmount
	},
	MetricRenewalAmount: func(sum OwnerSum, _ int) float64 {
		return sum.Totals.RenewalAmount
	},
	MetricUpgradeAmount: func(sum OwnerSum, _ int) float64 {
		return sum.Totals.UpgradeAmount
	},
	MetricCallCount: func(sum OwnerSum, _ int) float64 {
		return float64(sum.Totals.CallCount)
	},
	MetricTaskCompletionRate: func(sum OwnerSum, _ int) float64 {
		return CompletionRate(sum.Totals.TaskCompletedCount, sum.Totals.TaskTotalCount)
	},
	MetricReportSubmissionRate: func(sum OwnerSum, daysInWindow int) float64 {
		return SubmissionRate(sum.ActiveDays, daysInWindow)
	},
}

// rateKeys get a % suffix on the formatted value only, never on the raw one.
var rateKeys = map[MetricKey]bool{
	MetricTaskCompletionRate:   true,
	MetricReportSubmissionRate: true,
}

// ParseMetricKey maps a client-supplied string to a known key, falling back
// to MetricPeriodSalesAmount so leaderboard requests survive typos.
func ParseMetricKey(s string) MetricKey {
	key := MetricKey(s)
	if _, ok := metricExtractors[key]; ok {
		return key
	}
	return MetricPeriodSalesAmount
}

// IsRateMetric reports whether the key yields a percentage.
func IsRateMetric(key MetricKey) bool {
	return rateKeys[key]
}

// MetricValue extracts the key's value from an owner sum.
func MetricValue(key MetricKey, sum OwnerSum, daysInWindow int) float64 {
	extract, ok := metricExtractors[key]
	if !ok {
		extract = metricExtractors[MetricPeriodSalesAmount]
	}
	return extract(sum, daysInWindow)
}

// CompletionRate is the rounded percentage of completed over total; 0 when
// there is nothing to complete.
func CompletionRate(completed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed) / float64(total) * 100)
}

// SubmissionRate is the rounded percentage of active days over the window
// span. With no explicit window (daysInWindow <= 0) the denominator is the
// active day count itself, so any activity reads as 100.
func SubmissionRate(activeDays, daysInWindow int) float64 {
	if daysInWindow <= 0 {
		daysInWindow = activeDays
	}
	if daysInWindow <= 0 {
		return 0
	}
	return math.Round(float64(activeDays) / float64(daysInWindow) * 100)
}

// ComposedMetrics carries the derived fields the summary endpoint reports
// alongside the raw sums.
type ComposedMetrics struct {
	TotalSales           float64 `json:"total_sales"`
	TaskCompletionRate   float64 `json:"task_completion_rate"`
	ReportSubmissionRate float64 `json:"report_submission_rate"`
}

// Compose derives composite and rate metrics from an owner sum.
func Compose(sum OwnerSum, daysInWindow int) ComposedMetrics {
	return ComposedMetrics{
		TotalSales:           sum.Totals.TotalSales(),
		TaskCompletionRate:   CompletionRate(sum.Totals.TaskCompletedCount, sum.Totals.TaskTotalCount),
		ReportSubmissionRate: SubmissionRate(sum.ActiveDays, daysInWindow),
	}
}
