package dto

import (
	"opsight/internal/application/analytics/usecases/statsutil"
	"opsight/internal/domain/activity"
)

// MonthSummary carries the raw sums plus derived metrics for one month.
type MonthSummary struct {
	activity.SumRecord
	TotalSales           float64 `json:"total_sales"`
	TaskCompletionRate   float64 `json:"task_completion_rate"`
	ReportSubmissionRate float64 `json:"report_submission_rate"`
	ActiveDays           int     `json:"active_days"`
}

// MonthlyGoalResponse mirrors one monthly goal row.
type MonthlyGoalResponse struct {
	ID                       uint    `json:"id"`
	IdentityType             string  `json:"identity_type"`
	Scope                    string  `json:"scope"`
	Year                     int     `json:"year"`
	Month                    int     `json:"month"`
	GroupID                  *uint   `json:"group_id"`
	UserID                   *uint   `json:"user_id"`
	AmountTarget             float64 `json:"amount_target"`
	NewSignTargetAmount      float64 `json:"new_sign_target_amount"`
	ReferralTargetAmount     float64 `json:"referral_target_amount"`
	RenewalTotalTargetAmount float64 `json:"renewal_total_target_amount"`
	RenewalTargetCount       int     `json:"renewal_target_count"`
	UpgradeTargetCount       int     `json:"upgrade_target_count"`
	Notes                    string  `json:"notes,omitempty"`
}

// SummaryResponse is the payload of the summary endpoint. Goal is nil when
// no goal matches the requested month and filters.
type SummaryResponse struct {
	Month MonthSummary         `json:"month"`
	Goal  *MonthlyGoalResponse `json:"goal"`
}

// TrendPoint is one date bucket of the trend series. Values holds only the
// requested metric keys; dates without activity produce no point at all.
type TrendPoint struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

// TrendResponse is the payload of the trend endpoint, ascending by date.
type TrendResponse struct {
	Series []TrendPoint `json:"series"`
}

// DataMetrics carries the two operational rates of the data endpoint.
type DataMetrics struct {
	TaskCompletionRate   float64 `json:"task_completion_rate"`
	ReportSubmissionRate float64 `json:"report_submission_rate"`
}

// DataMetricsResponse is the payload of the data endpoint.
type DataMetricsResponse struct {
	Metrics DataMetrics `json:"metrics"`
}

// RankingResponse is the payload of the ranking endpoint. CurrentUserRank
// is nil when no requester was supplied or the requester is outside the
// scoped population.
type RankingResponse struct {
	MetricKey       string                  `json:"metric_key"`
	Top10           []statsutil.RankedEntry `json:"top_10"`
	CurrentUserRank *statsutil.RankedEntry  `json:"current_user_rank"`
}
