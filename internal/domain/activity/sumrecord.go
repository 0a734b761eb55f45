package activity

// SumRecord is the fixed-shape accumulator for the numeric activity fields.
// Every field is summed independently; amounts and counts are aggregated
// identically and differ only in their downstream unit.
type SumRecord struct {
	NewSignAmount      float64 `json:"new_sign_amount"`
	NewSignCount       int64   `json:"new_sign_count"`
	ReferralAmount     float64 `json:"referral_amount"`
	ReferralCount      int64   `json:"referral_count"`
	RenewalAmount      float64 `json:"renewal_amount"`
	RenewalCount       int64   `json:"renewal_count"`
	UpgradeAmount      float64 `json:"upgrade_amount"`
	UpgradeCount       int64   `json:"upgrade_count"`
	CallCount          int64   `json:"call_count"`
	TaskTotalCount     int64   `json:"task_total_count"`
	TaskCompletedCount int64   `json:"task_completed_count"`
}

// Add folds another record into the accumulator field by field.
func (s *SumRecord) Add(other SumRecord) {
	s.NewSignAmount += other.NewSignAmount
	s.NewSignCount += other.NewSignCount
	s.ReferralAmount += other.ReferralAmount
	s.ReferralCount += other.ReferralCount
	s.RenewalAmount += other.RenewalAmount
	s.RenewalCount += other.RenewalCount
	s.UpgradeAmount += other.UpgradeAmount
	s.UpgradeCount += other.UpgradeCount
	s.CallCount += other.CallCount
	s.TaskTotalCount += other.TaskTotalCount
	s.TaskCompletedCount += other.TaskCompletedCount
}

// TotalSales is the composite sales amount across all deal types.
func (s SumRecord) TotalSales() float64 {
	return s.NewSignAmount + s.ReferralAmount + s.RenewalAmount + s.UpgradeAmount
}

// IsZero reports whether every field is zero.
func (s SumRecord) IsZero() bool {
	return s == SumRecord{}
}
