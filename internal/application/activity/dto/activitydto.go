package dto

// ActivityRecordInput is one daily record in an ingest request. Repeated
// submissions for the same user and day accumulate server-side.
type ActivityRecordInput struct {
	UserID             uint    `json:"user_id" binding:"required"`
	RecordDate         string  `json:"record_date" binding:"required"`
	NewSignAmount      float64 `json:"new_sign_amount" binding:"gte=0"`
	NewSignCount       int64   `json:"new_sign_count" binding:"gte=0"`
	ReferralAmount     float64 `json:"referral_amount" binding:"gte=0"`
	ReferralCount      int64   `json:"referral_count" binding:"gte=0"`
	RenewalAmount      float64 `json:"renewal_amount" binding:"gte=0"`
	RenewalCount       int64   `json:"renewal_count" binding:"gte=0"`
	UpgradeAmount      float64 `json:"upgrade_amount" binding:"gte=0"`
	UpgradeCount       int64   `json:"upgrade_count" binding:"gte=0"`
	CallCount          int64   `json:"call_count" binding:"gte=0"`
	TaskTotalCount     int64   `json:"task_total_count" binding:"gte=0"`
	TaskCompletedCount int64   `json:"task_completed_count" binding:"gte=0"`
}

// IngestRecordsRequest is the batch ingest payload.
type IngestRecordsRequest struct {
	Records []ActivityRecordInput `json:"records" binding:"required,min=1,dive"`
}

// IngestRecordsResponse reports how many records were accepted.
type IngestRecordsResponse struct {
	Accepted int `json:"accepted"`
}
