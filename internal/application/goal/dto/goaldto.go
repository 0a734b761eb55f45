package dto

// MonthlyGoalInput is the upsert payload for one monthly goal.
type MonthlyGoalInput struct {
	IdentityType             string  `json:"identity_type" binding:"required"`
	Scope                    string  `json:"scope" binding:"required,oneof=global group user"`
	Year                     int     `json:"year" binding:"required"`
	Month                    int     `json:"month" binding:"required,min=1,max=12"`
	GroupID                  *uint   `json:"group_id"`
	UserID                   *uint   `json:"user_id"`
	AmountTarget             float64 `json:"amount_target" binding:"gte=0"`
	NewSignTargetAmount      float64 `json:"new_sign_target_amount" binding:"gte=0"`
	ReferralTargetAmount     float64 `json:"referral_target_amount" binding:"gte=0"`
	RenewalTotalTargetAmount float64 `json:"renewal_total_target_amount" binding:"gte=0"`
	RenewalTargetCount       int     `json:"renewal_target_count" binding:"gte=0"`
	UpgradeTargetCount       int     `json:"upgrade_target_count" binding:"gte=0"`
	Notes                    string  `json:"notes"`
}

// MonthlyGoalResponse mirrors one stored goal.
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
