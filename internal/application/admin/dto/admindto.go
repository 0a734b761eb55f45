package dto

// AdminMetricInput is the create payload for one metric catalog entry.
type AdminMetricInput struct {
	Key           string   `json:"key" binding:"required,max=100"`
	Name          string   `json:"name" binding:"required,max=200"`
	Description   string   `json:"description"`
	IdentityScope string   `json:"identity_scope" binding:"omitempty,oneof=CC SS LP ALL CC_SS"`
	TargetCount   *int     `json:"target_count"`
	TargetAmount  *float64 `json:"target_amount"`
	Unit          string   `json:"unit" binding:"max=20"`
	VisibleRoles  []string `json:"visible_roles"`
}

// AdminMetricResponse mirrors one catalog entry.
type AdminMetricResponse struct {
	ID            uint     `json:"id"`
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	IdentityScope string   `json:"identity_scope,omitempty"`
	TargetCount   *int     `json:"target_count"`
	TargetAmount  *float64 `json:"target_amount"`
	Unit          string   `json:"unit,omitempty"`
	IsActive      bool     `json:"is_active"`
	VisibleRoles  []string `json:"visible_roles,omitempty"`
}
