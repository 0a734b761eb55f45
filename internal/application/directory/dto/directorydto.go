package dto

// UserResponse is one directory listing row.
type UserResponse struct {
	ID           uint   `json:"id"`
	AliasID      *uint  `json:"alias_id,omitempty"`
	DisplayName  string `json:"display_name"`
	Avatar       string `json:"avatar,omitempty"`
	IdentityType string `json:"identity_type"`
	GroupID      *uint  `json:"group_id"`
	RoleScope    string `json:"role_scope,omitempty"`
	Status       string `json:"status"`
}

// GroupResponse is one group with its member count.
type GroupResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
}
