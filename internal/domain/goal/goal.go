package goal

import (
	"time"

	"opsight/internal/shared/errors"
)

// Scope values a goal can target.
const (
	ScopeGlobal = "global"
	ScopeGroup  = "group"
	ScopeUser   = "user"
)

// Targets carries the amount and count targets of a monthly goal.
type Targets struct {
	AmountTarget             float64 `json:"amount_target"`
	NewSignTargetAmount      float64 `json:"new_sign_target_amount"`
	ReferralTargetAmount     float64 `json:"referral_target_amount"`
	RenewalTotalTargetAmount float64 `json:"renewal_total_target_amount"`
	RenewalTargetCount       int     `json:"renewal_target_count"`
	UpgradeTargetCount       int     `json:"upgrade_target_count"`
}

// MonthlyGoal is a per-identity target for a calendar month, scoped to the
// whole population, a group, or a single user.
type MonthlyGoal struct {
	id           uint
	identityType string
	scope        string
	year         int
	month        int
	groupID      *uint
	userID       *uint
	targets      Targets
	notes        string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewMonthlyGoal creates a goal after validating the scope shape.
func NewMonthlyGoal(identityType, scope string, year, month int, groupID, userID *uint, targets Targets, notes string) (*MonthlyGoal, error) {
	if identityType == "" {
		return nil, errors.NewValidationError("identity_type is required")
	}
	if month < 1 || month > 12 {
		return nil, errors.NewValidationError("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, errors.NewValidationError("year is out of range")
	}
	switch scope {
	case ScopeGlobal:
	case ScopeGroup:
		if groupID == nil {
			return nil, errors.NewValidationError("group scope requires group_id")
		}
	case ScopeUser:
		if userID == nil {
			return nil, errors.NewValidationError("user scope requires user_id")
		}
	default:
		return nil, errors.NewValidationError("scope must be global, group or user")
	}

	now := time.Now()
	return &MonthlyGoal{
		identityType: identityType,
		scope:        scope,
		year:         year,
		month:        month,
		groupID:      groupID,
		userID:       userID,
		targets:      targets,
		notes:        notes,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructMonthlyGoal rebuilds a goal from persistence without validation.
func ReconstructMonthlyGoal(id uint, identityType, scope string, year, month int, groupID, userID *uint, targets Targets, notes string, createdAt, updatedAt time.Time) *MonthlyGoal {
	return &MonthlyGoal{
		id:           id,
		identityType: identityType,
		scope:        scope,
		year:         year,
		month:        month,
		groupID:      groupID,
		userID:       userID,
		targets:      targets,
		notes:        notes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (g *MonthlyGoal) ID() uint             { return g.id }
func (g *MonthlyGoal) IdentityType() string { return g.identityType }
func (g *MonthlyGoal) Scope() string        { return g.scope }
func (g *MonthlyGoal) Year() int            { return g.year }
func (g *MonthlyGoal) Month() int           { return g.month }
func (g *MonthlyGoal) GroupID() *uint       { return g.groupID }
func (g *MonthlyGoal) UserID() *uint        { return g.userID }
func (g *MonthlyGoal) Targets() Targets     { return g.targets }
func (g *MonthlyGoal) Notes() string        { return g.notes }
func (g *MonthlyGoal) CreatedAt() time.Time { return g.createdAt }
func (g *MonthlyGoal) UpdatedAt() time.Time { return g.updatedAt }

// SetID assigns the persistence ID after creation.
func (g *MonthlyGoal) SetID(id uint) { g.id = id }

// UpdateTargets replaces the goal targets and notes.
func (g *MonthlyGoal) UpdateTargets(targets Targets, notes string) {
	g.targets = targets
	g.notes = notes
	g.updatedAt = time.Now()
}
