package directory

import (
	"fmt"
	"time"
)

// Entry represents a user in the directory. aliasID carries the legacy
// identifier some historical activity records still reference; both IDs
// must resolve to the same entry.
type Entry struct {
	id           uint
	aliasID      *uint
	displayName  string
	avatar       string
	identityType string
	groupID      *uint
	roleScope    string
	status       string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewEntry creates a new directory entry.
func NewEntry(displayName, identityType string, groupID *uint) (*Entry, error) {
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}
	if identityType == "" {
		return nil, fmt.Errorf("identity type is required")
	}

	now := time.Now()
	return &Entry{
		displayName:  displayName,
		identityType: identityType,
		groupID:      groupID,
		status:       "active",
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructEntry reconstructs a directory entry from persistence.
func ReconstructEntry(
	id uint,
	aliasID *uint,
	displayName, avatar, identityType string,
	groupID *uint,
	roleScope, status string,
	createdAt, updatedAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}

	return &Entry{
		id:           id,
		aliasID:      aliasID,
		displayName:  displayName,
		avatar:       avatar,
		identityType: identityType,
		groupID:      groupID,
		roleScope:    roleScope,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the primary identifier.
func (e *Entry) ID() uint {
	return e.id
}

// AliasID returns the legacy identifier, if any.
func (e *Entry) AliasID() *uint {
	return e.aliasID
}

// DisplayName returns the display name.
func (e *Entry) DisplayName() string {
	return e.displayName
}

// Avatar returns the avatar URL, empty when unset.
func (e *Entry) Avatar() string {
	return e.avatar
}

// IdentityType returns the identity type (CC, SS, LP).
func (e *Entry) IdentityType() string {
	return e.identityType
}

// GroupID returns the group membership, if any.
func (e *Entry) GroupID() *uint {
	return e.groupID
}

// RoleScope returns the role scope label.
func (e *Entry) RoleScope() string {
	return e.roleScope
}

// Status returns the entry status.
func (e *Entry) Status() string {
	return e.status
}

// CreatedAt returns the creation timestamp.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns the last update timestamp.
func (e *Entry) UpdatedAt() time.Time {
	return e.updatedAt
}

// SetID sets the entry ID after persistence.
func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}

// Group is a display projection of a directory group.
type Group struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
}
