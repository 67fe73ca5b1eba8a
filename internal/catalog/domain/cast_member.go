package domain

import "github.com/google/uuid"

// CastMember is a person credited on a video.
type CastMember struct {
	BaseEntity
	name       string
	memberType CastMemberType
}

// NewCastMember creates a cast member with a generated id and no type.
func NewCastMember(name string) (*CastMember, error) {
	member := &CastMember{BaseEntity: NewBaseEntity()}
	if err := member.SetName(name); err != nil {
		return nil, err
	}
	return member, nil
}

// NewCastMemberWithType creates a cast member with a generated id.
func NewCastMemberWithType(name string, memberType CastMemberType) (*CastMember, error) {
	return newCastMember(NewBaseEntity(), name, memberType)
}

// NewCastMemberWithID creates a cast member with a caller-supplied id.
func NewCastMemberWithID(id uuid.UUID, name string, memberType CastMemberType) (*CastMember, error) {
	base, err := NewBaseEntityWithID(id)
	if err != nil {
		return nil, err
	}
	return newCastMember(base, name, memberType)
}

func newCastMember(base BaseEntity, name string, memberType CastMemberType) (*CastMember, error) {
	member := &CastMember{BaseEntity: base}
	if err := member.SetName(name); err != nil {
		return nil, err
	}
	if err := member.SetType(memberType); err != nil {
		return nil, err
	}
	return member, nil
}

// Name returns the cast member name
func (m *CastMember) Name() string {
	return m.name
}

// SetName sets the cast member name
func (m *CastMember) SetName(name string) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	m.name = name
	return nil
}

// Type returns the cast member type, zero when unset
func (m *CastMember) Type() CastMemberType {
	return m.memberType
}

// HasType reports whether a type has been assigned.
func (m *CastMember) HasType() bool {
	return m.memberType != 0
}

// SetType assigns the cast member type. The zero value is treated as a
// missing type; any other undeclared code is rejected as invalid.
func (m *CastMember) SetType(memberType CastMemberType) error {
	if memberType == 0 {
		return NewValidationError("type", "is marked non-null but is null")
	}
	if !memberType.IsValid() {
		return NewValidationError("type", "is not a valid enum")
	}
	m.memberType = memberType
	return nil
}
