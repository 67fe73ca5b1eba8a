package domain

import "github.com/google/uuid"

// BaseEntity carries the identity shared by every catalog entity.
type BaseEntity struct {
	id uuid.UUID
}

// NewBaseEntity creates a base entity with a freshly generated identity.
func NewBaseEntity() BaseEntity {
	return BaseEntity{id: uuid.New()}
}

// NewBaseEntityWithID creates a base entity from a caller-supplied identity.
func NewBaseEntityWithID(id uuid.UUID) (BaseEntity, error) {
	if id == uuid.Nil {
		return BaseEntity{}, NewValidationError("id", "is marked non-null but is nil")
	}
	return BaseEntity{id: id}, nil
}

// ID returns the entity identity
func (e BaseEntity) ID() uuid.UUID {
	return e.id
}

// IsValidUUID reports whether s is a well-formed UUID.
func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// newBaseEntity picks the supplied identity when there is one.
func newBaseEntity(id *uuid.UUID) (BaseEntity, error) {
	if id == nil {
		return NewBaseEntity(), nil
	}
	return NewBaseEntityWithID(*id)
}
