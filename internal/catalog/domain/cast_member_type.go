package domain

import "fmt"

// CastMemberType is the role of a cast member. The zero value means no
// type has been assigned yet.
type CastMemberType int

const (
	CastMemberTypeOne CastMemberType = 1
	CastMemberTypeTwo CastMemberType = 2
)

// CastMemberTypes lists the declared types in code order.
var CastMemberTypes = []CastMemberType{CastMemberTypeOne, CastMemberTypeTwo}

// Code returns the integer code of the type
func (t CastMemberType) Code() int {
	return int(t)
}

// IsValid reports whether t is one of the declared types.
func (t CastMemberType) IsValid() bool {
	switch t {
	case CastMemberTypeOne, CastMemberTypeTwo:
		return true
	default:
		return false
	}
}

func (t CastMemberType) String() string {
	switch t {
	case 0:
		return "UNSET"
	case CastMemberTypeOne:
		return "TYPE1"
	case CastMemberTypeTwo:
		return "TYPE2"
	default:
		return fmt.Sprintf("CastMemberType(%d)", int(t))
	}
}

// ParseCastMemberType maps an integer code back to its declared type.
func ParseCastMemberType(code int) (CastMemberType, error) {
	t := CastMemberType(code)
	if !t.IsValid() {
		return 0, NewValidationError("type", fmt.Sprintf("%d is not a valid cast member type", code))
	}
	return t, nil
}
