package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
)

func TestCastMemberType(t *testing.T) {
	t.Run("declared types are valid", func(t *testing.T) {
		for _, typ := range domain.CastMemberTypes {
			assert.True(t, typ.IsValid(), typ.String())
		}
		assert.Equal(t, 1, domain.CastMemberTypeOne.Code())
		assert.Equal(t, 2, domain.CastMemberTypeTwo.Code())
	})

	t.Run("undeclared codes are invalid", func(t *testing.T) {
		assert.False(t, domain.CastMemberType(0).IsValid())
		assert.False(t, domain.CastMemberType(3).IsValid())
		assert.False(t, domain.CastMemberType(-1).IsValid())
	})

	t.Run("parse", func(t *testing.T) {
		typ, err := domain.ParseCastMemberType(2)
		require.NoError(t, err)
		assert.Equal(t, domain.CastMemberTypeTwo, typ)

		_, err = domain.ParseCastMemberType(9)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "TYPE1", domain.CastMemberTypeOne.String())
		assert.Equal(t, "TYPE2", domain.CastMemberTypeTwo.String())
		assert.Equal(t, "UNSET", domain.CastMemberType(0).String())
		assert.Equal(t, "CastMemberType(7)", domain.CastMemberType(7).String())
	})
}

func TestNewCastMember(t *testing.T) {
	t.Run("with name", func(t *testing.T) {
		member, err := domain.NewCastMember("Caique")
		require.NoError(t, err)

		assert.Equal(t, "Caique", member.Name())
		assert.True(t, domain.IsValidUUID(member.ID().String()))
		assert.False(t, member.HasType())
		assert.Equal(t, domain.CastMemberType(0), member.Type())
	})

	t.Run("with name and type", func(t *testing.T) {
		member, err := domain.NewCastMemberWithType("Caique", domain.CastMemberTypeOne)
		require.NoError(t, err)

		assert.Equal(t, "Caique", member.Name())
		assert.True(t, domain.IsValidUUID(member.ID().String()))
		assert.True(t, member.Type().IsValid())
		assert.Equal(t, domain.CastMemberTypeOne, member.Type())
	})

	t.Run("with id", func(t *testing.T) {
		id := uuid.New()
		member, err := domain.NewCastMemberWithID(id, "Mary Jane", domain.CastMemberTypeTwo)
		require.NoError(t, err)
		assert.Equal(t, id, member.ID())
		assert.Equal(t, domain.CastMemberTypeTwo, member.Type())
	})

	t.Run("nil id", func(t *testing.T) {
		_, err := domain.NewCastMemberWithID(uuid.Nil, "Mary Jane", domain.CastMemberTypeTwo)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := domain.NewCastMember("")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)

		_, err = domain.NewCastMemberWithType("", domain.CastMemberTypeOne)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := domain.NewCastMemberWithType("Cast Member 1", 0)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("undeclared type", func(t *testing.T) {
		_, err := domain.NewCastMemberWithType("Cast Member 1", domain.CastMemberType(42))
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestCastMember_Setters(t *testing.T) {
	member, err := domain.NewCastMemberWithType("Caique", domain.CastMemberTypeOne)
	require.NoError(t, err)

	t.Run("failed set keeps previous name", func(t *testing.T) {
		assert.ErrorIs(t, member.SetName(""), domain.ErrInvalidArgument)
		assert.Equal(t, "Caique", member.Name())
	})

	t.Run("whitespace name is accepted", func(t *testing.T) {
		require.NoError(t, member.SetName(" "))
		assert.Equal(t, " ", member.Name())
	})

	t.Run("unsetting type always fails", func(t *testing.T) {
		assert.ErrorIs(t, member.SetType(0), domain.ErrInvalidArgument)
		assert.Equal(t, domain.CastMemberTypeOne, member.Type())
	})

	t.Run("change type", func(t *testing.T) {
		require.NoError(t, member.SetType(domain.CastMemberTypeTwo))
		assert.Equal(t, domain.CastMemberTypeTwo, member.Type())
	})
}
