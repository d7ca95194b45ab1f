package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerHelpers(t *testing.T) {
	s := "hello"
	assert.Equal(t, &s, StrPtr("hello"))
	assert.Equal(t, "hello", PtrString(&s))
	assert.Equal(t, "", PtrString(nil))

	n := int32(42)
	assert.Equal(t, int32(42), PtrInt32(&n))
	assert.Equal(t, int32(0), PtrInt32(nil))
}

func TestToUint(t *testing.T) {
	id, err := ToUint("123")
	assert.NoError(t, err)
	assert.Equal(t, uint(123), id)

	_, err = ToUint("abc")
	assert.Error(t, err)
}

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, GetUserRoleFromContext(ctx))

	ctx = WithUser(ctx, 7, "staff@crm.local", "ADMIN")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, "staff@crm.local", GetUserEmailFromContext(ctx))
	assert.Equal(t, "ADMIN", GetUserRoleFromContext(ctx))
}
