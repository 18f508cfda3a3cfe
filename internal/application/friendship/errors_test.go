package friendship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	friendapp "github.com/mittr/linkup/internal/application/friendship"
	"github.com/mittr/linkup/internal/domain/errs"
)

func TestConflictErrorsMatchClass(t *testing.T) {
	for _, err := range []error{
		friendapp.ErrAlreadyFriends,
		friendapp.ErrRequestExists,
		friendapp.ErrReversePending,
	} {
		assert.ErrorIs(t, err, errs.ErrConflict, err.Error())
	}

	// Not-found and self-target are not state conflicts.
	assert.NotErrorIs(t, friendapp.ErrUserNotFound, errs.ErrConflict)
	assert.NotErrorIs(t, friendapp.ErrSelfAction, errs.ErrConflict)
}
