package syncerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errDisk = errors.New("disk full")

func TestInternalErrorWrap(t *testing.T) {
	t.Parallel()

	e := CreateSyncError("ETagRepo")
	assert.Equal(t, "ETagRepo: internal error", e.Error())

	wrapped := e.Wrap("Upsert", "tx.Exec", errDisk)

	assert.Equal(t, "ETagRepo - Upsert - tx.Exec: internal error", wrapped.Error())
	assert.ErrorIs(t, wrapped, errDisk)

	var ie *InternalError
	assert.ErrorAs(t, wrapped, &ie)
	assert.Equal(t, "Upsert", ie.Function)
}
