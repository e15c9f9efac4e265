package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("address not found")

func TestWrapKeepsSentinel(t *testing.T) {
	t.Parallel()

	wrapped := Wrap(Wrap(errSentinel, "failed to find address"), "failed to execute transaction")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, "failed to execute transaction: failed to find address: address not found", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrapKeepsSentinel")
}

func TestNilPassthrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
	assert.NoError(t, Join())
}

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestAsAndJoin(t *testing.T) {
	t.Parallel()

	joined := Join(New("rollback failed"), WithStack(&codeError{code: "23505"}))

	var target *codeError
	assert.True(t, As(joined, &target))
	assert.Equal(t, "23505", target.code)
}
