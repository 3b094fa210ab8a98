package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("create campaign: %w", ErrWrongRole)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, "wrong_role", ReasonOf(wrapped))
	assert.True(t, errors.Is(wrapped, ErrWrongRole))
	assert.False(t, errors.Is(wrapped, ErrVideoNotFound))

	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, "", ReasonOf(errors.New("boom")))
	assert.Equal(t, "conflict", KindOf(ErrProfileExists).String())
}
