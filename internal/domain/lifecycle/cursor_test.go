package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscout/depscout/internal/domain/model"
	apperrors "github.com/depscout/depscout/internal/errors"
)

func TestCursor_AdvancesInOrder(t *testing.T) {
	c := NewCursor()

	assert.Equal(t, model.StatusNew, c.Current())
	assert.False(t, c.Terminal())

	for _, want := range []model.Status{model.StatusNew, model.StatusPending, model.StatusCompleted} {
		got, err := c.Advance()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, want, c.Current())
	}

	assert.True(t, c.Terminal())
}

func TestCursor_ExhaustionPinsTerminalState(t *testing.T) {
	c := NewCursor()
	for range Sequence {
		_, err := c.Advance()
		require.NoError(t, err)
	}

	for i := 0; i < 3; i++ {
		got, err := c.Advance()
		require.Error(t, err)
		assert.True(t, apperrors.IsExhausted(err))
		assert.Equal(t, model.StatusCompleted, got)
		assert.Equal(t, model.StatusCompleted, c.Current())
	}
}

func TestCursor_Independence(t *testing.T) {
	a, b := NewCursor(), NewCursor()

	got, err := a.Advance()
	require.NoError(t, err)
	assert.Equal(t, model.StatusNew, got)

	got, err = a.Advance()
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, got)

	// b is untouched by a's progression.
	got, err = b.Advance()
	require.NoError(t, err)
	assert.Equal(t, model.StatusNew, got)
}
