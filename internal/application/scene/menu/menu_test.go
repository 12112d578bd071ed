package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/invaders/internal/application/scene"
	"github.com/younwookim/invaders/internal/application/scene/playing"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

func TestMenu_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Menu)(nil)
}

func TestMenu_Update(t *testing.T) {
	seeds := 0
	m := New(config.Default(), func() int64 {
		seeds++
		return 42
	})

	t.Run("stays until started", func(t *testing.T) {
		m.readStart = func() bool { return false }

		next, err := m.Update(1.0 / 60)

		require.NoError(t, err)
		assert.Nil(t, next)
		assert.Equal(t, 0, seeds)
	})

	t.Run("starts a run", func(t *testing.T) {
		m.readStart = func() bool { return true }

		next, err := m.Update(1.0 / 60)

		require.NoError(t, err)
		require.IsType(t, &playing.Playing{}, next)
		assert.Equal(t, 1, seeds)
		assert.Equal(t, 1, next.(*playing.Playing).Simulation().HUD().Wave)
	})
}

