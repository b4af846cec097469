package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	assert.Equal(t, "X", PlayerX.String())
	assert.Equal(t, "O", PlayerO.String())
	assert.Equal(t, " ", Empty.String())

	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}

func TestGameStatus(t *testing.T) {
	t.Run("Only Ongoing is unfinished", func(t *testing.T) {
		assert.False(t, Ongoing.IsFinished())
		for _, status := range []GameStatus{Draw, WinX, WinO, Impossible} {
			assert.True(t, status.IsFinished(), status.String())
		}
	})

	t.Run("Travels as text in JSON", func(t *testing.T) {
		data, err := json.Marshal(GameResult{ID: "1", Status: WinO})

		require.NoError(t, err)
		assert.Contains(t, string(data), `"status":"O wins"`)
	})
}
