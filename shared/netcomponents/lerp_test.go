package netcomponents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpNetEnemy(t *testing.T) {
	from := NetEnemyData{ID: "a", X: 0, Y: 10, Health: 10, State: 1}
	to := NetEnemyData{ID: "a", X: 10, Y: 20, Health: 7, State: 2, Dead: true}

	got := LerpNetEnemy(from, to, 0.5)
	assert.Equal(t, 5.0, got.X)
	assert.Equal(t, 15.0, got.Y)
	assert.Equal(t, 7, got.Health, "discrete fields take the target value")
	assert.Equal(t, 2, got.State)
	assert.True(t, got.Dead)
}

func TestLerpNetPlayer(t *testing.T) {
	got := LerpNetPlayer(NetPlayerData{X: 4}, NetPlayerData{X: 8, Health: 3}, 0.25)
	assert.Equal(t, 5.0, got.X)
	assert.Equal(t, 3, got.Health)
}
