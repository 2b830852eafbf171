package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Next()
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
}

func TestNext(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
}

func TestPeek(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Peek())
	assert.Equal(t, 0, cycler.Current())
	cycler.Reverse()
	assert.Equal(t, 3, cycler.Peek())
	assert.Equal(t, game.CounterClockwise, cycler.Direction())
}

func TestReverse(t *testing.T) {
	cycler := game.NewCycler(4)
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, 3, cycler.Next())
	cycler.Reverse()
	assert.Equal(t, 0, cycler.Next())
	assert.Equal(t, game.Clockwise, cycler.Direction())
}
