package netconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateIDLabels(t *testing.T) {
	for _, id := range []StateID{Idle, Running, Jump, Attack, Hit, Dead} {
		got, ok := ParseStateID(id.String())
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
	_, ok := ParseStateID("walk")
	assert.False(t, ok)
	assert.Equal(t, "unknown", StateNone.String())
}

func TestOneShot(t *testing.T) {
	assert.True(t, Attack.OneShot())
	assert.True(t, Hit.OneShot())
	assert.False(t, Dead.OneShot())
	assert.False(t, Idle.OneShot())
}
