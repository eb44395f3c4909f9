package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	s := New("sim0")

	assert.Equal(t, "sim0", s.Name())
	assert.True(t, s.Read(), "the level idles high")

	s.Press()
	assert.False(t, s.Read())

	s.Release()
	assert.True(t, s.Read())

	s.Toggle()
	assert.False(t, s.Read())
	s.Toggle()
	assert.True(t, s.Read())
}

func TestEdgeNotification(t *testing.T) {
	s := New("sim0")

	s.Press()
	select {
	case <-s.Edges():
	default:
		t.Fatal("expected an edge wake-up after a level change")
	}

	// No change, no edge.
	s.Press()
	select {
	case <-s.Edges():
		t.Fatal("unchanged level must not produce an edge")
	default:
	}
}

func TestEdgeNeverBlocks(t *testing.T) {
	s := New("sim0")

	// Nobody is draining the edge channel; changes must still go through.
	for i := 0; i < 10; i++ {
		s.Toggle()
	}
	assert.True(t, s.Read())
}
