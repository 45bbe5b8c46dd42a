package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZone_AddRemoveContains(t *testing.T) {
	z := NewZone()
	a, err := NewCard(1)
	require.NoError(t, err)
	b, err := NewCard(2)
	require.NoError(t, err)

	z.Add(a)
	z.Add(b)
	assert.Equal(t, 2, z.Len())
	assert.True(t, z.Contains(a))

	assert.True(t, z.Remove(a))
	assert.False(t, z.Contains(a))
	assert.Equal(t, 1, z.Len())

	// Removing a card that is not there is a no-op.
	assert.False(t, z.Remove(a))
	assert.Equal(t, 1, z.Len())
}

func TestZone_PreservesInsertionOrder(t *testing.T) {
	z := NewZone()
	var cards []*Card
	for _, n := range []int{3, 1, 2} {
		c, err := NewCard(n)
		require.NoError(t, err)
		cards = append(cards, c)
		z.Add(c)
	}

	got := z.Cards()
	require.Len(t, got, 3)
	for i, c := range cards {
		assert.Same(t, c, got[i])
	}

	// Removing the middle card keeps the others in order.
	z.Remove(cards[1])
	got = z.Cards()
	require.Len(t, got, 2)
	assert.Same(t, cards[0], got[0])
	assert.Same(t, cards[2], got[1])
}

func TestZone_Points(t *testing.T) {
	z := NewZone()
	assert.Equal(t, 0, z.Points())

	for _, pts := range []int{1, -1, 2} {
		c, err := NewCard(1)
		require.NoError(t, err)
		c.Points = pts
		z.Add(c)
	}
	assert.Equal(t, 2, z.Points())
}

func TestZone_FindByID(t *testing.T) {
	z := NewZone()
	c, err := NewCard(5)
	require.NoError(t, err)
	z.Add(c)

	assert.Same(t, c, z.FindByID(c.ID))
	assert.Nil(t, z.FindByID("nope"))
}

func TestZone_Clear(t *testing.T) {
	z := NewZone()
	c, err := NewCard(1)
	require.NoError(t, err)
	z.Add(c)
	z.Clear()
	assert.Equal(t, 0, z.Len())
}
