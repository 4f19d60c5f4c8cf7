package section

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeList(n int) []*Section {
	list := make([]*Section, n)
	for i := 0; i < n; i++ {
		list[i] = New(TypeTextBlock, ParentHome, i)
	}
	return list
}

func TestNextOrder(t *testing.T) {
	assert.Equal(t, 0, NextOrder(nil))
	assert.Equal(t, 0, NextOrder([]*Section{}))

	list := makeList(3)
	assert.Equal(t, 3, NextOrder(list))

	// Sparse orders still yield max+1.
	list[1].DisplayOrder = 10
	assert.Equal(t, 11, NextOrder(list))
}

func TestMoveSwapsNeighbors(t *testing.T) {
	list := makeList(3)
	a, b, c := list[0], list[1], list[2]

	moved := Move(list, 1, -1)

	assert.True(t, moved)
	assert.Equal(t, []*Section{b, a, c}, list)
	assert.Equal(t, 0, b.DisplayOrder)
	assert.Equal(t, 1, a.DisplayOrder)
	assert.Equal(t, 2, c.DisplayOrder)
}

func TestMoveOutOfBoundsIsNoOp(t *testing.T) {
	list := makeList(2)
	list[0].DisplayOrder = 5
	list[1].DisplayOrder = 9

	assert.False(t, Move(list, 0, -1))
	assert.False(t, Move(list, 1, 1))
	assert.False(t, Move(list, -1, 1))
	assert.False(t, Move(list, 2, -1))

	// A rejected move must not renumber either.
	assert.Equal(t, 5, list[0].DisplayOrder)
	assert.Equal(t, 9, list[1].DisplayOrder)
}

// After any sequence of moves the display orders are exactly 0..N-1 and match
// slice positions.
func TestMoveKeepsOrdersDense(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	list := makeList(7)

	for i := 0; i < 200; i++ {
		index := rng.Intn(len(list))
		direction := 1
		if rng.Intn(2) == 0 {
			direction = -1
		}
		Move(list, index, direction)

		for pos, s := range list {
			assert.Equal(t, pos, s.DisplayOrder)
		}
	}
}

// Deleting a section does not renumber the survivors; only the next move or
// explicit order save does.
func TestDeleteDoesNotRenumber(t *testing.T) {
	list := makeList(3)
	a, b, c := list[0], list[1], list[2]

	Move(list, 1, -1)
	assert.Equal(t, []*Section{b, a, c}, list)

	// Remove b, as the editor does after a confirmed delete.
	list = append(list[:0], list[1:]...)
	assert.Equal(t, []*Section{a, c}, list)
	assert.Equal(t, 1, a.DisplayOrder)
	assert.Equal(t, 2, c.DisplayOrder)
}
