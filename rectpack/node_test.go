package rectpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitNode(t *testing.T) {
	var tr tree
	root := tr.newNode(0, 0, 10, 10)

	got := tr.splitNode(root, 4, 6)
	require.Equal(t, root, got)

	n := tr.nodes[root]
	assert.True(t, n.Used)
	assert.Equal(t, NewRect(0, 6, 10, 4), tr.nodes[n.Down].Rect)
	assert.Equal(t, NewRect(4, 0, 6, 6), tr.nodes[n.Right].Rect)
	assert.False(t, tr.nodes[n.Down].Used)
	assert.False(t, tr.nodes[n.Right].Used)
}

func TestFindNodeRightFirst(t *testing.T) {
	var tr tree
	root := tr.newNode(0, 0, 10, 10)
	tr.splitNode(root, 5, 5)

	// Down {0,5,10,5} and Right {5,0,5,5} both fit a 5x5 rectangle.
	id := tr.findNode(root, 5, 5)
	require.NotEqual(t, NoNode, id)
	assert.Equal(t, tr.nodes[root].Right, id)
	assert.Equal(t, NewPoint(5, 0), tr.nodes[id].Point)

	// Only Down is wide enough.
	id = tr.findNode(root, 8, 5)
	require.NotEqual(t, NoNode, id)
	assert.Equal(t, tr.nodes[root].Down, id)
}

func TestFindNodeMissingChild(t *testing.T) {
	var tr tree
	leaf := tr.newNode(0, 0, 4, 4)
	root := tr.newUsed(0, 0, 8, 4, NoNode, leaf)

	assert.Equal(t, leaf, tr.findNode(root, 4, 4))
	assert.Equal(t, NoNode, tr.findNode(root, 5, 4))
	assert.Equal(t, NoNode, tr.findNode(NoNode, 1, 1))
}

func TestFindNodeExactAndOversized(t *testing.T) {
	var tr tree
	root := tr.newNode(0, 0, 10, 10)

	assert.Equal(t, root, tr.findNode(root, 10, 10))
	assert.Equal(t, NoNode, tr.findNode(root, 11, 10))
	assert.Equal(t, NoNode, tr.findNode(root, 10, 11))
	// No rotation is attempted.
	tr2 := tree{}
	tall := tr2.newNode(0, 0, 2, 10)
	assert.Equal(t, NoNode, tr2.findNode(tall, 10, 2))
}

func TestFreeRects(t *testing.T) {
	var tr tree
	root := tr.newNode(0, 0, 24, 16)
	tr.splitNode(root, 16, 16)

	// Down has zero height and is skipped.
	assert.Equal(t, []Rect{NewRect(16, 0, 8, 16)}, tr.freeRects(root))
	assert.Nil(t, tr.freeRects(NoNode))
}

// checkTree verifies that every used node has exactly two children lying
// inside it without overlapping each other, and unused nodes have none.
func checkTree(t *testing.T, tr *tree, root NodeID) {
	t.Helper()
	if root == NoNode {
		return
	}
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := tr.nodes[id]
		if !n.Used {
			assert.Equal(t, NoNode, n.Down, "leaf %v has a down child", n.Rect)
			assert.Equal(t, NoNode, n.Right, "leaf %v has a right child", n.Rect)
			continue
		}
		require.NotEqual(t, NoNode, n.Down, "used node %v has no down child", n.Rect)
		require.NotEqual(t, NoNode, n.Right, "used node %v has no right child", n.Rect)
		down, right := tr.nodes[n.Down], tr.nodes[n.Right]
		assert.True(t, n.ContainsRect(down.Rect), "%v outside %v", down.Rect, n.Rect)
		assert.True(t, n.ContainsRect(right.Rect), "%v outside %v", right.Rect, n.Rect)
		assert.False(t, down.Intersects(right.Rect), "%v overlaps %v", down.Rect, right.Rect)
		assert.LessOrEqual(t, down.Area()+right.Area(), n.Area())
		stack = append(stack, n.Down, n.Right)
	}
}
