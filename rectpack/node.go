package rectpack

// NodeID 是节点在树内存池中的下标。
type NodeID int

// NoNode 表示不存在的节点（空子树或未放置）。
const NoNode NodeID = -1

// Node 是二叉空间划分树中的一个区域。
//
// 未使用的节点是叶子，代表一块空闲区域；已使用的节点在左上角放置了一个矩形，
// 剩余空间由 Down（放置矩形下方，整宽）和 Right（放置矩形右侧，与矩形等高）两个子节点描述。
type Node struct {
	Rect
	Used  bool
	Down  NodeID
	Right NodeID
}

// tree 以切片作为节点内存池，子节点通过下标引用。
// 树只追加节点，不单独删除；整棵树随打包器一起释放。
type tree struct {
	nodes []Node
	stack []NodeID
}

// newNode 追加一个未使用的叶子节点并返回其下标
func (t *tree) newNode(x, y, w, h int) NodeID {
	t.nodes = append(t.nodes, Node{
		Rect:  NewRect(x, y, w, h),
		Down:  NoNode,
		Right: NoNode,
	})
	return NodeID(len(t.nodes) - 1)
}

// newUsed 追加一个已使用的内部节点，用于生长时创建新的根
func (t *tree) newUsed(x, y, w, h int, down, right NodeID) NodeID {
	t.nodes = append(t.nodes, Node{
		Rect:  NewRect(x, y, w, h),
		Used:  true,
		Down:  down,
		Right: right,
	})
	return NodeID(len(t.nodes) - 1)
}

// node 返回节点指针。调用方不能跨越 newNode/newUsed 持有该指针，追加可能使其失效。
func (t *tree) node(id NodeID) *Node {
	return &t.nodes[id]
}

// findNode 从 root 开始查找第一个能容纳 w x h 的空闲叶子。
// 已使用的节点先搜索 Right 子树，再搜索 Down 子树；不尝试旋转。
// 使用显式栈代替递归，生长多次后树的深度会随之增加。
func (t *tree) findNode(root NodeID, w, h int) NodeID {
	t.stack = append(t.stack[:0], root)
	for len(t.stack) > 0 {
		id := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		if id == NoNode {
			continue
		}
		n := &t.nodes[id]
		if n.Used {
			// 后进先出：Right 后入栈，先被搜索
			t.stack = append(t.stack, n.Down, n.Right)
			continue
		}
		if w <= n.Width && h <= n.Height {
			return id
		}
	}
	return NoNode
}

// splitNode 在节点左上角放置 w x h 的矩形，并把剩余空间拆分为 Down 和 Right 两个叶子。
// 只能在 findNode 成功之后调用，否则会产生负尺寸的子节点。
func (t *tree) splitNode(id NodeID, w, h int) NodeID {
	n := t.nodes[id]
	down := t.newNode(n.X, n.Y+h, n.Width, n.Height-h)
	right := t.newNode(n.X+w, n.Y, n.Width-w, h)
	p := t.node(id)
	p.Used = true
	p.Down = down
	p.Right = right
	return id
}

// freeRects 按 Right 优先的搜索顺序返回所有面积大于0的空闲叶子
func (t *tree) freeRects(root NodeID) []Rect {
	if root == NoNode {
		return nil
	}
	var free []Rect
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == NoNode {
			continue
		}
		n := &t.nodes[id]
		if n.Used {
			stack = append(stack, n.Down, n.Right)
			continue
		}
		if !n.IsEmpty() {
			free = append(free, n.Rect)
		}
	}
	return free
}

// reset 清空内存池，保留已分配的容量
func (t *tree) reset() {
	t.nodes = t.nodes[:0]
	t.stack = t.stack[:0]
}
