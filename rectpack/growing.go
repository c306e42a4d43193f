package rectpack

// GrowingPacker 是自增长的二叉树打包器。
//
// 它不需要预先指定尺寸：根节点取第一个矩形的尺寸，之后当没有空闲区域能容纳新矩形时，
// 向右或向下扩展打包区域，并尽量保持整体接近正方形。
// 每次只沿一个方向生长，因此当新矩形同时比当前区域更宽且更高时会被拒绝；
// 按最大边从大到小排序输入即可避免这种情况。
type GrowingPacker struct {
	algorithmBase
}

// NewGrowingPacker 创建一个尚未初始化尺寸的自增长打包器
func NewGrowingPacker() *GrowingPacker {
	p := &GrowingPacker{}
	p.Reset()
	return p
}

// Fit 按输入顺序放置矩形，返回与输入下标一一对应的结果。
//
// 根节点只在第一次遇到有效矩形时按其尺寸创建，之后的调用在已有的区域上继续生长，
// 不会根据新批次的第一个矩形重新确定尺寸。
func (p *GrowingPacker) Fit(sizes ...Size) []Placement {
	result := make([]Placement, len(sizes))
	for i, size := range sizes {
		result[i] = p.fitOne(size)
	}
	return result
}

func (p *GrowingPacker) fitOne(size Size) Placement {
	if !size.Valid() {
		return unplaced(size)
	}
	w, h := size.Width, size.Height
	if p.root == NoNode {
		p.root = p.tree.newNode(0, 0, w, h)
	}
	id := p.tree.findNode(p.root, w, h)
	if id != NoNode {
		id = p.tree.splitNode(id, w, h)
	} else {
		id = p.growNode(w, h)
	}
	if id == NoNode {
		return unplaced(size)
	}
	return p.place(size, id)
}

// growNode 扩展打包区域以容纳 w x h 的矩形，无法沿单一方向生长时返回 NoNode
func (p *GrowingPacker) growNode(w, h int) NodeID {
	root := p.tree.node(p.root)
	canGrowDown := w <= root.Width
	canGrowRight := h <= root.Height

	// 高度明显大于宽度时向右生长，保持接近正方形
	shouldGrowRight := canGrowRight && root.Height >= root.Width+w
	// 宽度明显大于高度时向下生长
	shouldGrowDown := canGrowDown && root.Width >= root.Height+h

	switch {
	case shouldGrowRight:
		return p.growRight(w, h)
	case shouldGrowDown:
		return p.growDown(w, h)
	case canGrowRight:
		return p.growRight(w, h)
	case canGrowDown:
		return p.growDown(w, h)
	}
	return NoNode
}

// growRight 创建新的根节点，旧根成为其 Down 子节点，右侧新增一条 w 宽的空闲区域
func (p *GrowingPacker) growRight(w, h int) NodeID {
	old := *p.tree.node(p.root)
	strip := p.tree.newNode(old.Width, 0, w, old.Height)
	p.root = p.tree.newUsed(0, 0, old.Width+w, old.Height, p.root, strip)
	return p.fitGrown(w, h)
}

// growDown 创建新的根节点，旧根成为其 Right 子节点，下方新增一条 h 高的空闲区域
func (p *GrowingPacker) growDown(w, h int) NodeID {
	old := *p.tree.node(p.root)
	strip := p.tree.newNode(0, old.Height, old.Width, h)
	p.root = p.tree.newUsed(0, 0, old.Width, old.Height+h, strip, p.root)
	return p.fitGrown(w, h)
}

// fitGrown 在生长后的新根上重新查找并拆分
func (p *GrowingPacker) fitGrown(w, h int) NodeID {
	id := p.tree.findNode(p.root, w, h)
	if id == NoNode {
		return NoNode
	}
	return p.tree.splitNode(id, w, h)
}

// Bounds 返回当前根节点的尺寸，尚未放置任何矩形时为 0x0
func (p *GrowingPacker) Bounds() Size {
	if p.root == NoNode {
		return Size{}
	}
	return p.tree.node(p.root).Size
}

// Used 计算当前空间利用率
// 参数:
//
//	current - true:以已放置矩形的最小包围尺寸计算 false:以当前根节点尺寸计算
func (p *GrowingPacker) Used(current bool) float64 {
	if current {
		return p.usedRate(p.Size())
	}
	return p.usedRate(p.Bounds())
}

// Reset 丢弃整棵树，下一次 Fit 会重新根据第一个矩形确定尺寸
func (p *GrowingPacker) Reset() {
	p.clear()
}
