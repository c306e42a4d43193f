package rectpack

// Fitter 是固定尺寸打包器和自增长打包器的公共接口
type Fitter interface {
	// 按输入顺序放置矩形，返回与输入下标一一对应的结果。
	// 无法放置的矩形对应的结果 Fitted() 为 false。
	Fit(sizes ...Size) []Placement

	// 返回打包区域当前的尺寸。固定打包器为构造时的尺寸，自增长打包器为当前根节点的尺寸。
	Bounds() Size

	// 返回容纳所有已放置矩形所需的最小尺寸。
	Size() Size

	// 返回已放置的矩形列表，顺序与放置顺序一致。
	Rects() []Rect

	// 计算使用率，返回值在0.0（空）到1.0（完美利用）之间。
	// current 为 true 时以 Size() 计算，否则以 Bounds() 计算。
	Used(current bool) float64

	// 返回剩余的空闲区域。
	FreeRects() []Rect

	// 重置到初始状态。
	Reset()
}

var (
	_ Fitter = (*Packer)(nil)
	_ Fitter = (*GrowingPacker)(nil)
)

// Placement 是单个输入矩形的打包结果。
// Node 是吸收该矩形的树节点的句柄（不拥有节点），Rect 为左上角坐标加上调用方给出的原始尺寸。
type Placement struct {
	Rect
	Node NodeID
}

// Fitted 判断矩形是否已被放置
func (p Placement) Fitted() bool {
	return p.Node != NoNode
}

// unplaced 构造一个未放置的结果，保留原始尺寸
func unplaced(size Size) Placement {
	return Placement{Rect: Rect{Size: size}, Node: NoNode}
}

// algorithmBase 记录两种打包器共用的放置状态
type algorithmBase struct {
	tree     tree
	root     NodeID
	packed   []Rect
	usedArea int
}

// place 把 size 记录为放置在节点 id 上，并返回结果
func (p *algorithmBase) place(size Size, id NodeID) Placement {
	n := p.tree.node(id)
	rect := Rect{Point: n.Point, Size: size}
	p.packed = append(p.packed, rect)
	p.usedArea += size.Area()
	return Placement{Rect: rect, Node: id}
}

// Size 返回容纳所有已放置矩形所需的最小尺寸
func (p *algorithmBase) Size() Size {
	var size Size
	for _, rect := range p.packed {
		size.Width = max(size.Width, rect.Right())
		size.Height = max(size.Height, rect.Bottom())
	}
	return size
}

// Rects 返回已放置的矩形列表(由内部管理，如需修改请复制)
func (p *algorithmBase) Rects() []Rect {
	return p.packed
}

// UsedArea 返回已放置矩形的总面积
func (p *algorithmBase) UsedArea() int {
	return p.usedArea
}

// Node 返回句柄对应节点的副本。句柄无效时 ok 为 false。
func (p *algorithmBase) Node(id NodeID) (node Node, ok bool) {
	if id < 0 || int(id) >= len(p.tree.nodes) {
		return Node{}, false
	}
	return p.tree.nodes[id], true
}

// Root 返回根节点句柄，自增长打包器在首次放置之前返回 NoNode
func (p *algorithmBase) Root() NodeID {
	return p.root
}

// FreeRects 按 Right 优先顺序返回所有面积大于0的空闲区域
func (p *algorithmBase) FreeRects() []Rect {
	return p.tree.freeRects(p.root)
}

// usedRate 计算已用面积与 size 面积的比值
func (p *algorithmBase) usedRate(size Size) float64 {
	area := size.Area()
	if area <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(area)
}

func (p *algorithmBase) clear() {
	p.tree.reset()
	p.root = NoNode
	p.packed = p.packed[:0]
	p.usedArea = 0
}
