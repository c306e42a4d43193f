package rectpack

import (
	"errors"
	"fmt"
)

// DefaultSize 定义了固定打包器的默认宽度/高度值，
// 基于现代GPU的最大纹理尺寸。
const DefaultSize = 4096

// ErrInvalidSize 表示打包区域的宽度或高度不大于0
var ErrInvalidSize = errors.New("width and height must be greater than 0")

// Packer 是固定尺寸的二叉树打包器。
//
// 根节点在构造时覆盖整个 width x height 区域，每个矩形被放入按树顺序找到的第一个
// 足够大的空闲叶子，随后该叶子被拆分为下方和右侧两块空闲区域。
// 打包器不是并发安全的，每个实例只能由一个 goroutine 使用。
type Packer struct {
	algorithmBase
	width, height int
}

// NewPacker 创建并初始化一个固定尺寸的打包器
// 参数:
//
//	width - 打包区域的宽度(必须大于0)
//	height - 打包区域的高度(必须大于0)
//
// 返回:
//
//	*Packer - 初始化成功的打包器实例
//	error - 宽度或高度小于等于0时返回 ErrInvalidSize
func NewPacker(width, height int) (*Packer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (given %vx%v)", ErrInvalidSize, width, height)
	}
	p := &Packer{width: width, height: height}
	p.Reset()
	return p, nil
}

// NewDefaultPacker 创建 DefaultSize x DefaultSize 的打包器
func NewDefaultPacker() *Packer {
	packer, _ := NewPacker(DefaultSize, DefaultSize)
	return packer
}

// Fit 按输入顺序放置矩形，返回与输入下标一一对应的结果。
//
// 单次遍历，不回溯也不重排。放不下的矩形保持未放置状态，这不是错误。
// 多次调用会继续使用剩余空间。
func (p *Packer) Fit(sizes ...Size) []Placement {
	result := make([]Placement, len(sizes))
	for i, size := range sizes {
		result[i] = p.fitOne(size)
	}
	return result
}

func (p *Packer) fitOne(size Size) Placement {
	if !size.Valid() {
		return unplaced(size)
	}
	id := p.tree.findNode(p.root, size.Width, size.Height)
	if id == NoNode {
		return unplaced(size)
	}
	return p.place(size, p.tree.splitNode(id, size.Width, size.Height))
}

// Bounds 返回构造时指定的打包区域尺寸
func (p *Packer) Bounds() Size {
	return NewSize(p.width, p.height)
}

// Used 计算当前空间利用率
// 参数:
//
//	current - true:以已放置矩形的最小包围尺寸计算 false:以整个打包区域计算
func (p *Packer) Used(current bool) float64 {
	if current {
		return p.usedRate(p.Size())
	}
	return p.usedRate(p.Bounds())
}

// Reset 清除所有已放置的矩形，恢复为一整块空闲区域
func (p *Packer) Reset() {
	p.clear()
	p.root = p.tree.newNode(0, 0, p.width, p.height)
}
