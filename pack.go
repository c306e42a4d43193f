package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"treepack2d/rectpack"
)

var errUnplaceable = errors.New("sprite cannot be placed")

// atlasLayout 是一张图集的打包结果
type atlasLayout struct {
	size  rectpack.Size   // 图集图像尺寸（含边缘间距）
	rects []rectpack.Rect // 精灵所在区域，ID 为精灵下标
	used  float64         // 打包器报告的空间利用率
}

// newPacker 按配置创建打包器，固定模式下扣除边缘间距
func newPacker(cfg packConfig) (rectpack.Fitter, error) {
	bounds := rectpack.PaddedBounds(cfg.width, cfg.height, cfg.padding)
	return rectpack.New(cfg.mode, bounds.Width, bounds.Height)
}

// packSprites 把所有尺寸打包到一张或多张图集中。
// 当前图集放不下的尺寸按原有顺序转入下一张图集；
// 如果一张空图集连一个尺寸都放不下，返回 errUnplaceable。
func packSprites(sizes []rectpack.Size, cfg packConfig, powerOfTwo bool, logger *log.Logger) ([]atlasLayout, error) {
	pending := rectpack.Sorted(sizes, cfg.sort)
	var layouts []atlasLayout
	for len(pending) > 0 {
		packer, err := newPacker(cfg)
		if err != nil {
			return nil, err
		}
		padded := make([]rectpack.Size, len(pending))
		for i, size := range pending {
			padded[i] = rectpack.PadSize(size, cfg.padding)
		}

		var (
			layout atlasLayout
			rest   []rectpack.Size
		)
		for i, p := range packer.Fit(padded...) {
			if !p.Fitted() {
				rest = append(rest, pending[i])
				continue
			}
			layout.rects = append(layout.rects, rectpack.UnpadRect(p.Rect, cfg.padding))
		}
		if len(layout.rects) == 0 {
			first := pending[0]
			return nil, fmt.Errorf("%w: #%d %s into %s atlas %s",
				errUnplaceable, first.ID, first.String(), cfg.mode, packer.Bounds().String())
		}

		layout.size = atlasSize(packer.Size(), cfg.padding, powerOfTwo)
		layout.used = packer.Used(true)
		logger.Debug("atlas packed",
			"index", len(layouts),
			"size", layout.size.String(),
			"bounds", packer.Bounds().String(),
			"placed", len(layout.rects),
			"overflow", len(rest),
			"free", len(packer.FreeRects()))
		layouts = append(layouts, layout)
		pending = rest
	}
	return layouts, nil
}

// atlasSize 返回图集图像尺寸：打包内容加上右下边缘的间距，可选取2的幂
func atlasSize(content rectpack.Size, padding int, powerOfTwo bool) rectpack.Size {
	size := content
	if padding > 0 {
		size.Width += padding
		size.Height += padding
	}
	if powerOfTwo {
		size.Width = nextPowerOfTwo(size.Width)
		size.Height = nextPowerOfTwo(size.Height)
	}
	return size
}
