package rectpack

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// SortFunc 定义矩形尺寸比较函数的原型
// 返回值:
//
//	-1: a 排在 b 之前
//	 0: a == b
//	 1: a 排在 b 之后
//
// 打包器本身从不排序，排序由调用方在 Fit 之前完成。
type SortFunc func(a, b Size) int

// ErrUnknownSort 表示无法识别的排序方式名称
var ErrUnknownSort = errors.New("unknown sort method")

// SortArea 按矩形面积降序排序(从大到小)
func SortArea(a, b Size) int {
	return cmp.Compare(b.Area(), a.Area())
}

// SortPerimeter 按矩形周长降序排序(从大到小)
func SortPerimeter(a, b Size) int {
	return cmp.Compare(b.Perimeter(), a.Perimeter())
}

// SortDiff 按矩形宽高差降序排序(从大到小)
func SortDiff(a, b Size) int {
	return cmp.Compare(abs(b.Width-b.Height), abs(a.Width-a.Height))
}

// SortMinSide 按矩形最短边降序排序(从大到小)
func SortMinSide(a, b Size) int {
	return cmp.Compare(b.MinSide(), a.MinSide())
}

// SortMaxSide 按矩形最长边降序排序(从大到小)，对两种打包器通常效果最好
func SortMaxSide(a, b Size) int {
	return cmp.Compare(b.MaxSide(), a.MaxSide())
}

// SortHeight 按矩形高度降序排序(从大到小)
func SortHeight(a, b Size) int {
	return cmp.Compare(b.Height, a.Height)
}

// SortWidth 按矩形宽度降序排序(从大到小)
func SortWidth(a, b Size) int {
	return cmp.Compare(b.Width, a.Width)
}

// SortRatio 按矩形宽高比降序排序(从大到小)
func SortRatio(a, b Size) int {
	return cmp.Compare(b.Ratio(), a.Ratio())
}

// ParseSort 根据名称返回排序函数。"none" 和空字符串返回 nil，表示保持输入顺序。
func ParseSort(name string) (SortFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return nil, nil
	case "area":
		return SortArea, nil
	case "perimeter":
		return SortPerimeter, nil
	case "diff":
		return SortDiff, nil
	case "minside":
		return SortMinSide, nil
	case "maxside":
		return SortMaxSide, nil
	case "height":
		return SortHeight, nil
	case "width":
		return SortWidth, nil
	case "ratio":
		return SortRatio, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSort, name)
}

// Sorted 返回按 compare 稳定排序后的副本，compare 为 nil 时只复制。
func Sorted(sizes []Size, compare SortFunc) []Size {
	sorted := slices.Clone(sizes)
	if compare != nil {
		slices.SortStableFunc(sorted, compare)
	}
	return sorted
}
