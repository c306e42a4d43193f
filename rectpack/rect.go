package rectpack

import "fmt"

// Point 描述了二维空间中的一个位置。
type Point struct {
	// X 是在水平 x 轴上的位置。
	X int `json:"x"`
	// Y 是在垂直 y 轴上的位置。
	Y int `json:"y"`
}

// NewPoint 初始化一个具有指定坐标的新点。
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// String 返回点的字符串表示形式。
func (p Point) String() string {
	return fmt.Sprintf("[%v, %v]", p.X, p.Y)
}

// Size 描述了待打包矩形的尺寸。
type Size struct {
	// Width 是在水平 x 轴上的尺寸。
	Width int `json:"width"`
	// Height 是在垂直 y 轴上的尺寸。
	Height int `json:"height"`
	// ID 是用户定义的标识符，打包算法不会读取它。
	ID int `json:"-"`
}

// NewSize 创建具有指定尺寸的新尺寸对象。
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// NewSizeID 创建具有指定尺寸和唯一标识符的新尺寸对象。
func NewSizeID(id, width, height int) Size {
	return Size{ID: id, Width: width, Height: height}
}

// Eq 判断两个尺寸是否相同。ID 字段被忽略。
func (sz Size) Eq(size Size) bool {
	return sz.Width == size.Width && sz.Height == size.Height
}

// Valid 判断宽高是否都大于0。无效尺寸永远不会被放置。
func (sz Size) Valid() bool {
	return sz.Width > 0 && sz.Height > 0
}

// String 返回尺寸的字符串表示形式。
func (sz Size) String() string {
	return fmt.Sprintf("[%v, %v]", sz.Width, sz.Height)
}

// Area 返回总面积（宽度 * 高度）。
func (sz Size) Area() int {
	return sz.Width * sz.Height
}

// Perimeter 返回所有边的总长度。
func (sz Size) Perimeter() int {
	return (sz.Width + sz.Height) << 1
}

// MaxSide 返回较大边的值。
func (sz Size) MaxSide() int {
	return max(sz.Width, sz.Height)
}

// MinSide 返回较小边的值。
func (sz Size) MinSide() int {
	return min(sz.Width, sz.Height)
}

// Ratio 计算宽度与高度之间的比率。
func (sz Size) Ratio() float64 {
	if sz.Height == 0 {
		return 0
	}
	return float64(sz.Width) / float64(sz.Height)
}

// Rect 描述了二维空间中的一个位置（左上角）和尺寸。
type Rect struct {
	Point
	Size
}

// NewRect 初始化一个使用指定点和尺寸值的新矩形。
func NewRect(x, y, w, h int) Rect {
	return Rect{
		Point: Point{X: x, Y: y},
		Size:  Size{Width: w, Height: h},
	}
}

// Eq 比较两个矩形的位置和尺寸是否相等。
func (r Rect) Eq(rect Rect) bool {
	return r.Point == rect.Point && r.Size.Eq(rect.Size)
}

// String 返回描述矩形的字符串。
func (r Rect) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", r.X, r.Y, r.Width, r.Height)
}

// Right 返回矩形右边缘在 x 轴上的坐标。
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom 返回矩形下边缘在 y 轴上的坐标。
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// ContainsRect 测试指定的矩形是否包含在当前接收者的边界内。
func (r Rect) ContainsRect(rect Rect) bool {
	return r.X <= rect.X &&
		rect.Right() <= r.Right() &&
		r.Y <= rect.Y &&
		rect.Bottom() <= r.Bottom()
}

// Contains 测试指定的坐标是否在接收者的边界内。
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.Right() && r.Y <= y && y < r.Bottom()
}

// IsEmpty 测试矩形的宽度或高度是否小于1。
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects 测试接收者是否与指定的矩形有任何重叠。
func (r Rect) Intersects(rect Rect) bool {
	return rect.X < r.Right() &&
		r.X < rect.Right() &&
		rect.Y < r.Bottom() &&
		r.Y < rect.Bottom()
}

// Union 返回一个包含目标和自己的最小矩形
func (r Rect) Union(rect Rect) Rect {
	x1 := min(r.X, rect.X)
	x2 := max(r.Right(), rect.Right())
	y1 := min(r.Y, rect.Y)
	y2 := max(r.Bottom(), rect.Bottom())
	return NewRect(x1, y1, x2-x1, y2-y1)
}

// abs 返回整数的绝对值
func abs(x int) int {
	if x >= 0 {
		return x
	}
	return -x
}

// PadSize 在给定的尺寸上加上指定的间距，返回新的尺寸
//
//	size - 原始尺寸
//	padding - 要添加的间距大小，小于等于0时原样返回
func PadSize(size Size, padding int) Size {
	if padding <= 0 {
		return size
	}
	size.Width += padding
	size.Height += padding
	return size
}

// UnpadRect 把以 PadSize 尺寸放置得到的矩形还原为精灵实际占用的区域：
// 整体向右下平移一份间距，并去掉右侧和底部的间距。
// 打包区域因此需要在宽高上各预留一份间距，见 PaddedBounds。
//
//	rect - 使用 PadSize 后的尺寸放置得到的矩形
//	padding - 要移除的间距大小
func UnpadRect(rect Rect, padding int) Rect {
	if padding <= 0 {
		return rect
	}
	rect.X += padding
	rect.Y += padding
	rect.Width -= padding
	rect.Height -= padding
	return rect
}

// PaddedBounds 返回在 width x height 的图集中，扣除左上边缘间距后可用于打包的区域尺寸。
func PaddedBounds(width, height, padding int) Size {
	if padding <= 0 {
		return NewSize(width, height)
	}
	return NewSize(width-padding, height-padding)
}
