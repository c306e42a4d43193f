package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math/bits"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/maruel/natural"
	"golang.org/x/sync/errgroup"

	"treepack2d/rectpack"
)

var errNoImages = errors.New("no images found")

// imageExts 可以作为精灵输入的图片扩展名
var imageExts = []string{".png", ".jpg", ".jpeg"}

// sprite 描述一张输入图片
type sprite struct {
	path string
	full image.Rectangle // 原始图片边界
	trim image.Rectangle // 参与打包的区域，未裁切时等于 full
}

// Trimmed 判断是否裁掉了透明边缘
func (s sprite) Trimmed() bool {
	return s.trim != s.full
}

// GetImageBBox 检测图像的透明区域，返回不透明像素的边界。
// 图像完全透明时返回原始边界。
func GetImageBBox(img image.Image, alphaThreshold uint8) image.Rectangle {
	bounds := img.Bounds()
	if bounds.Empty() {
		return image.Rectangle{}
	}
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y
	found := false
	mark := func(x, y int) {
		found = true
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x)
		maxY = max(maxY, y)
	}
	switch src := img.(type) {
	case *image.NRGBA:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := src.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if src.Pix[i+3] > alphaThreshold { // 直接访问alpha通道
					mark(x, y)
				}
				i += 4
			}
		}
	case *image.RGBA:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := src.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if src.Pix[i+3] > alphaThreshold {
					mark(x, y)
				}
				i += 4
			}
		}
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				_, _, _, a := img.At(x, y).RGBA()
				if uint8(a>>8) > alphaThreshold { // RGBA()返回的是16bit
					mark(x, y)
				}
			}
		}
	}
	if !found {
		return bounds
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// findImages 列出目录中的图片文件
func findImages(dir string, naturalOrder bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("读取输入目录 %s 失败: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if slices.Contains(imageExts, strings.ToLower(filepath.Ext(e.Name()))) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", errNoImages, dir)
	}
	if naturalOrder {
		slices.SortFunc(paths, func(a, b string) int {
			switch {
			case natural.Less(a, b):
				return -1
			case natural.Less(b, a):
				return 1
			}
			return 0
		})
	}
	return paths, nil
}

// loadSprites 并行读取图片尺寸，开启裁切时完全解码以分析透明区域
func loadSprites(ctx context.Context, paths []string, trim bool, threshold uint8) ([]sprite, error) {
	sprites := make([]sprite, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := loadSprite(path, trim, threshold)
			if err != nil {
				return err
			}
			sprites[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sprites, nil
}

func loadSprite(path string, trim bool, threshold uint8) (sprite, error) {
	if !trim {
		// 只解码图片头部以获取尺寸信息
		file, err := os.Open(path)
		if err != nil {
			return sprite{}, err
		}
		defer file.Close()
		cfg, _, err := image.DecodeConfig(file)
		if err != nil {
			return sprite{}, fmt.Errorf("无法解码图片 %s: %w", path, err)
		}
		full := image.Rect(0, 0, cfg.Width, cfg.Height)
		return sprite{path: path, full: full, trim: full}, nil
	}
	src, err := imaging.Open(path)
	if err != nil {
		return sprite{}, fmt.Errorf("无法解码图片 %s: %w", path, err)
	}
	return sprite{path: path, full: src.Bounds(), trim: GetImageBBox(src, threshold)}, nil
}

// spriteSizes 返回每个精灵参与打包的尺寸，ID 为精灵下标
func spriteSizes(sprites []sprite) []rectpack.Size {
	sizes := make([]rectpack.Size, len(sprites))
	for i, s := range sprites {
		sizes[i] = rectpack.NewSizeID(i, s.trim.Dx(), s.trim.Dy())
	}
	return sizes
}

// nextPowerOfTwo 返回不小于 n 的最小的2的幂
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// createAtlasImage 按布局把精灵绘制到新的图集图像上
func createAtlasImage(ctx context.Context, layout atlasLayout, sprites []sprite) (*image.NRGBA, map[string]SpriteInfo, error) {
	dst := imaging.New(layout.size.Width, layout.size.Height, color.NRGBA{0, 0, 0, 0})
	mapping := make(map[string]SpriteInfo, len(layout.rects))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, r := range layout.rects {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := sprites[r.ID]
			src, err := imaging.Open(s.path)
			if err != nil {
				return fmt.Errorf("%s: %w", s.path, err)
			}
			sub := imaging.Crop(src, s.trim)
			info := newSpriteInfo(s, r)
			mu.Lock()
			blit(dst, sub, r.Point)
			mapping[info.Filename] = info
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return dst, mapping, nil
}

// blit 把 src 的像素按字节复制到 dst 的 at 位置，半透明像素保持原值
func blit(dst, src *image.NRGBA, at rectpack.Point) {
	b := src.Bounds()
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := dst.PixOffset(at.X, at.Y+y)
		copy(dst.Pix[di:di+rowLen], src.Pix[si:si+rowLen])
	}
}
