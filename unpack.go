package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// unpack 按图集元数据把精灵从图集中切出，写入 outputDir。
// 裁切过的精灵会恢复为原始尺寸，透明边缘补回原位。
func unpack(ctx context.Context, jsonPath, outputDir string) (int, error) {
	logger := loggerFromContext(ctx)

	data, err := readJSON(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("读取图集JSON文件失败: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("创建输出目录失败: %w", err)
	}

	count := 0
	atlasDir := filepath.Dir(jsonPath)
	for _, atlas := range data.Atlases {
		atlasImg, err := imaging.Open(filepath.Join(atlasDir, filepath.Base(atlas.AtlasName)))
		if err != nil {
			return count, fmt.Errorf("打开图集图片失败: %w", err)
		}
		logger.Debug("unpacking atlas", "atlas", atlas.AtlasName, "sprites", len(atlas.SpriteList))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.NumCPU())
		for name, info := range atlas.SpriteList {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				outputPath := filepath.Join(outputDir, filepath.Base(name))
				if err := imaging.Save(extractSprite(atlasImg, info), outputPath); err != nil {
					return fmt.Errorf("保存 %s 失败: %w", outputPath, err)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return count, err
		}
		count += len(atlas.SpriteList)
	}
	return count, nil
}

// extractSprite 从图集中切出一个精灵
func extractSprite(atlas image.Image, info SpriteInfo) *image.NRGBA {
	r := info.Region
	sub := imaging.Crop(atlas, image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H))
	if !info.Trimmed {
		return sub
	}
	full := imaging.New(info.SourceSize.W, info.SourceSize.H, color.NRGBA{0, 0, 0, 0})
	return imaging.Paste(full, sub, image.Pt(info.SourceRect.X, info.SourceRect.Y))
}
