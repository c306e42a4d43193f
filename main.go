package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "treepack",
		Short:         "treepack 使用二叉树装箱算法生成精灵图集",
		Version:       VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")

	root.AddCommand(newPackCmd())
	root.AddCommand(newUnpackCmd())
	return root
}

func newPackCmd() *cobra.Command {
	opts := defaultOptions()
	var configPath string
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "把输入目录中的图片打包为图集",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := loadOptions(configPath, opts, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			_, err = runPack(cmd.Context(), merged)
			return err
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML 配置文件")
	bindPackFlags(cmd, &opts)
	return cmd
}

func newUnpackCmd() *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "unpack <atlases.json>",
		Short: "把图集还原为单独的图片",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st := newStage(loggerFromContext(ctx))
			n, err := unpack(ctx, args[0], outputDir)
			if err != nil {
				return err
			}
			st.done("图集解包完成", "sprites", n, "output", outputDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", "unpacked", "输出目录")
	return cmd
}

// runPack 执行完整的打包流程，返回写出的图集图片路径
func runPack(ctx context.Context, opts Options) ([]string, error) {
	logger := loggerFromContext(ctx)
	cfg, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	st := newStage(logger)
	paths, err := findImages(opts.InputDir, opts.NaturalOrder)
	if err != nil {
		return nil, err
	}
	sprites, err := loadSprites(ctx, paths, opts.Trim, opts.Threshold)
	if err != nil {
		return nil, err
	}
	st.done("图片预处理完成", "images", len(sprites), "trim", opts.Trim)

	st = newStage(logger)
	layouts, err := packSprites(spriteSizes(sprites), cfg, opts.PowerOfTwo, logger)
	if err != nil {
		return nil, err
	}
	for i, l := range layouts {
		logger.Info("图集", "index", i, "size", l.size.String(), "sprites", len(l.rects), "used", fmt.Sprintf("%.2f%%", l.used*100))
	}
	st.done("打包完成", "mode", cfg.mode, "atlases", len(layouts))

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}

	st = newStage(logger)
	atlasImagePaths := make([]string, len(layouts))
	mappings := make([]map[string]SpriteInfo, len(layouts))
	for i, layout := range layouts {
		var img *image.NRGBA
		img, mappings[i], err = createAtlasImage(ctx, layout, sprites)
		if err != nil {
			return nil, fmt.Errorf("生成图集 #%d 失败: %w", i, err)
		}
		atlasImagePaths[i] = filepath.Join(opts.OutputDir, atlasImageName(i, len(layouts)))
		if err := imaging.Save(img, atlasImagePaths[i]); err != nil {
			return nil, fmt.Errorf("保存图集 #%d 失败: %w", i, err)
		}
	}
	st.done("图集写入完成", "output", opts.OutputDir)

	jsonPath := filepath.Join(opts.OutputDir, "atlases.json")
	if err := writeJSON(jsonPath, newMultiAtlasData(cfg.mode, layouts, mappings, atlasImagePaths)); err != nil {
		return nil, fmt.Errorf("生成JSON元数据失败: %w", err)
	}
	logger.Info("图集元数据", "path", jsonPath)
	return atlasImagePaths, nil
}
