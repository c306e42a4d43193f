package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"treepack2d/rectpack"
)

var errInvalidOptions = errors.New("invalid options")

// Options 打包命令的全部配置，可以来自命令行参数或 TOML 配置文件
type Options struct {
	InputDir     string `toml:"input"`      // 输入目录
	OutputDir    string `toml:"output"`     // 输出目录
	Mode         string `toml:"mode"`       // 打包方式 (fixed, growing)
	AtlasWidth   int    `toml:"width"`      // 固定模式下图集宽度
	AtlasHeight  int    `toml:"height"`     // 固定模式下图集高度
	Sort         string `toml:"sort"`       // 打包前的排序方式
	NaturalOrder bool   `toml:"natural"`    // 是否按文件名自然排序
	Padding      int    `toml:"padding"`    // 精灵之间及图集边缘的间距
	Trim         bool   `toml:"trim"`       // 是否修剪透明部分
	Threshold    uint8  `toml:"threshold"`  // 透明度阈值
	PowerOfTwo   bool   `toml:"pow_of_two"` // 图集尺寸是否取2的幂
}

func defaultOptions() Options {
	return Options{
		InputDir:     "input",
		OutputDir:    "output",
		Mode:         rectpack.Growing.String(),
		AtlasWidth:   rectpack.DefaultSize,
		AtlasHeight:  rectpack.DefaultSize,
		Sort:         "maxside",
		NaturalOrder: true,
		Trim:         true,
	}
}

// packConfig 是校验后的打包参数
type packConfig struct {
	mode    rectpack.Mode
	sort    rectpack.SortFunc
	width   int
	height  int
	padding int
}

// resolve 校验配置并解析出打包参数
func (o *Options) resolve() (packConfig, error) {
	var cfg packConfig
	if o.InputDir == "" {
		return cfg, fmt.Errorf("%w: input directory is empty", errInvalidOptions)
	}
	if o.OutputDir == "" {
		return cfg, fmt.Errorf("%w: output directory is empty", errInvalidOptions)
	}
	if o.Padding < 0 {
		return cfg, fmt.Errorf("%w: padding must not be negative (given %d)", errInvalidOptions, o.Padding)
	}
	mode, err := rectpack.ParseMode(o.Mode)
	if err != nil {
		return cfg, err
	}
	sortFn, err := rectpack.ParseSort(o.Sort)
	if err != nil {
		return cfg, err
	}
	if mode == rectpack.Fixed {
		bounds := rectpack.PaddedBounds(o.AtlasWidth, o.AtlasHeight, o.Padding)
		if !bounds.Valid() {
			return cfg, fmt.Errorf("%w: %dx%d atlas leaves no room with padding %d: %w",
				errInvalidOptions, o.AtlasWidth, o.AtlasHeight, o.Padding, rectpack.ErrInvalidSize)
		}
	}
	cfg = packConfig{
		mode:    mode,
		sort:    sortFn,
		width:   o.AtlasWidth,
		height:  o.AtlasHeight,
		padding: o.Padding,
	}
	return cfg, nil
}

// bindPackFlags 注册打包命令的参数，默认值取自 opts
func bindPackFlags(cmd *cobra.Command, opts *Options) {
	f := cmd.Flags()
	f.StringVarP(&opts.InputDir, "input", "i", opts.InputDir, "输入目录")
	f.StringVarP(&opts.OutputDir, "output", "o", opts.OutputDir, "输出目录")
	f.StringVarP(&opts.Mode, "mode", "m", opts.Mode, "打包方式 (fixed, growing)")
	f.IntVar(&opts.AtlasWidth, "width", opts.AtlasWidth, "固定模式下图集宽度")
	f.IntVar(&opts.AtlasHeight, "height", opts.AtlasHeight, "固定模式下图集高度")
	f.StringVar(&opts.Sort, "sort", opts.Sort, "排序方式 (none, area, perimeter, diff, minside, maxside, height, width, ratio)")
	f.BoolVar(&opts.NaturalOrder, "natural", opts.NaturalOrder, "按文件名自然排序")
	f.IntVarP(&opts.Padding, "padding", "p", opts.Padding, "间距")
	f.BoolVar(&opts.Trim, "trim", opts.Trim, "修剪透明部分")
	f.Uint8Var(&opts.Threshold, "threshold", opts.Threshold, "透明度阈值")
	f.BoolVar(&opts.PowerOfTwo, "pow-of-two", opts.PowerOfTwo, "图集尺寸取2的幂")
}

// flagSetters 把显式设置的命令行参数覆盖到从配置文件读取的值上
var flagSetters = map[string]func(dst, src *Options){
	"input":      func(dst, src *Options) { dst.InputDir = src.InputDir },
	"output":     func(dst, src *Options) { dst.OutputDir = src.OutputDir },
	"mode":       func(dst, src *Options) { dst.Mode = src.Mode },
	"width":      func(dst, src *Options) { dst.AtlasWidth = src.AtlasWidth },
	"height":     func(dst, src *Options) { dst.AtlasHeight = src.AtlasHeight },
	"sort":       func(dst, src *Options) { dst.Sort = src.Sort },
	"natural":    func(dst, src *Options) { dst.NaturalOrder = src.NaturalOrder },
	"padding":    func(dst, src *Options) { dst.Padding = src.Padding },
	"trim":       func(dst, src *Options) { dst.Trim = src.Trim },
	"threshold":  func(dst, src *Options) { dst.Threshold = src.Threshold },
	"pow-of-two": func(dst, src *Options) { dst.PowerOfTwo = src.PowerOfTwo },
}

// loadOptions 合并配置：默认值 < 配置文件 < 显式设置的命令行参数。
// flagged 是命令行解析后的值，changed 报告某个参数是否被显式设置。
func loadOptions(path string, flagged Options, changed func(name string) bool) (Options, error) {
	if path == "" {
		return flagged, nil
	}
	opts := defaultOptions()
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}
	for name, set := range flagSetters {
		if changed(name) {
			set(&opts, &flagged)
		}
	}
	return opts, nil
}
