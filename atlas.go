package main

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"treepack2d/rectpack"
)

const VERSION = "0.2.0"

// SpriteInfo 存储精灵图的信息
type SpriteInfo struct {
	Filename   string  `json:"filename"`
	Region     jsonBox `json:"region"`     // 精灵在图集中的区域
	SourceSize jsonDim `json:"sourceSize"` // 原始图片尺寸
	SourceRect jsonBox `json:"sourceRect"` // 裁切后保留的区域在原图中的位置
	Trimmed    bool    `json:"trimmed"`
}

type jsonBox struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonDim struct {
	W int `json:"w"`
	H int `json:"h"`
}

func boxOf(r image.Rectangle) jsonBox {
	return jsonBox{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

func newSpriteInfo(s sprite, region rectpack.Rect) SpriteInfo {
	return SpriteInfo{
		Filename:   filepath.Base(s.path),
		Region:     jsonBox{X: region.X, Y: region.Y, W: region.Width, H: region.Height},
		SourceSize: jsonDim{W: s.full.Dx(), H: s.full.Dy()},
		SourceRect: boxOf(s.trim.Sub(s.full.Min)),
		Trimmed:    s.Trimmed(),
	}
}

// AtlasMeta 描述一次打包
type AtlasMeta struct {
	Version   string        `json:"version"`
	BuildID   string        `json:"buildId"`
	Timestamp string        `json:"timestamp"`
	Mode      rectpack.Mode `json:"mode"`
}

// AtlasData 存储单个图集的信息
type AtlasData struct {
	AtlasName  string                `json:"atlasName"`
	SpriteList map[string]SpriteInfo `json:"spriteList"`
	TotalSize  jsonDim               `json:"totalSize"`
}

// MultiAtlasData 存储多个图集的信息
type MultiAtlasData struct {
	Meta    AtlasMeta   `json:"meta"`
	Atlases []AtlasData `json:"atlases"`
}

// newMultiAtlasData 生成包含多个图集信息的元数据
func newMultiAtlasData(mode rectpack.Mode, layouts []atlasLayout, mappings []map[string]SpriteInfo, atlasImagePaths []string) MultiAtlasData {
	data := MultiAtlasData{
		Meta: AtlasMeta{
			Version:   VERSION,
			BuildID:   uuid.NewString(),
			Timestamp: time.Now().Format("2006-01-02 15:04:05"),
			Mode:      mode,
		},
		Atlases: make([]AtlasData, len(mappings)),
	}
	for i, mapping := range mappings {
		data.Atlases[i] = AtlasData{
			AtlasName:  filepath.Base(atlasImagePaths[i]),
			SpriteList: mapping,
			TotalSize:  jsonDim{W: layouts[i].size.Width, H: layouts[i].size.Height},
		}
	}
	return data
}

// writeJSON 将元数据编码为JSON并写入文件
func writeJSON(path string, data MultiAtlasData) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0644)
}

// readJSON 读取并解析图集元数据
func readJSON(path string) (MultiAtlasData, error) {
	var data MultiAtlasData
	jsonData, err := os.ReadFile(path)
	if err != nil {
		return data, err
	}
	err = json.Unmarshal(jsonData, &data)
	return data, err
}

// atlasImageName 单图集时为 atlas.png，多图集时为 atlas_N.png
func atlasImageName(index, count int) string {
	if count == 1 {
		return "atlas.png"
	}
	return fmt.Sprintf("atlas_%d.png", index)
}
