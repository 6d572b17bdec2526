// tileset/tileset.go
// 3dtiles 瓦片集的内存模型与加载
package tileset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	RefineAdd     = "ADD"
	RefineReplace = "REPLACE"
)

// Content 瓦片内容引用，新版规范用 uri，旧版用 url
type Content struct {
	Uri string `json:"uri"`
	Url string `json:"url"`
}

func (c *Content) URI() string {
	if c == nil {
		return ""
	}
	if c.Uri != "" {
		return c.Uri
	}
	return c.Url
}

type BoundingVolume struct {
	Box    []float64 `json:"box"`
	Region []float64 `json:"region"`
	Sphere []float64 `json:"sphere"`
}

// Tile 单个瓦片节点，加载后不再修改
type Tile struct {
	Transform      []float64       `json:"transform"`
	BoundingVolume *BoundingVolume `json:"boundingVolume"`
	GeometricError float64         `json:"geometricError"`
	Refine         string          `json:"refine"`
	Content        *Content        `json:"content"`
	Children       []*Tile         `json:"children"`
}

func (t *Tile) IsLeaf() bool {
	return len(t.Children) == 0
}

func (t *Tile) ContentURI() string {
	return t.Content.URI()
}

// RefineOrDefault 瓦片未显式指定 refine 时继承父节点的取值
func (t *Tile) RefineOrDefault(parent string) string {
	refine := strings.ToUpper(strings.TrimSpace(t.Refine))
	if refine == RefineAdd || refine == RefineReplace {
		return refine
	}
	if parent != "" {
		return parent
	}
	return RefineReplace
}

type Tileset struct {
	Asset          map[string]interface{} `json:"asset"`
	GeometricError float64                `json:"geometricError"`
	Root           *Tile                  `json:"root"`
}

// LoadTileset 加载单个 tileset.json，返回瓦片集对象与其所在目录的绝对路径
func LoadTileset(path string) (*Tileset, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("读取瓦片集失败: %w", err)
	}

	var ts Tileset
	if err := json.Unmarshal(data, &ts); err != nil {
		return nil, "", fmt.Errorf("解析瓦片集失败: %w", err)
	}
	if ts.Root == nil {
		return nil, "", fmt.Errorf("瓦片集缺少 root 节点: %s", path)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		dir = filepath.Dir(path)
	}
	return &ts, dir, nil
}
