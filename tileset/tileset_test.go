package tileset

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleTileset = `{
  "asset": {"version": "1.0"},
  "geometricError": 500,
  "root": {
    "transform": [1,0,0,0, 0,1,0,0, 0,0,1,0, 10,20,30,1],
    "boundingVolume": {"box": [0,0,0, 100,0,0, 0,100,0, 0,0,10]},
    "geometricError": 100,
    "refine": "ADD",
    "children": [
      {
        "boundingVolume": {"box": [0,0,0, 10,0,0, 0,10,0, 0,0,5]},
        "geometricError": 0,
        "content": {"uri": "Data/b1.b3dm"}
      },
      {
        "boundingVolume": {"box": [50,0,0, 10,0,0, 0,10,0, 0,0,5]},
        "geometricError": 0,
        "content": {"url": "Data/b2.b3dm"}
      }
    ]
  }
}`

func writeTileset(t *testing.T, dir string, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "tileset.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTileset(t *testing.T) {
	path := writeTileset(t, t.TempDir(), sampleTileset)

	ts, dir, err := LoadTileset(path)
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Dir(path) {
		t.Fatalf("返回目录错误: %s", dir)
	}

	root := ts.Root
	if len(root.Transform) != 16 {
		t.Fatalf("根瓦片变换应有16个元素, 实际为 %d", len(root.Transform))
	}
	if len(root.BoundingVolume.Box) != 12 {
		t.Fatalf("包围盒应有12个数值, 实际为 %d", len(root.BoundingVolume.Box))
	}
	if root.IsLeaf() {
		t.Fatal("根瓦片有子节点，不应判定为叶子")
	}
	if len(root.Children) != 2 {
		t.Fatalf("应解析出2个子瓦片, 实际为 %d", len(root.Children))
	}

	c1, c2 := root.Children[0], root.Children[1]
	if !c1.IsLeaf() || !c2.IsLeaf() {
		t.Fatal("子瓦片应判定为叶子")
	}
	if c1.ContentURI() != "Data/b1.b3dm" {
		t.Fatalf("uri字段解析错误: %s", c1.ContentURI())
	}
	// 旧版规范的 url 字段同样要能读取
	if c2.ContentURI() != "Data/b2.b3dm" {
		t.Fatalf("url字段解析错误: %s", c2.ContentURI())
	}
}

func TestLoadTilesetMissingRoot(t *testing.T) {
	path := writeTileset(t, t.TempDir(), `{"asset": {"version": "1.0"}}`)
	if _, _, err := LoadTileset(path); err == nil {
		t.Fatal("缺少root节点应报错")
	}
}

func TestRefineOrDefault(t *testing.T) {
	cases := []struct {
		refine string
		parent string
		want   string
	}{
		{"ADD", "", "ADD"},
		{"replace", "ADD", "REPLACE"},
		{"", "ADD", "ADD"},
		{"", "", "REPLACE"},
		{"bogus", "ADD", "ADD"},
	}
	for _, tc := range cases {
		tile := &Tile{Refine: tc.refine}
		if got := tile.RefineOrDefault(tc.parent); got != tc.want {
			t.Fatalf("refine=%q parent=%q: 期望 %s, 实际 %s", tc.refine, tc.parent, tc.want, got)
		}
	}
}

func TestFindAllTilesetFiles(t *testing.T) {
	root := t.TempDir()
	writeTileset(t, root, sampleTileset)
	writeTileset(t, filepath.Join(root, "area1"), sampleTileset)
	writeTileset(t, filepath.Join(root, "area1", "sub"), sampleTileset)
	if err := os.WriteFile(filepath.Join(root, "other.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := FindAllTilesetFiles(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("应找到3个tileset.json, 实际为 %d: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Base(f) != "tileset.json" {
			t.Fatalf("非tileset.json文件混入结果: %s", f)
		}
	}
}
