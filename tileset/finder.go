package tileset

import (
	"os"
	"path/filepath"
)

// FindAllTilesetFiles 递归查找根目录及其所有子目录中的 tileset.json 文件
func FindAllTilesetFiles(rootDir string) ([]string, error) {
	var tilesetFiles = make([]string, 0)

	err := filepath.Walk(
		rootDir,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && info.Name() == "tileset.json" {
				abs, err := filepath.Abs(path)
				if err != nil {
					abs = path
				}
				tilesetFiles = append(tilesetFiles, abs)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return tilesetFiles, nil
}
