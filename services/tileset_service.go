// services/tileset_service.go
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/GrainArc/TileCollision/config"
	"github.com/GrainArc/TileCollision/methods"
	"github.com/GrainArc/TileCollision/tileset"
	"github.com/go-gl/mathgl/mgl64"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BuildingBound 一条待入库的瓦片包围盒记录
type BuildingBound struct {
	ID         string
	Name       string
	TileUrl    *string
	EWKT       string
	Refine     string
	Properties datatypes.JSON
	Height     *float64
}

// IngestReport 入库统计：访问数、入库数、各原因跳过数
type IngestReport struct {
	Visited   int            `json:"visited"`
	Persisted int            `json:"persisted"`
	Batches   int            `json:"batches"`
	Repaired  int            `json:"repaired"`
	Filtered  int            `json:"filtered"`
	Skipped   map[string]int `json:"skipped"`
}

func NewIngestReport() *IngestReport {
	return &IngestReport{Skipped: make(map[string]int)}
}

type TilesetService struct {
	DB        *gorm.DB
	Mode      methods.GeometryMode
	BatchSize int
	MaxDepth  int
}

func NewTilesetService(db *gorm.DB) *TilesetService {
	return &TilesetService{
		DB:        db,
		Mode:      methods.GeometryMode(config.GeometryMode),
		BatchSize: config.BatchSize,
		MaxDepth:  config.MaxDepth,
	}
}

// InitTileset 查找根目录下所有瓦片集，解析包围盒并批量入库
func (s *TilesetService) InitTileset() (*IngestReport, error) {
	report := NewIngestReport()

	files, err := tileset.FindAllTilesetFiles(config.Tiles3d)
	if err != nil {
		return report, fmt.Errorf("查找瓦片集失败: %w", err)
	}
	log.Printf("共找到 %d 个 tileset.json", len(files))

	var allBounds []BuildingBound
	for _, file := range files {
		ts, dir, err := tileset.LoadTileset(file)
		if err != nil {
			// 单个瓦片集解析失败不影响整次入库
			log.Printf("解析瓦片集失败 %s: %v", file, err)
			report.Skipped["load_error"]++
			continue
		}
		bounds := s.CollectTileBounds(ts.Root, dir, report)
		allBounds = append(allBounds, bounds...)
		log.Printf("从 %s 提取 %d 个瓦片", file, len(bounds))
	}

	if err := s.insertBuildings(allBounds, report); err != nil {
		return report, err
	}
	log.Printf("成功入库 %d 条建筑物数据", report.Persisted)
	return report, nil
}

// CollectTileBounds 从根瓦片开始递归收集包围盒记录
func (s *TilesetService) CollectTileBounds(root *tileset.Tile, tilesetDir string, report *IngestReport) []BuildingBound {
	maxDepth := s.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 256
	}
	return s.collectRecursive(root, tilesetDir, mgl64.Ident4(), tileset.RefineReplace, 0, maxDepth, report)
}

// collectRecursive 深度优先遍历。世界变换按值传递，兄弟子树之间
// 不共享任何状态。
func (s *TilesetService) collectRecursive(tile *tileset.Tile, tilesetDir string, parent mgl64.Mat4, parentRefine string, depth int, maxDepth int, report *IngestReport) []BuildingBound {
	if tile == nil {
		return nil
	}
	if depth > maxDepth {
		// 超过深度上限时放弃该子树
		report.Skipped["depth_limit"]++
		return nil
	}
	report.Visited++

	local, err := methods.LocalTransform(tile.Transform)
	if err != nil {
		report.Repaired++
		log.Printf("瓦片变换矩阵已修复: %v", err)
	}
	current := methods.ComposeTransform(parent, local)
	refine := tile.RefineOrDefault(parentRefine)

	bounds := make([]BuildingBound, 0)
	if b := s.buildBound(tile, tilesetDir, current, refine, report); b != nil {
		bounds = append(bounds, *b)
	}

	for _, child := range tile.Children {
		bounds = append(bounds, s.collectRecursive(child, tilesetDir, current, refine, depth+1, maxDepth, report)...)
	}
	return bounds
}

// buildBound 提取单个瓦片的包围盒记录，不满足条件或几何异常时返回 nil
func (s *TilesetService) buildBound(tile *tileset.Tile, tilesetDir string, m mgl64.Mat4, refine string, report *IngestReport) *BuildingBound {
	if tile.BoundingVolume == nil || len(tile.BoundingVolume.Box) == 0 {
		return nil
	}

	uri := tile.ContentURI()
	if s.Mode != methods.GeometryModeSolid {
		// footprint 模式只入库带 b3dm 内容的叶子瓦片
		if !tile.IsLeaf() || !strings.HasSuffix(strings.ToLower(uri), ".b3dm") {
			report.Filtered++
			return nil
		}
	}

	local, err := methods.BoxCorners(tile.BoundingVolume.Box)
	if err != nil {
		report.Skipped["degenerate_geometry"]++
		log.Printf("瓦片包围盒异常，已跳过: %v", err)
		return nil
	}

	world, degenerate := methods.ProjectCorners(m, local)
	if degenerate {
		log.Printf("瓦片变换齐次权重过小，已按下限 %g 代替", methods.MinHomogeneousW)
	}
	if !methods.DistinctCorners(world) {
		report.Skipped["degenerate_geometry"]++
		log.Printf("瓦片投影后存在重复角点，已跳过")
		return nil
	}

	var wkt string
	var height *float64
	if s.Mode == methods.GeometryModeSolid {
		wkt, err = methods.MultiPolygonZ(world)
	} else {
		wkt, err = methods.PolygonZFootprint(world)
		// 高度取局部角点的z向延展，必须在投影前计算
		h := methods.LocalHeight(local)
		height = &h
	}
	if err != nil {
		report.Skipped["synthesis_error"]++
		log.Printf("WKT生成失败，已跳过: %v", err)
		return nil
	}

	props, _ := json.Marshal(map[string]string{"tileset_dir": tilesetDir})
	var tileUrl *string
	if uri != "" {
		tileUrl = &uri
	}

	return &BuildingBound{
		ID:         methods.RecordID(uri),
		Name:       "Building",
		TileUrl:    tileUrl,
		EWKT:       methods.EWKT(wkt),
		Refine:     refine,
		Properties: datatypes.JSON(props),
		Height:     height,
	}
}

// insertBuildings 分批入库，每批一个事务。某一批失败只丢失该批，
// 之前已提交的批次保留，错误信息带上已提交条数。
func (s *TilesetService) insertBuildings(bounds []BuildingBound, report *IngestReport) error {
	bounds = dedupeByID(bounds)

	batchSize := s.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	for start := 0; start < len(bounds); start += batchSize {
		end := start + batchSize
		if end > len(bounds) {
			end = len(bounds)
		}
		chunk := bounds[start:end]

		err := s.DB.Transaction(func(tx *gorm.DB) error {
			sql, args := buildUpsertSQL(chunk)
			return tx.Exec(sql, args...).Error
		})
		if err != nil {
			return fmt.Errorf("%w: 已提交%d条记录: %v", methods.ErrPersistenceFailure, report.Persisted, err)
		}
		report.Batches++
		report.Persisted += len(chunk)
	}
	return nil
}

// dedupeByID 同一批数据内按ID去重，保留后出现的记录
func dedupeByID(bounds []BuildingBound) []BuildingBound {
	index := make(map[string]int, len(bounds))
	out := make([]BuildingBound, 0, len(bounds))
	for _, b := range bounds {
		if i, ok := index[b.ID]; ok {
			out[i] = b
			continue
		}
		index[b.ID] = len(out)
		out = append(out, b)
	}
	return out
}

func buildUpsertSQL(chunk []BuildingBound) (string, []interface{}) {
	values := make([]string, 0, len(chunk))
	args := make([]interface{}, 0, len(chunk)*7)
	for _, b := range chunk {
		values = append(values, "(?, ?, ?, ST_GeomFromEWKT(?), ?, ?, ?)")
		args = append(args, b.ID, b.Name, b.TileUrl, b.EWKT, b.Refine, b.Properties, b.Height)
	}

	sql := `
		INSERT INTO dk_buildings
		(id, name, tile_url, bounding_volume, refine, properties, height)
		VALUES ` + strings.Join(values, ", ") + `
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			tile_url = EXCLUDED.tile_url,
			bounding_volume = EXCLUDED.bounding_volume,
			refine = EXCLUDED.refine,
			properties = EXCLUDED.properties,
			height = EXCLUDED.height
	`
	return sql, args
}
