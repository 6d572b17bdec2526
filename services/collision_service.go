// services/collision_service.go
package services

import (
	"fmt"
	"log"

	"github.com/GrainArc/TileCollision/methods"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"gorm.io/gorm"
)

// CollisionHit 单条碰撞结果
type CollisionHit struct {
	ID        string   `json:"id"`
	TileUrl   *string  `json:"tile_url"`
	SourceDir string   `json:"source_dir"`
	Height    *float64 `json:"height"`
	GroundZ   *float64 `json:"ground_z"`
}

type collisionCandidate struct {
	ID        string
	TileUrl   *string
	SourceDir string
	Height    float64
	GroundZ   float64
	GeomJson  []byte
}

type CollisionService struct {
	DB *gorm.DB
}

func NewCollisionService(db *gorm.DB) *CollisionService {
	return &CollisionService{DB: db}
}

// Collides 两段式碰撞判定：
// 1. 查询点的 (x, y) 是否落在底面二维投影内（边界算内）；
// 2. z 是否在 [ground_z, ground_z+height] 区间内（两端闭区间）。
// 这是点采样安全检测，不是精确的三维实体包含测试。
// ground_z 取底面环首个顶点的 z 值，底面环由盒底面投影而来，
// 旋转过的包围盒可能使其在世界坐标下不完全水平，此时取首点为近似值。
func Collides(footprint orb.Polygon, groundZ float64, height float64, x, y, z float64) bool {
	if len(footprint) == 0 {
		return false
	}
	if !planar.PolygonContains(footprint, orb.Point{x, y}) {
		return false
	}
	return z >= groundZ && z <= groundZ+height
}

// CheckCollision 判断 ECEF 点是否与建筑物碰撞，返回全部命中记录。
// 先用空间索引做包围盒粗筛，再在内存中做精确的两段式判定。
func (s *CollisionService) CheckCollision(x, y, z float64) ([]CollisionHit, error) {
	candidateSql := fmt.Sprintf(`
		SELECT
			id,
			tile_url,
			properties->>'tileset_dir' AS source_dir,
			height,
			ST_Z(ST_PointN(ST_ExteriorRing(bounding_volume), 1)) AS ground_z,
			ST_AsGeoJSON(ST_Force2D(bounding_volume)) AS geom_json
		FROM dk_buildings
		WHERE height IS NOT NULL
		  AND bounding_volume && ST_SetSRID(ST_MakePoint(?, ?), %d)
	`, methods.EcefSRID)

	var candidates []collisionCandidate
	if err := s.DB.Raw(candidateSql, x, y).Scan(&candidates).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", methods.ErrQueryFailure, err)
	}

	hits := make([]CollisionHit, 0)
	for _, cand := range candidates {
		geom, err := geojson.UnmarshalGeometry(cand.GeomJson)
		if err != nil {
			return nil, fmt.Errorf("%w: 记录%s几何解析失败: %v", methods.ErrQueryFailure, cand.ID, err)
		}
		footprint, ok := geom.Geometry().(orb.Polygon)
		if !ok {
			log.Printf("记录 %s 的几何不是多边形，已跳过", cand.ID)
			continue
		}

		if Collides(footprint, cand.GroundZ, cand.Height, x, y, z) {
			height := cand.Height
			groundZ := cand.GroundZ
			hits = append(hits, CollisionHit{
				ID:        cand.ID,
				TileUrl:   cand.TileUrl,
				SourceDir: cand.SourceDir,
				Height:    &height,
				GroundZ:   &groundZ,
			})
		}
	}

	// solid 模式入库的记录没有高度字段，用数据库的三维相交测试兜底
	solidHits, err := s.checkSolid(x, y, z)
	if err != nil {
		return nil, err
	}
	hits = append(hits, solidHits...)

	return hits, nil
}

func (s *CollisionService) checkSolid(x, y, z float64) ([]CollisionHit, error) {
	solidSql := fmt.Sprintf(`
		SELECT
			id,
			tile_url,
			properties->>'tileset_dir' AS source_dir
		FROM dk_buildings
		WHERE height IS NULL
		  AND ST_3DIntersects(bounding_volume, ST_SetSRID(ST_MakePoint(?, ?, ?), %d))
	`, methods.EcefSRID)

	var rows []collisionCandidate
	if err := s.DB.Raw(solidSql, x, y, z).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", methods.ErrQueryFailure, err)
	}

	hits := make([]CollisionHit, 0, len(rows))
	for _, row := range rows {
		hits = append(hits, CollisionHit{
			ID:        row.ID,
			TileUrl:   row.TileUrl,
			SourceDir: row.SourceDir,
		})
	}
	return hits, nil
}
