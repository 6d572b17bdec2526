package models

import (
	"gorm.io/datatypes"
)

// 建筑物记录表：瓦片包围盒几何 + 高度信息
type Building struct {
	ID             string         `gorm:"primary_key;type:varchar(64)"`
	Name           string         `gorm:"type:varchar(255)"`
	TileUrl        *string        `gorm:"type:text"`
	BoundingVolume string         `gorm:"type:geometry(GeometryZ,4978)"`
	Refine         string         `gorm:"type:varchar(32)"`
	Properties     datatypes.JSON `gorm:"type:jsonb"`
	Height         *float64       `gorm:"type:numeric"`
}

func (Building) TableName() string {
	return "dk_buildings"
}
