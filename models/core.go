package models

import (
	"fmt"
	"log"

	"github.com/GrainArc/TileCollision/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

func makeGeomIndex(DB *gorm.DB) {
	// 查询索引是否已存在
	var exists bool
	checkIndexSql := `
		SELECT COUNT(*) > 0
		FROM pg_indexes
		WHERE indexname = 'idx_buildings_geom_3d'
	`

	err := DB.Raw(checkIndexSql).Scan(&exists).Error
	if err != nil {
		fmt.Println("Error checking index existence:", err.Error())
		return
	}

	if !exists {
		// 如果索引不存在，则创建空间索引
		createIndexSql := `CREATE INDEX idx_buildings_geom_3d ON dk_buildings USING GIST (bounding_volume);`
		err := DB.Exec(createIndexSql).Error
		if err != nil {
			fmt.Println("Error creating index:", err.Error())
		} else {
			fmt.Println("成功创建空间索引")
		}
	}
}

func InitDB() {
	var err error
	DB, err = gorm.Open(postgres.Open(config.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 设置命名策略
	DB.NamingStrategy = schema.NamingStrategy{
		SingularTable: true,
	}

	if err := DB.AutoMigrate(&Building{}); err != nil {
		log.Printf("数据库迁移失败: %v", err)
	}

	makeGeomIndex(DB)
	log.Println("数据库初始化成功")
}

func GetDB() *gorm.DB {
	return DB
}
