package views

import (
	"net/http"
	"strconv"

	"github.com/GrainArc/TileCollision/Transformer"
	"github.com/GrainArc/TileCollision/models"
	"github.com/GrainArc/TileCollision/services"
	"github.com/gin-gonic/gin"
)

type BuildingController struct{}

// InitData 触发瓦片集解析并入库
func (bc *BuildingController) InitData(c *gin.Context) {
	svc := services.NewTilesetService(models.DB)
	report, err := svc.InitTileset()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
			"report":  report,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"report": report,
	})
}

// Collision 根据WGS84经纬高判断是否与建筑物碰撞
func (bc *BuildingController) Collision(c *gin.Context) {
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	alt, errAlt := strconv.ParseFloat(c.Query("alt"), 64)
	if errLon != nil || errLat != nil || errAlt != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "lon/lat/alt 参数缺失或格式错误",
		})
		return
	}

	// 转换为 ECEF 坐标后与库内几何同坐标系比较
	x, y, z := Transformer.Wgs84ToEcef(lon, lat, alt)

	svc := services.NewCollisionService(models.DB)
	hits, err := svc.CheckCollision(x, y, z)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"point":      gin.H{"x": x, "y": y, "z": z},
		"collisions": hits,
	})
}
