package routers

import (
	"github.com/GrainArc/TileCollision/config"
	"github.com/GrainArc/TileCollision/views"
	"github.com/gin-gonic/gin"
)

func GeoRouters(r *gin.Engine) {
	BuildingController := &views.BuildingController{}
	buildingRouter := r.Group("/building")
	{
		buildingRouter.POST("/InitData", BuildingController.InitData)
		buildingRouter.GET("/Collision", BuildingController.Collision)
	}
	Tile3DRouter := r.Group("/tiles")
	{
		Tile3DRouter.Static("/Tile", config.Tiles3d)
	}
}
