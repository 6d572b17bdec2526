package main

import (
	"github.com/GrainArc/TileCollision/config"
	"github.com/GrainArc/TileCollision/models"
	"github.com/GrainArc/TileCollision/routers"
	"github.com/gin-gonic/gin"
)

func main() {
	models.InitDB()

	r := gin.Default()
	routers.GeoRouters(r)
	r.Run(config.MainRouter)
}
