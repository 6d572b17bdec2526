package config

import (
	"encoding/xml"
	"fmt"
	"os"
)

var MainRouter string
var DSN string
var Tiles3d string
var Dbname string
var GeometryMode string
var BatchSize int
var MaxDepth int
var MainConfig Config

type Config struct {
	XMLName      xml.Name `xml:"config"`
	MainRouter   string   `xml:"MainRouter"`
	Dbname       string   `xml:"dbname"`
	Host         string   `xml:"host"`
	Port         string   `xml:"port"`
	Username     string   `xml:"user"`
	Password     string   `xml:"password"`
	Tiles3d      string   `xml:"tiles3d"`
	GeometryMode string   `xml:"GeometryMode"`
	BatchSize    int      `xml:"BatchSize"`
	MaxDepth     int      `xml:"MaxDepth"`
}

func init() {

	xmlFile, err := os.Open("config.xml")
	if err != nil {
		fmt.Println("Error  opening  file:", err)
		return
	}
	defer xmlFile.Close()

	xmlDecoder := xml.NewDecoder(xmlFile)
	err = xmlDecoder.Decode(&MainConfig)
	if err != nil {
		fmt.Println("Error  decoding  XML:", err)
		return
	}
	MainRouter = MainConfig.MainRouter
	Dbname = MainConfig.Dbname
	Tiles3d = MainConfig.Tiles3d
	GeometryMode = MainConfig.GeometryMode
	BatchSize = MainConfig.BatchSize
	MaxDepth = MainConfig.MaxDepth

	// 未配置时使用默认值
	if GeometryMode == "" {
		GeometryMode = "footprint"
	}
	if BatchSize <= 0 {
		BatchSize = 100
	}
	if MaxDepth <= 0 {
		MaxDepth = 256
	}

	DSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC", MainConfig.Host, MainConfig.Username, MainConfig.Password, MainConfig.Dbname, MainConfig.Port)

}
