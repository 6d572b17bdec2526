package Transformer

import (
	"math"
)

// WGS84 椭球参数
const (
	semiMajorAxis = 6378137.0         // 长半轴
	flattening    = 1 / 298.257223563 // 扁率
)

// Wgs84ToEcef 将 WGS84 经纬高转换为 ECEF 坐标（EPSG:4326 -> EPSG:4978）
func Wgs84ToEcef(lon, lat, alt float64) (x, y, z float64) {
	a := semiMajorAxis
	f := flattening
	b := a * (1 - f) // 短半轴
	eSq := 2*f - f*f // 第一偏心率平方

	latRad := lat * math.Pi / 180
	lonRad := lon * math.Pi / 180

	sinLat := math.Sin(latRad)
	cosLat := math.Cos(latRad)
	sinLon := math.Sin(lonRad)
	cosLon := math.Cos(lonRad)

	N := a / math.Sqrt(1-eSq*sinLat*sinLat)
	x = (N + alt) * cosLat * cosLon
	y = (N + alt) * cosLat * sinLon
	z = ((b*b/(a*a))*N + alt) * sinLat

	return x, y, z
}

// EcefToWgs84 将 ECEF 坐标转换为 WGS84 经纬高（Bowring 算法）
func EcefToWgs84(x, y, z float64) (lon, lat, alt float64) {
	a := semiMajorAxis
	f := flattening
	b := a * (1 - f)
	eSq := 2*f - f*f
	ePrimeSq := eSq / (1 - eSq) // 第二偏心率平方

	lonRad := math.Atan2(y, x)

	p := math.Sqrt(x*x + y*y)
	theta := math.Atan2(z*a, p*b)

	phi := math.Atan2(
		z+ePrimeSq*b*math.Pow(math.Sin(theta), 3),
		p-eSq*a*math.Pow(math.Cos(theta), 3),
	)

	N := a / math.Sqrt(1-eSq*math.Sin(phi)*math.Sin(phi))
	h := p/math.Cos(phi) - N

	lat = phi * 180 / math.Pi
	lon = lonRad * 180 / math.Pi

	return lon, lat, h
}
