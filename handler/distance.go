package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"airport-distance/algo"
	"airport-distance/model"
	"airport-distance/repository"
	"airport-distance/service"
)

// Distance 全局距离服务 (应在 main 中初始化)
var Distance *service.DistanceService

// CoordinatesDistanceRequest 坐标路线距离请求
type CoordinatesDistanceRequest struct {
	Route   []model.Coordinates `json:"route" binding:"required,min=2"`
	Formula model.Formula       `json:"formula"` // 默认 great_circle
	Datum   model.Datum         `json:"datum"`   // 默认 wgs84
}

// CoordinatesRoutePart 坐标路线中的一段
type CoordinatesRoutePart struct {
	From     model.Coordinates `json:"from"`
	To       model.Coordinates `json:"to"`
	Distance float64           `json:"distance"`
}

// CoordinatesDistanceResponse 坐标路线距离响应
type CoordinatesDistanceResponse struct {
	Distances     []CoordinatesRoutePart `json:"distances"`
	Formula       model.Formula          `json:"formula"`
	Datum         model.Datum            `json:"datum"`
	TotalDistance float64                `json:"total_distance"`
}

// AirportDistanceRequest 机场路线距离请求
type AirportDistanceRequest struct {
	Route   []string      `json:"route" binding:"required,min=2,dive,required"`
	Formula model.Formula `json:"formula"`
	Datum   model.Datum   `json:"datum"`
}

// AirportCoordinates 带机场代码的坐标
type AirportCoordinates struct {
	IATACode    string            `json:"iata_code"`
	Coordinates model.Coordinates `json:"coordinates"`
}

// AirportRoutePart 机场路线中的一段
type AirportRoutePart struct {
	From     AirportCoordinates `json:"from"`
	To       AirportCoordinates `json:"to"`
	Distance float64            `json:"distance"`
}

// AirportDistanceResponse 机场路线距离响应
type AirportDistanceResponse struct {
	Distances     []AirportRoutePart `json:"distances"`
	Formula       model.Formula      `json:"formula"`
	Datum         model.Datum        `json:"datum"`
	TotalDistance float64            `json:"total_distance"`
}

// CalculateCoordinatesDistance 计算坐标路线距离
func CalculateCoordinatesDistance(c *gin.Context) {
	var req CoordinatesDistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("请求参数校验失败")
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	result, err := Distance.CalculateRoute(req.Route, req.Formula, req.Datum)
	if err != nil {
		respondError(c, err)
		return
	}
	log.Debug(algo.FormatRoute(result))

	parts := make([]CoordinatesRoutePart, 0, len(result.Legs))
	for _, leg := range result.Legs {
		parts = append(parts, CoordinatesRoutePart{
			From:     leg.From.Coordinates,
			To:       leg.To.Coordinates,
			Distance: leg.Distance,
		})
	}

	c.JSON(http.StatusOK, CoordinatesDistanceResponse{
		Distances:     parts,
		Formula:       req.Formula,
		Datum:         req.Datum,
		TotalDistance: result.TotalDistance,
	})
}

// CalculateAirportsDistance 计算机场路线距离
func CalculateAirportsDistance(c *gin.Context) {
	var req AirportDistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("请求参数校验失败")
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	result, err := Distance.CalculateAirportRoute(c.Request.Context(), req.Route, req.Formula, req.Datum)
	if err != nil {
		respondError(c, err)
		return
	}
	log.Debug(algo.FormatRoute(result))

	parts := make([]AirportRoutePart, 0, len(result.Legs))
	for _, leg := range result.Legs {
		parts = append(parts, AirportRoutePart{
			From:     AirportCoordinates{IATACode: leg.From.Code, Coordinates: leg.From.Coordinates},
			To:       AirportCoordinates{IATACode: leg.To.Code, Coordinates: leg.To.Coordinates},
			Distance: leg.Distance,
		})
	}

	c.JSON(http.StatusOK, AirportDistanceResponse{
		Distances:     parts,
		Formula:       req.Formula,
		Datum:         req.Datum,
		TotalDistance: result.TotalDistance,
	})
}

// respondError 把业务错误映射为 HTTP 状态码
func respondError(c *gin.Context, err error) {
	var (
		missing     *service.MissingAirportsError
		convergence *algo.ConvergenceError
	)

	switch {
	case errors.Is(err, algo.ErrInvalidRoute):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &missing):
		log.WithField("missing_airports", missing.Codes).Warn("路线中有机场不存在")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "部分机场不在数据库中",
			"details": gin.H{
				"missing_airports": missing.Codes,
			},
		})
	case errors.As(err, &convergence):
		log.WithError(err).Warn("距离计算失败")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrStoreFault):
		log.WithError(err).Error("查询机场数据失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "数据库访问失败"})
	default:
		log.WithError(err).Error("未知错误")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "服务器内部错误"})
	}
}
