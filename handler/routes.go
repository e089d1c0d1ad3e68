package handler

import "github.com/gin-gonic/gin"

// NewRouter 创建 Gin 引擎并配置全部路由
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(), CORS())

	// 健康检查 (无需认证)
	r.GET("/health", CheckHealth)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "ok",
		})
	})

	api := r.Group("/api")
	{
		// 公开接口
		api.POST("/login", Login)

		authorized := api.Group("/")
		authorized.Use(AuthMiddleware())
		{
			authorized.POST("/calculate_distance/coordinates", CalculateCoordinatesDistance)
			authorized.POST("/calculate_distance/airports", CalculateAirportsDistance)
			authorized.GET("/airports/iatas", GetIATAs)
			authorized.GET("/airports/:code", GetAirport)
		}
	}

	return r
}
