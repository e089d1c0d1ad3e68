package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetIATAs 获取全部已知的机场代码
func GetIATAs(c *gin.Context) {
	codes, err := Distance.ListKnownCodes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"iatas": codes})
}

// GetAirport 根据代码获取机场信息
func GetAirport(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))

	airport, err := Distance.ResolveAirport(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	if airport == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "机场不存在: " + code})
		return
	}

	c.JSON(http.StatusOK, airport)
}
