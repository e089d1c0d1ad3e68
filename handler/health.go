package handler

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// HostnameProvider 获取主机名
type HostnameProvider interface {
	Hostname() (string, error)
}

// TimeProvider 获取当前时间
type TimeProvider interface {
	Now() time.Time
}

type osHostname struct{}

func (osHostname) Hostname() (string, error) { return os.Hostname() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var (
	// Hostname 健康检查使用的主机名来源，测试时可替换
	Hostname HostnameProvider = osHostname{}
	// Clock 健康检查使用的时钟，测试时可替换
	Clock TimeProvider = systemClock{}
)

// errBeforeEpoch 系统时间早于 Unix 纪元
var errBeforeEpoch = errors.New("系统时间早于 Unix 纪元")

// HealthResponse 健康检查响应
type HealthResponse struct {
	Healthy   bool   `json:"healthy"`
	Timestamp int64  `json:"timestamp"`
	Hostname  string `json:"hostname"`
	Message   string `json:"message"`
}

// CheckHealth 健康检查: 时间和主机名都能正常获取时返回 200
func CheckHealth(c *gin.Context) {
	var problems []string

	timestamp := Clock.Now().Unix()
	if timestamp < 0 {
		log.WithError(errBeforeEpoch).Error("获取当前时间戳失败")
		problems = append(problems, errBeforeEpoch.Error())
		timestamp = 0
	}

	hostname, err := Hostname.Hostname()
	if err != nil {
		log.WithError(err).Error("获取主机名失败")
		problems = append(problems, err.Error())
		hostname = "unknown"
	}

	if len(problems) > 0 {
		c.JSON(http.StatusInternalServerError, HealthResponse{
			Healthy:   false,
			Timestamp: timestamp,
			Hostname:  hostname,
			Message:   strings.Join(problems, ";"),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Healthy:   true,
		Timestamp: timestamp,
		Hostname:  hostname,
		Message:   "ok",
	})
}
