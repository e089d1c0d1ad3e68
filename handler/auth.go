package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"airport-distance/config"
	"airport-distance/model"
	"airport-distance/utils"
)

// authRealm Basic 认证的 realm
const authRealm = `Basic realm="Access to the API"`

var (
	// jwtSecret JWT 签名密钥 (来自配置)
	jwtSecret []byte
	// tokenTTL Token 有效期
	tokenTTL = 24 * time.Hour
	// apiUser 唯一的 API 调用方
	apiUser model.User
)

// Claims JWT 载荷
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SetupAuth 根据配置初始化 API 凭据，密码只以 bcrypt 哈希形式保存在内存中
func SetupAuth(cfg config.AuthConfig) error {
	if cfg.Username == "" || cfg.Password == "" {
		return config.ErrMissingCredentials
	}

	hashed, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	apiUser = model.User{Username: cfg.Username, Password: hashed}
	jwtSecret = []byte(cfg.JWTSecret)
	if cfg.TokenTTL > 0 {
		tokenTTL = cfg.TokenTTL
	}
	return nil
}

// checkCredentials 校验用户名和密码
func checkCredentials(username, password string) bool {
	if apiUser.Username == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(apiUser.Username)) != 1 {
		return false
	}
	return utils.CheckPassword(apiUser.Password, password)
}

// Login 使用 API 凭据换取 JWT Token
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误"})
		return
	}

	if !checkCredentials(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户名或密码错误"})
		return
	}

	now := time.Now()
	expiresAt := now.Add(tokenTTL)
	claims := &Claims{
		Username: req.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "airport-distance",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		log.WithError(err).Error("生成 Token 失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成 Token 失败"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     tokenString,
		Username:  req.Username,
		ExpiresAt: expiresAt.UTC(),
	})
}

// parseToken 解析并校验 JWT
func parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("无效的 Token")
	}
	return claims, nil
}

// AuthMiddleware 认证中间件，支持 Basic 认证和 Bearer Token
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		switch {
		case strings.HasPrefix(header, "Bearer "):
			claims, err := parseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				log.WithError(err).Warn("Token 校验失败")
				unauthorized(c, "无效的 Token")
				return
			}
			c.Set("username", claims.Username)

		case strings.HasPrefix(header, "Basic "):
			username, password, ok := c.Request.BasicAuth()
			if !ok || !checkCredentials(username, password) {
				unauthorized(c, "用户名或密码错误")
				return
			}
			c.Set("username", username)

		default:
			unauthorized(c, "未提供认证信息")
			return
		}

		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", authRealm)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
