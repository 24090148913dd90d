package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	handlers "github.com/oksasatya/school-erp/internal/interface/http"
	"github.com/oksasatya/school-erp/internal/interface/middleware"
)

// AuthModule exposes the login endpoint under both its current and legacy paths.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Redis   *redis.Client
	Limit   int
	Logger  *logrus.Logger
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client, limit int, logger *logrus.Logger) *AuthModule {
	return &AuthModule{Handler: h, Redis: rdb, Limit: limit, Logger: logger}
}

func (m *AuthModule) Name() string { return "auth" }

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(m.Redis, m.Limit, time.Minute, middleware.KeyByIPWithPrefix("login"), nil, m.Logger)

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/user/auth/login", loginLimiter, m.Handler.Login)
}
