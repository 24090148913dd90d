package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/school-erp/internal/interface/http"
	"github.com/oksasatya/school-erp/internal/interface/middleware"
	"github.com/oksasatya/school-erp/pkg/helpers"
)

// UserModule wires the user directory routes.
// POST /user stays open so the first account can be created; the rest need a
// bearer token when authRequired is set.
type UserModule struct {
	Handler      *handlers.UserHandler
	JWT          *helpers.JWTManager
	AuthRequired bool
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager, authRequired bool) *UserModule {
	return &UserModule{Handler: h, JWT: jwt, AuthRequired: authRequired}
}

func (m *UserModule) Name() string { return "user" }

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/user", m.Handler.Create)

	users := rg.Group("/user")
	if m.AuthRequired {
		users.Use(middleware.JWTAuth(m.JWT))
	}
	{
		users.GET("", m.Handler.List)
		users.GET("/:userId", m.Handler.Get)
		users.PUT("/:userId", m.Handler.Update)
		users.DELETE("/:userId", m.Handler.Delete)
	}
}
