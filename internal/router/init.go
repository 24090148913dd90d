package router

import (
	"github.com/oksasatya/school-erp/internal/container"
	handlers "github.com/oksasatya/school-erp/internal/interface/http"
	"github.com/oksasatya/school-erp/internal/router/modules"
)

// InitModules builds the handlers from the container and adds every module to the registry.
// Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	authHandler := handlers.NewAuthHandler(c.Credentials, c.Logger)
	userHandler := handlers.NewUserHandler(c.UserService, c.Logger)

	r.Add(modules.NewAuthModule(authHandler, c.Redis, c.Config.LoginRateLimit, c.Logger))
	r.Add(modules.NewUserModule(userHandler, c.JWT, c.Config.AuthRequired))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis, c.Logger))
	}
}
