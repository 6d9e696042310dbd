package http

import (
	"github.com/clipcraft/shortvid-backend/internal/auth"
	"github.com/clipcraft/shortvid-backend/internal/config"
	"github.com/clipcraft/shortvid-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

func MapAuthRoutes(authGroup *echo.Group, h auth.Handler, mw *middleware.MiddlewareManager, authUC auth.UseCase, cfg *config.Config) {
	authGroup.POST("/register", h.Register())
	authGroup.POST("/login", h.Login())
	authGroup.POST("/logout", h.Logout())
	authGroup.Use(mw.AuthJWTMiddleware(authUC, cfg))
	authGroup.GET("/me", h.GetMe())
	authGroup.GET("/:user_id", h.GetUserByID(), mw.OwnerOrAdminMiddleware())
	authGroup.PUT("/:user_id", h.Update(), mw.OwnerOrAdminMiddleware())
}
