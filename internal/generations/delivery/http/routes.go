package http

import (
	"github.com/clipcraft/shortvid-backend/internal/auth"
	"github.com/clipcraft/shortvid-backend/internal/config"
	"github.com/clipcraft/shortvid-backend/internal/generations"
	"github.com/clipcraft/shortvid-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

func MapGenerationRoutes(genGroup *echo.Group, h generations.Handler, mw *middleware.MiddlewareManager, authUC auth.UseCase, cfg *config.Config) {
	genGroup.Use(mw.AuthJWTMiddleware(authUC, cfg))
	genGroup.POST("/start", h.StartGeneration())
	genGroup.GET("/poll", h.PollGeneration())
	genGroup.GET("", h.ListGenerations())
	genGroup.POST("/upload-url", h.GetAssetUploadURL())
	genGroup.GET("/:generation_id", h.GetGeneration())
	genGroup.DELETE("/:generation_id", h.DeleteGeneration())
}

func MapAIRoutes(aiGroup *echo.Group, h generations.Handler, mw *middleware.MiddlewareManager, authUC auth.UseCase, cfg *config.Config) {
	aiGroup.Use(mw.AuthJWTMiddleware(authUC, cfg))
	aiGroup.POST("/enhance", h.EnhancePrompt())
}
