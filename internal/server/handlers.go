package server

import (
	"net/http"

	"github.com/clipcraft/shortvid-backend/internal/aivideo"
	authHttp "github.com/clipcraft/shortvid-backend/internal/auth/delivery/http"
	authRepository "github.com/clipcraft/shortvid-backend/internal/auth/repository"
	authUsecase "github.com/clipcraft/shortvid-backend/internal/auth/usecase"
	genHttp "github.com/clipcraft/shortvid-backend/internal/generations/delivery/http"
	genRepository "github.com/clipcraft/shortvid-backend/internal/generations/repository"
	genUsecase "github.com/clipcraft/shortvid-backend/internal/generations/usecase"
	"github.com/clipcraft/shortvid-backend/internal/middleware"
	"github.com/clipcraft/shortvid-backend/pkg/utils"
	"github.com/labstack/echo/v4"
)

const healthMaxCPUUsage = 95.0

func (s *Server) MapHandlers(e *echo.Echo) error {
	aRepo := authRepository.NewAuthRepo(s.db)
	gRepo := genRepository.NewGenerationRepo(s.db)
	gRedisRepo := genRepository.NewGenerationRedisRepo(s.redisClient, s.cfg.Redis.GenCachePrefix)
	gAWSRepo := genRepository.NewAwsRepository(s.s3Client, s.preSignClient)

	provider := aivideo.NewProvider(&s.cfg.AI, s.logger)
	enhancer := aivideo.NewPromptEnhancer(&s.cfg.AI, s.logger)

	authUC := authUsecase.NewAuthUseCase(s.cfg, aRepo, s.logger)
	genUC := genUsecase.NewGenerationUseCase(s.cfg, gRepo, gRedisRepo, gAWSRepo, provider, enhancer, s.logger)

	authHandlers := authHttp.NewAuthHandler(s.cfg, authUC, s.logger)
	genHandlers := genHttp.NewGenerationHandler(s.cfg, genUC, s.logger)

	mw := middleware.NewMiddlewareManager(authUC, s.cfg, []string{"*"}, s.logger)

	v1 := e.Group("/api/v1")
	health := v1.Group("/health")
	authGroup := v1.Group("/auth")
	genGroup := v1.Group("/generations")
	aiGroup := v1.Group("/ai")

	authHttp.MapAuthRoutes(authGroup, authHandlers, mw, authUC, s.cfg)
	genHttp.MapGenerationRoutes(genGroup, genHandlers, mw, authUC, s.cfg)
	genHttp.MapAIRoutes(aiGroup, genHandlers, mw, authUC, s.cfg)
	health.GET("", func(c echo.Context) error {
		s.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		healthy, usage := utils.CheckCPUUsage(healthMaxCPUUsage)
		status := "OK"
		if !healthy {
			status = "DEGRADED"
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    status,
			"provider":  provider.Name(),
			"cpu_usage": usage,
		})
	})
	return nil
}
