package http

import (
	"errors"
	"net/http"

	"github.com/clipcraft/shortvid-backend/internal/config"
	"github.com/clipcraft/shortvid-backend/internal/generations"
	"github.com/clipcraft/shortvid-backend/internal/models"
	"github.com/clipcraft/shortvid-backend/pkg/logger"
	"github.com/clipcraft/shortvid-backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type generationHandler struct {
	cfg    *config.Config
	genUC  generations.UseCase
	logger logger.Logger
}

func NewGenerationHandler(cfg *config.Config, genUC generations.UseCase, logger logger.Logger) generations.Handler {
	return &generationHandler{
		cfg:    cfg,
		genUC:  genUC,
		logger: logger,
	}
}

func (h *generationHandler) StartGeneration() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.StartGenerationInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		result, err := h.genUC.StartGeneration(c.Request().Context(), input)
		if err != nil {
			return h.mapError(c, err)
		}
		return c.JSON(http.StatusOK, result)
	}
}

func (h *generationHandler) PollGeneration() echo.HandlerFunc {
	return func(c echo.Context) error {
		genID, err := uuid.Parse(c.QueryParam("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid generation id"})
		}

		view, err := h.genUC.PollGeneration(c.Request().Context(), genID)
		if err != nil {
			return h.mapError(c, err)
		}
		return c.JSON(http.StatusOK, view)
	}
}

func (h *generationHandler) GetGeneration() echo.HandlerFunc {
	return func(c echo.Context) error {
		genID, err := uuid.Parse(c.Param("generation_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid generation id"})
		}

		gen, err := h.genUC.GetGeneration(c.Request().Context(), genID)
		if err != nil {
			return h.mapError(c, err)
		}
		return c.JSON(http.StatusOK, gen)
	}
}

func (h *generationHandler) ListGenerations() echo.HandlerFunc {
	return func(c echo.Context) error {
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		list, err := h.genUC.ListGenerations(c.Request().Context(), pagination)
		if err != nil {
			return h.mapError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

func (h *generationHandler) DeleteGeneration() echo.HandlerFunc {
	return func(c echo.Context) error {
		genID, err := uuid.Parse(c.Param("generation_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid generation id"})
		}

		if err := h.genUC.DeleteGeneration(c.Request().Context(), genID); err != nil {
			return h.mapError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Generation deleted successfully"})
	}
}

func (h *generationHandler) GetAssetUploadURL() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.AssetUploadInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		result, err := h.genUC.GetAssetUploadURL(c.Request().Context(), input)
		if err != nil {
			return h.mapError(c, err)
		}
		return c.JSON(http.StatusOK, result)
	}
}

func (h *generationHandler) EnhancePrompt() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.EnhancePromptInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}

		result, err := h.genUC.EnhancePrompt(c.Request().Context(), input)
		if err != nil {
			return h.mapError(c, err)
		}
		return c.JSON(http.StatusOK, result)
	}
}

func (h *generationHandler) mapError(c echo.Context, err error) error {
	var validationErr *generations.ValidationError
	var safetyErr *generations.SafetyError
	var startErr *generations.ProviderStartError

	switch {
	case errors.Is(err, generations.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	case errors.Is(err, generations.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Generation not found"})
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Reason})
	case errors.As(err, &safetyErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": safetyErr.Reason})
	case errors.As(err, &startErr):
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "AI service failed to start generation",
			"details": startErr.Cause.Error(),
		})
	default:
		h.logger.Errorf("generation handler RequestID: %s, ERROR: %s", utils.GetRequestID(c), err.Error())
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
