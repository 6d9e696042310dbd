package generations

import "github.com/labstack/echo/v4"

type Handler interface {
	StartGeneration() echo.HandlerFunc
	PollGeneration() echo.HandlerFunc
	GetGeneration() echo.HandlerFunc
	ListGenerations() echo.HandlerFunc
	DeleteGeneration() echo.HandlerFunc
	GetAssetUploadURL() echo.HandlerFunc
	EnhancePrompt() echo.HandlerFunc
}
