package aderencia

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"roteirizador/validation"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewAderenciaHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CompararHandler recebe dois uploads multipart: "executado" obrigatório e
// "planejado" opcional, ambos KML ou KMZ. Tolerância em metros vem no
// campo "tolerancia".
func (h *Handler) CompararHandler(c echo.Context) error {
	executado, err := readFormFile(c, "executado")
	if err != nil {
		return c.JSON(http.StatusBadRequest, "arquivo executado é obrigatório")
	}

	planejado, err := readFormFile(c, "planejado")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	var tolerancia float64
	if raw := c.FormValue("tolerancia"); raw != "" {
		tolerancia, err = validation.ParseStringToFloat(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, "tolerância inválida")
		}
	}

	result, err := h.InterfaceService.CompararService(c.Request().Context(), planejado, executado, tolerancia)
	if errors.Is(err, ErrSemCoordenadas) {
		return c.JSON(http.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) AnalisarHandler(c echo.Context) error {
	arquivo, err := readFormFile(c, "arquivo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, "arquivo é obrigatório")
	}

	result, err := h.InterfaceService.AnalisarService(c.Request().Context(), arquivo)
	if errors.Is(err, ErrSemCoordenadas) {
		return c.JSON(http.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func readFormFile(c echo.Context, name string) ([]byte, error) {
	header, err := c.FormFile(name)
	if err != nil {
		return nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func(file multipart.File) {
		_ = file.Close()
	}(file)
	return io.ReadAll(file)
}
