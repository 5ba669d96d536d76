package combustivel

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewCombustivelHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// AnalisarHandler recebe o TXT do relatório ABA no campo multipart
// "arquivo" e devolve estatísticas por modelo e alertas por registro.
func (h *Handler) AnalisarHandler(c echo.Context) error {
	header, err := c.FormFile("arquivo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, "arquivo é obrigatório")
	}
	file, err := header.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	defer func(file multipart.File) {
		_ = file.Close()
	}(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.AnalisarService(c.Request().Context(), data)
	if errors.Is(err, ErrSemRegistros) {
		return c.JSON(http.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
