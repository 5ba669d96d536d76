package simulacao

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"roteirizador/validation"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewSimulacaoHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func (h *Handler) SalvarSimulacaoHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	var request CreateSimulacaoRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.SalvarService(c.Request().Context(), id, request)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) ListSimulacoesHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.ListarService(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) AplicarSimulacaoHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	simID, err := validation.ParseStringToInt64(c.Param("simulacao_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := h.InterfaceService.AplicarService(c.Request().Context(), id, simID); err != nil {
		return c.JSON(statusDeErro(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Simulação aplicada com sucesso."})
}

func (h *Handler) DeleteSimulacaoHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	simID, err := validation.ParseStringToInt64(c.Param("simulacao_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := h.InterfaceService.DeleteService(c.Request().Context(), id, simID); err != nil {
		return c.JSON(statusDeErro(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Simulação removida com sucesso."})
}

func statusDeErro(err error) int {
	switch {
	case errors.Is(err, ErrNaoEncontrada):
		return http.StatusNotFound
	case errors.Is(err, ErrOutraRoteirizacao):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
