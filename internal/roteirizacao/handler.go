package roteirizacao

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	bucket "roteirizador/pkg/s3"
	"roteirizador/validation"
)

type Handler struct {
	InterfaceService InterfaceService
	BucketName       string
}

func NewRoteirizacaoHandler(InterfaceService InterfaceService, bucketName string) *Handler {
	return &Handler{InterfaceService: InterfaceService, BucketName: bucketName}
}

func (h *Handler) CreateRoteirizacaoHandler(c echo.Context) error {
	var request CreateRoteirizacaoRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if request.HorarioChegada != "" && !validation.ValidateHorario(request.HorarioChegada) {
		return c.JSON(http.StatusBadRequest, "horário de chegada inválido")
	}
	if request.HorarioSaidaVolta != "" && !validation.ValidateHorario(request.HorarioSaidaVolta) {
		return c.JSON(http.StatusBadRequest, "horário de saída da volta inválido")
	}

	result, err := h.InterfaceService.CreateRoteirizacaoService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) GetRoteirizacaoHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.GetRoteirizacaoService(c.Request().Context(), id)
	if errors.Is(err, ErrNaoEncontrada) {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) ListRoteirizacoesHandler(c echo.Context) error {
	result, err := h.InterfaceService.ListRoteirizacoesService(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) ProcessarHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.ProcessarService(c.Request().Context(), id)
	if err != nil {
		return h.statusDeErro(c, err)
	}
	return c.JSON(http.StatusAccepted, result)
}

func (h *Handler) ClusterizarHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.ClusterizarService(c.Request().Context(), id)
	if err != nil {
		return h.statusDeErro(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) OtimizarHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.OtimizarService(c.Request().Context(), id)
	if err != nil {
		return h.statusDeErro(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) OtimizarVoltaHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.OtimizarVoltaService(c.Request().Context(), id)
	if err != nil {
		return h.statusDeErro(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) RecalcularHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	var request ParametrosRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if request.HorarioChegada != "" && !validation.ValidateHorario(request.HorarioChegada) {
		return c.JSON(http.StatusBadRequest, "horário de chegada inválido")
	}

	result, err := h.InterfaceService.RecalcularService(c.Request().Context(), id, request)
	if err != nil {
		return h.statusDeErro(c, err)
	}
	return c.JSON(http.StatusAccepted, result)
}

func (h *Handler) FinalizarHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := h.InterfaceService.FinalizarService(c.Request().Context(), id); err != nil {
		return h.statusDeErro(c, err)
	}
	return c.JSON(http.StatusOK, "Sucesso")
}

func (h *Handler) ReabrirHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := h.InterfaceService.ReabrirService(c.Request().Context(), id); err != nil {
		return h.statusDeErro(c, err)
	}
	return c.JSON(http.StatusOK, "Sucesso")
}

func (h *Handler) RotaEditadaHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	var request RotaEditadaRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.RotaEditadaService(c.Request().Context(), id, request)
	if err != nil {
		return h.statusDeErro(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ExportarKMLHandler devolve o arquivo; com ?armazenar=s3 sobe para o
// bucket e devolve a URL.
func (h *Handler) ExportarKMLHandler(c echo.Context) error {
	return h.exportar(c, "application/vnd.google-earth.kml+xml", h.InterfaceService.ExportarKMLService)
}

func (h *Handler) ExportarCSVHandler(c echo.Context) error {
	return h.exportar(c, "text/csv; charset=utf-8", h.InterfaceService.ExportarCSVService)
}

func (h *Handler) exportar(c echo.Context, contentType string, gen func(ctx context.Context, id, roteiroID int64) ([]byte, string, error)) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	roteiroID, err := validation.ParseStringToInt64(c.Param("roteiro_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	data, filename, err := gen(c.Request().Context(), id, roteiroID)
	if err != nil {
		return h.statusDeErro(c, err)
	}

	if c.QueryParam("armazenar") == "s3" {
		if h.BucketName == "" {
			return c.JSON(http.StatusBadRequest, "bucket de exportação não configurado")
		}
		url, err := bucket.UploadFileToS3(data, filename, h.BucketName, contentType)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"url": url})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, contentType, data)
}

func (h *Handler) GetTaskHandler(c echo.Context) error {
	task, err := h.InterfaceService.GetTaskService(c.Param("task_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CancelarTaskHandler(c echo.Context) error {
	if err := h.InterfaceService.CancelarTaskService(c.Param("task_id")); err != nil {
		return c.JSON(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, "Sucesso")
}

func (h *Handler) statusDeErro(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrNaoEncontrada):
		return c.JSON(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrFinalizada),
		errors.Is(err, ErrSemDestino),
		errors.Is(err, ErrSemParadas),
		errors.Is(err, ErrSemGeocodificados):
		return c.JSON(http.StatusConflict, err.Error())
	default:
		return c.JSON(http.StatusInternalServerError, err.Error())
	}
}
