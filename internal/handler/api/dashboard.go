package api

import (
	"errors"
	"net/http"
	"strings"

	"EconWatch/internal/catalog"
	"EconWatch/internal/domain/models"
	"EconWatch/internal/service/render"
	"EconWatch/internal/service/worldbank"
	"EconWatch/internal/usecase"
	xhttp "EconWatch/pkg/http"
	xlogger "EconWatch/pkg/logger"

	"github.com/labstack/echo/v4"
)

// maxCountries is the UI-facing selection bound. The pipeline itself has no
// hard limit; this cap only shapes the request surface.
const maxCountries = 5

// DashboardHandler serves chart data and catalog listings over Echo.
type DashboardHandler struct {
	logger  *xlogger.Logger
	builder *usecase.ChartBuilder
}

func NewDashboardHandler(logger *xlogger.Logger, builder *usecase.ChartBuilder) *DashboardHandler {
	return &DashboardHandler{logger: logger, builder: builder}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/chart", h.Chart)
	g.GET("/chart.png", h.ChartPNG)
	g.GET("/indicators", h.Indicators)
	g.GET("/countries", h.Countries)
}

// Chart runs one full pipeline cycle and returns the chart description.
// A source with no data for the selection answers 200 with an empty body
// message; only transport and payload failures are errors.
func (h *DashboardHandler) Chart(c echo.Context) error {
	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	countries, verr := parseCountries(req.Countries)
	if verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if req.Start > req.End {
		return xhttp.BadRequestResponse(c, []xhttp.ValidationError{{
			Code:    "ERR_RANGE",
			Field:   "start",
			Message: "start year must not be after end year",
		}})
	}

	spec, err := h.builder.Build(c.Request().Context(), req.Indicator, countries, req.Start, req.End, req.ShowTrend())
	if err != nil {
		return h.pipelineError(c, err)
	}
	if spec == nil {
		return xhttp.EmptyResponse(c, "no data available for this selection")
	}
	return xhttp.SuccessResponse(c, spec)
}

// ChartPNG renders the same selection as a static PNG.
func (h *DashboardHandler) ChartPNG(c echo.Context) error {
	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	countries, verr := parseCountries(req.Countries)
	if verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if req.Start > req.End {
		return xhttp.BadRequestResponse(c, []xhttp.ValidationError{{
			Code:    "ERR_RANGE",
			Field:   "start",
			Message: "start year must not be after end year",
		}})
	}

	spec, err := h.builder.Build(c.Request().Context(), req.Indicator, countries, req.Start, req.End, req.ShowTrend())
	if err != nil {
		return h.pipelineError(c, err)
	}
	if spec == nil {
		return c.NoContent(http.StatusNoContent)
	}

	png, err := render.PNG(spec)
	if err != nil {
		h.logger.Error("chart png render error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("could not render chart").WithError(err))
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

// Indicators lists the indicator catalog.
func (h *DashboardHandler) Indicators(c echo.Context) error {
	return xhttp.SuccessResponse(c, catalog.Indicators())
}

// Countries lists the country catalog.
func (h *DashboardHandler) Countries(c echo.Context) error {
	return xhttp.SuccessResponse(c, catalog.Countries())
}

// pipelineError folds every pipeline failure variant into one user-facing
// message; details go to the log only.
func (h *DashboardHandler) pipelineError(c echo.Context, err error) error {
	h.logger.Error("chart pipeline error", xlogger.Error(err))
	switch {
	case errors.Is(err, worldbank.ErrTransport):
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError("could not reach the data source").WithError(err))
	case errors.Is(err, usecase.ErrMalformedYear):
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError("the data source returned an unreadable payload").WithError(err))
	default:
		return xhttp.AppErrorResponse(c, err)
	}
}

// parseCountries splits the comma-separated selection and enforces the UI
// bounds: at least one country, at most five.
func parseCountries(raw string) ([]string, []xhttp.ValidationError) {
	parts := strings.Split(raw, ",")
	countries := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		countries = append(countries, p)
	}
	if len(countries) == 0 {
		return nil, []xhttp.ValidationError{{
			Code:    "ERR_REQUIRED",
			Field:   "countries",
			Message: "please select at least one country",
		}}
	}
	if len(countries) > maxCountries {
		return nil, []xhttp.ValidationError{{
			Code:    "ERR_MAX",
			Field:   "countries",
			Message: "select at most 5 countries",
		}}
	}
	return countries, nil
}
