package interfaces

import (
	"errors"
	"strconv"

	"interface-reconciler/core/logger"
	"interface-reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for interface reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the interfaces routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/interfaces")
	group.Get("/reconcile", h.HandleReconcile)
	group.Get("/columns", h.HandleColumns)
	group.Post("/report", h.HandleReport)
	group.Get("/reports", h.HandleListReports)
	group.Get("/:row", h.HandleDetail)
}

// HandleReconcile matches every base record against its counterpart.
// @Summary Reconcile Interfaces
// @Description Match every base interface with its counterpart and validate the configured fields.
// @Tags interfaces
// @Produce json
// @Success 200 {object} reconcile.Report "Reconciliation Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /interfaces/reconcile [get]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.ReconcileInterfaces(c.Context())
	if err != nil {
		l.Error("Interface reconciliation failed", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(report)
}

// HandleColumns checks the column mapping table against the database schema.
// @Summary Check Columns
// @Description Compare type, size and nullability of every mapped column pair.
// @Tags interfaces
// @Produce json
// @Success 200 {object} reconcile.Report "Column Report"
// @Failure 503 {object} map[string]string "Schema Unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /interfaces/columns [get]
func (h *Handler) HandleColumns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckColumns(c.Context())
	if err != nil {
		l.Error("Column check failed", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(report)
}

// HandleReport runs both passes and uploads the report to storage.
// @Summary Generate Report
// @Description Run a full reconciliation and store the JSON report in the bucket.
// @Tags interfaces
// @Produce json
// @Success 201 {object} map[string]interface{} "Stored Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /interfaces/report [post]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Run(c.Context())
	if err != nil {
		l.Error("Reconciliation run failed", zap.Error(err))
		return errorResponse(c, err)
	}

	key, err := h.service.Export(c.Context(), report)
	if err != nil {
		l.Error("Report upload failed", zap.String("run_id", report.RunID), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"run_id":  report.RunID,
		"key":     key,
		"summary": report.Summary,
	})
}

// HandleListReports lists stored reports.
// @Summary List Reports
// @Description List the keys of every report stored in the bucket.
// @Tags interfaces
// @Produce json
// @Success 200 {object} map[string]interface{} "Report Keys"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /interfaces/reports [get]
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	keys, err := h.service.ListReports(c.Context())
	if err != nil {
		l.Error("Report listing failed", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"count":   len(keys),
		"reports": keys,
	})
}

// HandleDetail reconciles a single catalog row.
// @Summary Get Interface Detail
// @Description Reconcile one catalog row, whether or not it is a base record.
// @Tags interfaces
// @Produce json
// @Param row path int true "Catalog row index"
// @Success 200 {object} reconcile.RecordResult "Record Result"
// @Failure 400 {object} map[string]string "Invalid Row"
// @Failure 404 {object} map[string]string "Row Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /interfaces/{row} [get]
func (h *Handler) HandleDetail(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	row, err := strconv.Atoi(c.Params("row"))
	if err != nil || row < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "row must be a non-negative integer",
		})
	}

	result, err := h.service.Detail(c.Context(), row)
	if err != nil {
		l.Error("Interface detail failed", zap.Int("row", row), zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(result)
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, reconcile.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrSchemaUnavailable):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, reconcile.ErrConfiguration), errors.Is(err, reconcile.ErrParse):
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
