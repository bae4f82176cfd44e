package generation

import (
	"errors"

	"item-bias/core/logger"
	"item-bias/feature/bias"
	"item-bias/feature/world"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for generations.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the generation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/generations")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Get("/:id/snapshot", h.HandleGetSnapshot)
	group.Delete("/:id", h.HandleDelete)
}

// statusOf maps service errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, bias.ErrUnknownStrategy),
		errors.Is(err, world.ErrUnknownPlayer):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrPersistenceDisabled):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, bias.ErrClusterPoolExhausted),
		errors.Is(err, bias.ErrCandidatesExhausted):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := statusOf(err)
	l := logger.WithRayID(h.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err), zap.Int("status", status))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func validID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "id must be a UUID",
	})
}

// HandleCreate runs one generation.
// @Summary Run Generation
// @Description Build the bias configuration and balanced item pool for a world.
// @Tags generations
// @Accept json
// @Produce json
// @Param request body Request true "Generation request"
// @Success 201 {object} Result "Generation result"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 422 {object} map[string]string "Reservation pool exhausted"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /generations [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	res, err := h.service.Run(c.Context(), req)
	if err != nil {
		return h.fail(c, "Generation failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleList returns the most recent generation reports.
// @Summary List Generations
// @Description List stored generation reports, newest first.
// @Tags generations
// @Produce json
// @Param limit query int false "Maximum number of reports (default 20, max 100)"
// @Success 200 {array} Report "Reports"
// @Failure 503 {object} map[string]string "Persistence not configured"
// @Router /generations [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	reports, err := h.service.Reports(c.Context(), c.QueryInt("limit", defaultListLimit))
	if err != nil {
		return h.fail(c, "Listing generations failed", err)
	}
	return c.JSON(reports)
}

// HandleGet returns the report of one generation.
// @Summary Get Generation
// @Description Get the stored report of a generation.
// @Tags generations
// @Produce json
// @Param id path string true "Generation ID"
// @Success 200 {object} Report "Report"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /generations/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, ok := validID(c)
	if !ok {
		return badID(c)
	}
	report, err := h.service.Report(c.Context(), id)
	if err != nil {
		return h.fail(c, "Generation lookup failed", err)
	}
	return c.JSON(report)
}

// HandleGetSnapshot returns the frozen bias configuration of one generation.
// @Summary Get Generation Snapshot
// @Description Get the stored bias configuration snapshot of a generation.
// @Tags generations
// @Produce json
// @Param id path string true "Generation ID"
// @Success 200 {object} bias.Snapshot "Snapshot"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /generations/{id}/snapshot [get]
func (h *Handler) HandleGetSnapshot(c *fiber.Ctx) error {
	id, ok := validID(c)
	if !ok {
		return badID(c)
	}
	snap, err := h.service.Snapshot(c.Context(), id)
	if err != nil {
		return h.fail(c, "Snapshot lookup failed", err)
	}
	return c.JSON(snap)
}

// HandleDelete removes the stored report and snapshot of one generation.
// @Summary Delete Generation
// @Description Delete the stored report and snapshot of a generation.
// @Tags generations
// @Param id path string true "Generation ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /generations/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, ok := validID(c)
	if !ok {
		return badID(c)
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.fail(c, "Generation delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
