package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type AdminHandler struct {
	users    *repository.UserGormRepository
	salons   *repository.SalonGormRepository
	bookings *repository.BookingGormRepository
	auditLog *audit.Logger
	dispatch *audit.Dispatcher
	log      *zap.Logger
}

func NewAdminHandler(
	users *repository.UserGormRepository,
	salons *repository.SalonGormRepository,
	bookings *repository.BookingGormRepository,
	auditLog *audit.Logger,
	dispatch *audit.Dispatcher,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		users:    users,
		salons:   salons,
		bookings: bookings,
		auditLog: auditLog,
		dispatch: dispatch,
		log:      log,
	}
}

// GET /api/admin/users and /api/users
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, users)
}

// DELETE /api/admin/users/:id removes the user, their salon and its bookings.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	id := c.Param("id")
	if id == actor.UserID {
		httperr.BadRequest(c, "cannot_delete_self", "Admins cannot delete their own account.")
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, err)
		return
	}

	h.dispatch.Dispatch(audit.Event{
		UserID:   actor.UserID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: id,
	})
	httpresp.Message(c, "User deleted")
}

// GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, stats)
}

// GET /api/admin/me
func (h *AdminHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.users.GetByID(ctx, middleware.ActorFrom(c).UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	stats, err := h.stats(ctx)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.AdminMe{User: user, Stats: stats})
}

// GET /api/admin/audit-logs?salonId=&limit=
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditLimit)))
	if err != nil || limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	entries, err := h.auditLog.List(c.Request.Context(), c.Query("salonId"), limit)
	if err != nil {
		h.log.Error("audit list failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Could not load audit logs.")
		return
	}
	httpresp.List[models.AuditLog](c, entries)
}

func (h *AdminHandler) stats(ctx context.Context) (dto.Stats, error) {
	totalUsers, err := h.users.Count(ctx)
	if err != nil {
		return dto.Stats{}, err
	}
	salonsByEstado, err := h.salons.CountByEstado(ctx)
	if err != nil {
		return dto.Stats{}, err
	}
	bookingsByEstado, err := h.bookings.CountByEstado(ctx)
	if err != nil {
		return dto.Stats{}, err
	}

	return dto.Stats{
		TotalUsers:       totalUsers,
		TotalSalons:      sum(salonsByEstado),
		TotalBookings:    sum(bookingsByEstado),
		SalonsByEstado:   salonsByEstado,
		BookingsByEstado: bookingsByEstado,
	}, nil
}

func sum(m map[string]int64) int64 {
	var n int64
	for _, v := range m {
		n += v
	}
	return n
}
