package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	statusUC *ucBooking.UpdateBookingStatus
	updateUC *ucBooking.UpdateBooking
	getUC    *ucBooking.GetBooking
	listUC   *ucBooking.ListBookings
	deleteUC *ucBooking.DeleteBooking
	log      *zap.Logger
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	statusUC *ucBooking.UpdateBookingStatus,
	updateUC *ucBooking.UpdateBooking,
	getUC *ucBooking.GetBooking,
	listUC *ucBooking.ListBookings,
	deleteUC *ucBooking.DeleteBooking,
	log *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		statusUC: statusUC,
		updateUC: updateUC,
		getUC:    getUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		log:      log,
	}
}

// ======================================================
// POST /api/bookings (public)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		SalonID:  req.SalonRef(),
		Nombre:   req.Nombre,
		Email:    req.Email,
		Telefono: req.Telefono,
		Servicio: req.Servicio,
		Fecha:    req.Fecha,
		Hora:     req.Hora,
		Mensaje:  req.Mensaje,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.BookingResponse{Message: "Booking created", Booking: b})
}

// ======================================================
// GET /api/bookings (auth) ?salonId=&estado=
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	filter := domain.ListFilter{SalonID: c.Query("salonId")}
	if raw := c.Query("estado"); raw != "" {
		st, err := domain.ParseStatus(raw)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		filter.Status = st
	}
	h.list(c, middleware.ActorFrom(c), filter)
}

// ======================================================
// GET /api/bookings/salon/:salonId (public agenda)
// ======================================================

func (h *BookingHandler) ListBySalon(c *gin.Context) {
	h.list(c, domain.Actor{}, domain.ListFilter{SalonID: c.Param("salonId")})
}

func (h *BookingHandler) list(c *gin.Context, actor domain.Actor, filter domain.ListFilter) {
	seq, err := h.listUC.Execute(c.Request.Context(), actor, filter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	bookings, err := ucBooking.Collect(seq)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, bookings)
}

// ======================================================
// GET /api/bookings/:id
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.getUC.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, b)
}

// ======================================================
// PUT /api/bookings/:id
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), ucBooking.UpdateBookingInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Telefono: req.Telefono,
		Servicio: req.Servicio,
		Fecha:    req.Fecha,
		Hora:     req.Hora,
		Mensaje:  req.Mensaje,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, b)
}

// ======================================================
// PATCH /api/bookings/:id/status and /:id/estado
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req dto.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.statusUC.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), req.Value())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingResponse{Message: "Status updated", Booking: b})
}

// ======================================================
// DELETE /api/bookings/:id
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.Message(c, "Booking deleted")
}
