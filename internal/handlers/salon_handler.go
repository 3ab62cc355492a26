package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	salondomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucSalon "github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
)

type SalonHandler struct {
	repo     salondomain.Repository
	createUC *ucSalon.CreateSalon
	updateUC *ucSalon.UpdateSalon
	reviewUC *ucSalon.ReviewSalon
	deleteUC *ucSalon.DeleteSalon
	uploadUC *ucSalon.UploadSalonMedia
	log      *zap.Logger
}

func NewSalonHandler(
	repo salondomain.Repository,
	createUC *ucSalon.CreateSalon,
	updateUC *ucSalon.UpdateSalon,
	reviewUC *ucSalon.ReviewSalon,
	deleteUC *ucSalon.DeleteSalon,
	uploadUC *ucSalon.UploadSalonMedia,
	log *zap.Logger,
) *SalonHandler {
	return &SalonHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		reviewUC: reviewUC,
		deleteUC: deleteUC,
		uploadUC: uploadUC,
		log:      log,
	}
}

func profileInput(req dto.SalonRequest) ucSalon.ProfileInput {
	return ucSalon.ProfileInput{
		Nombre:      req.Nombre,
		Slogan:      req.Slogan,
		Descripcion: req.Descripcion,
		Telefono:    req.Telefono,
		Email:       req.Email,
		Direccion:   req.Direccion,
		Horarios:    req.Horarios,
		Whatsapp:    req.Whatsapp,
		Template:    req.Template,
		Logo:        req.Logo,
		Imagenes:    req.Imagenes,
		Servicios:   req.Servicios,
		Equipo:      req.Equipo,
	}
}

// POST /api/salons
func (h *SalonHandler) Create(c *gin.Context) {
	var req dto.SalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	s, err := h.createUC.Execute(c.Request.Context(), middleware.ActorFrom(c), profileInput(req))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.Created(c, dto.SalonResponse{Message: "Salon created, pending approval", Salon: s})
}

// GET /api/salons/mine
func (h *SalonHandler) Mine(c *gin.Context) {
	s, err := h.repo.GetByOwner(c.Request.Context(), middleware.ActorFrom(c).UserID)
	if err != nil {
		if httperr.IsBusiness(err, "salon_not_found") {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":    "salon_not_found",
				"message":  "You have no salon registered.",
				"hasSalon": false,
			})
			return
		}
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, s)
}

// GET /api/salons/public/:slug
func (h *SalonHandler) Public(c *gin.Context) {
	s, err := h.repo.GetApprovedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, s)
}

// GET /api/salons: admins see every salon, everyone else approved ones.
func (h *SalonHandler) List(c *gin.Context) {
	salons, err := h.repo.List(c.Request.Context(), !middleware.ActorFrom(c).IsAdmin())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, salons)
}

// GET /api/admin/salons
func (h *SalonHandler) ListAll(c *gin.Context) {
	salons, err := h.repo.List(c.Request.Context(), false)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, salons)
}

// GET /api/salons/:id
func (h *SalonHandler) Get(c *gin.Context) {
	s, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, s)
}

// PATCH /api/salons/:id/estado (admin)
func (h *SalonHandler) Review(c *gin.Context) {
	var req dto.SalonEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	s, err := h.reviewUC.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), req.Estado)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.SalonResponse{Message: "Salon " + s.Estado, Salon: s})
}

// PUT /api/salons/:id
func (h *SalonHandler) Update(c *gin.Context) {
	var req dto.SalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	s, err := h.updateUC.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), profileInput(req))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.SalonResponse{Message: "Salon updated", Salon: s})
}

// DELETE /api/salons/:id and /api/admin/salons/:id
func (h *SalonHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.Message(c, "Salon deleted")
}

// POST /api/salons/:id/media?kind=logo|gallery (multipart "file")
func (h *SalonHandler) UploadMedia(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		bindError(c, err)
		return
	}
	file, err := header.Open()
	if err != nil {
		bindError(c, err)
		return
	}
	defer file.Close()

	kind := ucSalon.MediaKind(c.DefaultQuery("kind", string(ucSalon.MediaGallery)))

	s, err := h.uploadUC.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), kind, file)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.SalonResponse{Message: "Media uploaded", Salon: s})
}
