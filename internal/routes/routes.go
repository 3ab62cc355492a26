package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/auth"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
	ucSalon "github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// Deps are the process singletons the router wires into handlers.
// Media and Policy may be nil.
type Deps struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Log     *zap.Logger
	Metrics *metrics.Metrics
	Audit   *audit.Dispatcher
	Locker  domain.SlotLocker
	Media   *media.Processor
	Policy  domain.TransitionPolicy
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORS(d.Cfg.CORSAllowedOrigins))
	if d.Cfg.MetricsEnabled {
		r.Use(middleware.HTTPMetrics(d.Metrics))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	salonRepo := infraRepo.NewSalonGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	auditLogger := audit.New(d.DB)

	issuer := auth.NewTokenIssuer(d.Cfg.JWTSecret, d.Cfg.JWTTTL())

	bookingCfg := ucBooking.Config{
		LockTTL:              d.Cfg.SlotLockTTL(),
		RequireApprovedSalon: d.Cfg.RequireApprovedSalon,
	}

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo, salonRepo, d.Locker, bookingCfg, d.Audit, d.Metrics, d.Log,
	)
	statusBookingUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo, salonRepo, d.Locker, d.Policy, bookingCfg, d.Audit, d.Metrics, d.Log,
	)
	updateBookingUC := ucBooking.NewUpdateBooking(
		bookingRepo, salonRepo, d.Locker, bookingCfg, d.Audit, d.Metrics, d.Log,
	)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo, salonRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo, bookingCfg)
	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo, salonRepo, d.Audit, d.Metrics, d.Log,
	)

	// ======================================================
	// USE CASES: SALONS
	// ======================================================
	createSalonUC := ucSalon.NewCreateSalon(salonRepo, d.Media, d.Audit, d.Log)
	updateSalonUC := ucSalon.NewUpdateSalon(salonRepo, d.Media, d.Audit, d.Log)
	reviewSalonUC := ucSalon.NewReviewSalon(salonRepo, d.Audit, d.Log)
	deleteSalonUC := ucSalon.NewDeleteSalon(salonRepo, d.Audit, d.Log)
	uploadSalonUC := ucSalon.NewUploadSalonMedia(salonRepo, d.Media, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		statusBookingUC,
		updateBookingUC,
		getBookingUC,
		listBookingsUC,
		deleteBookingUC,
		d.Log,
	)
	salonHandler := handlers.NewSalonHandler(
		salonRepo,
		createSalonUC,
		updateSalonUC,
		reviewSalonUC,
		deleteSalonUC,
		uploadSalonUC,
		d.Log,
	)
	authHandler := handlers.NewAuthHandler(
		userRepo,
		issuer,
		validators.EmailChecker{CheckDomain: d.Cfg.CheckEmailDomain},
		d.Log,
	)
	adminHandler := handlers.NewAdminHandler(
		userRepo, salonRepo, bookingRepo, auditLogger, d.Audit, d.Log,
	)

	requireAuth := middleware.RequireAuth(issuer)
	optionalAuth := middleware.OptionalAuth(issuer)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")

	// ======================================================
	// BOOKINGS
	// ======================================================
	bookings := api.Group("/bookings")
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("/salon/:salonId", bookingHandler.ListBySalon)

		bookings.GET("", requireAuth, bookingHandler.List)
		bookings.GET("/:id", requireAuth, bookingHandler.Get)
		bookings.PUT("/:id", requireAuth, bookingHandler.Update)
		bookings.PATCH("/:id/status", requireAuth, bookingHandler.UpdateStatus)
		bookings.PATCH("/:id/estado", requireAuth, bookingHandler.UpdateStatus)
		bookings.DELETE("/:id", requireAuth, bookingHandler.Delete)
	}

	// ======================================================
	// SALONS
	// ======================================================
	salons := api.Group("/salons")
	{
		salons.GET("", optionalAuth, salonHandler.List)
		salons.GET("/mine", requireAuth, salonHandler.Mine)
		salons.GET("/public/:slug", salonHandler.Public)
		salons.GET("/:id", salonHandler.Get)

		salons.POST("", requireAuth, salonHandler.Create)
		salons.PUT("/:id", requireAuth, salonHandler.Update)
		salons.POST("/:id/media", requireAuth, salonHandler.UploadMedia)
		salons.PATCH("/:id/estado", requireAuth, requireAdmin, salonHandler.Review)
		salons.DELETE("/:id", requireAuth, salonHandler.Delete)
	}

	// ======================================================
	// USERS
	// ======================================================
	users := api.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.GET("/profile", requireAuth, authHandler.Profile)
		users.GET("", requireAuth, requireAdmin, adminHandler.Users)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := api.Group("/admin", requireAuth, requireAdmin)
	{
		admin.GET("/me", adminHandler.Me)
		admin.GET("/stats", adminHandler.Stats)
		admin.GET("/users", adminHandler.Users)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
		admin.GET("/salons", salonHandler.ListAll)
		admin.PATCH("/salons/:id", salonHandler.Review)
		admin.DELETE("/salons/:id", salonHandler.Delete)
		admin.GET("/audit-logs", adminHandler.AuditLogs)
	}

	api.GET("/debug/whoami", requireAuth, authHandler.WhoAmI)
}
