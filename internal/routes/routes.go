package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BarbeariaNavalha/booking-engine/internal/audit"
	"github.com/BarbeariaNavalha/booking-engine/internal/cache"
	"github.com/BarbeariaNavalha/booking-engine/internal/config"
	"github.com/BarbeariaNavalha/booking-engine/internal/handlers"
	infraRepo "github.com/BarbeariaNavalha/booking-engine/internal/infra/repository"
	"github.com/BarbeariaNavalha/booking-engine/internal/media"
	"github.com/BarbeariaNavalha/booking-engine/internal/middleware"
	ucBooking "github.com/BarbeariaNavalha/booking-engine/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	availCache *cache.AvailabilityCache,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var avatarStore *media.AvatarStore
	if cfg.S3Enabled() {
		avatarStore = media.NewAvatarStore(media.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			BaseURL:   cfg.S3BaseURL,
		})
	}

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		cfg.WorkingHours,
		availCache,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		cfg.WorkingHours,
		auditDispatcher,
		availCache,
	)

	createWalkInUC := ucBooking.NewCreateWalkIn(bookingRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher)
	confirmPaymentUC := ucBooking.NewConfirmPayment(bookingRepo, auditDispatcher)
	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	myBookingsUC := ucBooking.NewListMyBookings(bookingRepo)
	dashboardStatsUC := ucBooking.NewGetDashboardStats(bookingRepo)
	listClientsUC := ucBooking.NewListClients(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		bookingRepo,
		getAvailabilityUC,
		createBookingUC,
		myBookingsUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		listByDateUC,
		createWalkInUC,
		completeBookingUC,
		confirmPaymentUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(
		dashboardStatsUC,
		listClientsUC,
	)

	barberHandler := handlers.NewBarberHandler(
		bookingRepo,
		avatarStore,
		auditDispatcher,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
			publicAPI.GET("/bookings", publicHandler.MyBookings)
		}

		// ------------------------------
		// API ADMINISTRATIVA
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminTokenMiddleware(cfg))
		{
			admin.GET("/bookings", bookingHandler.ListByDate)
			admin.POST("/bookings/walk-in", bookingHandler.CreateWalkIn)
			admin.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			admin.PATCH("/bookings/:id/confirm-payment", bookingHandler.ConfirmPayment)

			admin.GET("/stats", dashboardHandler.Stats)
			admin.GET("/clients", dashboardHandler.Clients)

			admin.POST("/barbers/:id/avatar", barberHandler.UploadAvatar)
		}
	}
}
