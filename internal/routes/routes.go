package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrihz/ConsultBack/internal/config"
	"github.com/nutrihz/ConsultBack/internal/handlers"
	"github.com/nutrihz/ConsultBack/internal/journey"
	"github.com/nutrihz/ConsultBack/internal/middleware"
	"github.com/nutrihz/ConsultBack/internal/quiz"
	"github.com/nutrihz/ConsultBack/internal/repository"
	"github.com/nutrihz/ConsultBack/internal/services"
	analysisws "github.com/nutrihz/ConsultBack/internal/websocket"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	kycRepo := repository.NewKYCRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	otpRepo := repository.NewOTPRepository(db)

	var mailer services.Mailer = services.LogMailer{}
	if cfg.ResendAPIKey != "" {
		mailer = services.NewResendMailer("", cfg.ResendAPIKey, cfg.MailFromAddress)
	}

	otpService := services.NewOTPService(otpRepo, userRepo, services.LogSMSSender{}, mailer, cfg.OTPCountryCode)
	oauthService := services.NewGoogleOAuthService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	intakeService := services.NewIntakeService(db, profileRepo, kycRepo)
	appointmentService := services.NewAppointmentService(
		db, appointmentRepo, paymentRepo,
		services.NewSimulatedGateway(),
		cfg.ConsultationFee, cfg.WhatsAppPhone,
	)
	contactService := services.NewContactService(inquiryRepo, mailer, cfg.ContactInboxEmail)
	journeyService := journey.NewService(profileRepo, kycRepo, appointmentService)
	quizStore := quiz.NewStore()

	authHandler := handlers.NewAuthHandler(db, userRepo, profileRepo, otpService, oauthService, cfg.JWTSecret)
	quizHandler := handlers.NewQuizHandler(quizStore, kycRepo)
	journeyHandler := handlers.NewJourneyHandler(journeyService)
	registrationHandler := handlers.NewRegistrationHandler(intakeService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	contactHandler := handlers.NewContactHandler(contactService)
	reportHandler := handlers.NewReportHandler(kycRepo)
	contentHandler := handlers.NewContentHandler(cfg.CommunityLink)
	streamer := analysisws.NewStreamer()

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/otp/send", authHandler.SendOTP)
	auth.Post("/otp/verify", authHandler.VerifyOTP)
	auth.Get("/google", authHandler.GoogleAuthURL)
	auth.Get("/google/callback", authHandler.GoogleCallback)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)
	auth.Put("/profile", middleware.AuthRequired(cfg.JWTSecret), authHandler.UpdateProfile)

	api.Get("/journey", middleware.AuthOptional(cfg.JWTSecret), journeyHandler.Resolve)
	api.Post("/contact", middleware.AuthOptional(cfg.JWTSecret), contactHandler.Submit)

	content := api.Group("/content")
	content.Get("/faq", contentHandler.FAQ)
	content.Get("/community", contentHandler.Community)

	sessions := api.Group("/quiz/sessions", middleware.AuthOptional(cfg.JWTSecret))
	sessions.Post("", quizHandler.CreateSession)
	sessions.Get("/:id", quizHandler.GetSession)
	sessions.Put("/:id/answers", quizHandler.Answer)
	sessions.Post("/:id/next", quizHandler.Next)
	sessions.Post("/:id/back", quizHandler.Back)

	protected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))
	protected.Post("/registration", registrationHandler.Complete)
	protected.Get("/report", reportHandler.Get)

	appointments := protected.Group("/appointments")
	appointments.Post("", appointmentHandler.Book)
	appointments.Get("", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.Get)
	appointments.Post("/:id/pay", appointmentHandler.Pay)

	api.Use("/v1/processing/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	api.Get("/v1/processing/ws", websocket.New(streamer.Serve))

	return registerDocsRoutes(app, cfg)
}
