package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron"
	"go.uber.org/zap"

	"blackcoffee-backend/internal/config"
	"blackcoffee-backend/internal/database"
	"blackcoffee-backend/internal/email"
	"blackcoffee-backend/internal/handlers"
	"blackcoffee-backend/internal/jobs"
	"blackcoffee-backend/internal/middleware"
	"blackcoffee-backend/internal/models"
	"blackcoffee-backend/internal/notify"
	"blackcoffee-backend/internal/upload"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer db.Close(context.Background())
	log.Info("connected to mongodb", zap.String("database", cfg.MongoDB))

	mail, err := email.NewService(email.Config{
		Provider:       cfg.EmailProvider,
		SMTPHost:       cfg.SMTPHost,
		SMTPPort:       cfg.SMTPPort,
		SMTPUser:       cfg.SMTPUser,
		SMTPPass:       cfg.SMTPPass,
		From:           cfg.SMTPFrom,
		SendGridAPIKey: cfg.SendGridAPIKey,
	}, log)
	if err != nil {
		log.Fatal("email service init failed", zap.Error(err))
	}

	notifier := notify.NewService(func(ctx context.Context, n models.Notification) error {
		_, err := db.Notifications().InsertOne(ctx, n)
		return err
	}, log)

	var images *upload.Cloudinary
	if cfg.CloudinaryCloudName != "" {
		images, err = upload.New(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatal("cloudinary init failed", zap.Error(err))
		}
		log.Info("cloudinary uploads enabled", zap.String("cloud", cfg.CloudinaryCloudName))
	} else {
		log.Info("cloudinary not configured, uploads go to gridfs")
	}

	h := handlers.New(db, log, []byte(cfg.JWTSecret), cfg.BaseURL, mail, notifier, images)

	scheduler := cron.New()
	reminders := jobs.NewReminders(db, notifier, log)
	if err := scheduler.AddFunc("@midnight", reminders.CheckStaleOrders); err != nil {
		log.Fatal("cron registration failed", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")

	// Public routes.
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/forgot-password", h.ForgotPassword)
	api.POST("/auth/reset-password", h.ResetPassword)
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/news", h.ListNews)
	api.GET("/news/:id", h.GetNews)
	api.GET("/images/:id", h.GetImage)

	// Routes that require a valid token. Admin-only handlers check the
	// role themselves.
	authed := api.Group("")
	authed.Use(middleware.Auth([]byte(cfg.JWTSecret)))
	{
		authed.GET("/auth/verify", h.Verify)
		authed.GET("/auth/profile", h.GetProfile)
		authed.PUT("/auth/profile", h.UpdateProfile)
		authed.DELETE("/auth/delete", h.DeleteAccount)

		authed.GET("/cart", h.GetCart)
		authed.POST("/cart", h.SaveCart)
		authed.PUT("/cart", h.UpdateCart)
		authed.DELETE("/cart", h.ClearCart)
		authed.POST("/cart/merge", h.MergeCart)

		authed.GET("/orders", h.ListOrders)
		authed.POST("/orders", h.CreateOrder)

		authed.POST("/products", h.CreateProduct)
		authed.PUT("/products/:id", h.UpdateProduct)
		authed.DELETE("/products/:id", h.DeleteProduct)

		authed.POST("/news", h.CreateNews)
		authed.PUT("/news/:id", h.UpdateNews)
		authed.DELETE("/news/:id", h.DeleteNews)

		authed.GET("/images", h.ListImages)
		authed.POST("/upload/image", h.UploadImage)
		authed.DELETE("/upload/image", h.DeleteImage)

		authed.GET("/admin/stats", h.AdminStats)
		authed.GET("/admin/notifications", h.GetNotifications)
		authed.PUT("/admin/notifications", h.UpdateNotification)
		authed.GET("/admin/logs", h.GetAdminLogs)
		authed.POST("/admin/logs", h.CreateAdminLog)
	}

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
