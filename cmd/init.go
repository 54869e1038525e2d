package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ai-solution/site-backend/internal/application"
	"github.com/ai-solution/site-backend/internal/application/commands"
	authCmd "github.com/ai-solution/site-backend/internal/application/commands/auth"
	"github.com/ai-solution/site-backend/internal/application/query"
	"github.com/ai-solution/site-backend/internal/infra/auth"
	"github.com/ai-solution/site-backend/internal/infra/config"
	infraDB "github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/mail"
	"github.com/ai-solution/site-backend/internal/infra/storage"
	"github.com/ai-solution/site-backend/internal/presentation/rest"
	"github.com/ai-solution/site-backend/pkg/db"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	// DB
	dbConfig := db.NewConfig()
	pool, err := pgxpool.New(context.Background(), dbConfig.GetDSN())
	if err != nil {
		log.Panicf("failed to create pool: %v", err)
	}
	if err = pool.Ping(context.Background()); err != nil {
		log.Panicf("failed to connect to db: %v", err)
	}
	if err = infraDB.Migrate(context.Background(), pool); err != nil {
		log.Panicf("failed to run migrations: %v", err)
	}
	uowFactory := db.NewUoWFactory(pool)

	// Configs
	serverConfig := config.NewServerConfig()
	authConfig := auth.NewConfig()
	mailConfig := mail.NewMailConfig()

	identity := auth.NewIdentityProvider(authConfig)
	mailServer := mail.NewMailServer(mailConfig)

	// AWS
	cfg, err := awsConfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Panic("can't load aws config", err)
	}
	s3 := storage.NewStorage(cfg)

	handlers := &application.Collection{
		Auth:               authCmd.NewAuth(uowFactory, authConfig, identity, mailServer),
		SubmitInquiry:      commands.NewSubmitInquiry(uowFactory),
		SetInquiryStatus:   commands.NewSetInquiryStatus(uowFactory),
		ReplyInquiry:       commands.NewReplyInquiry(uowFactory, mailServer),
		DeleteInquiry:      commands.NewDeleteInquiry(uowFactory),
		CreateArticle:      commands.NewCreateArticle(uowFactory, s3),
		UpdateArticle:      commands.NewUpdateArticle(uowFactory, s3),
		DeleteArticle:      commands.NewDeleteArticle(uowFactory),
		CreateEvent:        commands.NewCreateEvent(uowFactory, s3),
		UpdateEvent:        commands.NewUpdateEvent(uowFactory, s3),
		DeleteEvent:        commands.NewDeleteEvent(uowFactory),
		SubmitFeedback:     commands.NewSubmitFeedback(uowFactory),
		SetFeedbackStatus:  commands.NewSetFeedbackStatus(uowFactory),
		DeleteFeedback:     commands.NewDeleteFeedback(uowFactory),
		UploadGalleryImage: commands.NewUploadGalleryImage(uowFactory, s3),
		DeleteGalleryImage: commands.NewDeleteGalleryImage(uowFactory, s3),
		ListInquiries:      query.NewListInquiries(uowFactory),
		GetInquiry:         query.NewGetInquiry(uowFactory),
		ExportInquiries:    query.NewExportInquiries(uowFactory),
		ListArticles:       query.NewListArticles(uowFactory),
		GetArticle:         query.NewGetArticle(uowFactory),
		ListEvents:         query.NewListEvents(uowFactory),
		GetEvent:           query.NewGetEvent(uowFactory),
		ListFeedback:       query.NewListFeedback(uowFactory),
		ListGalleryImages:  query.NewListGalleryImages(uowFactory),
		GetMetrics:         query.NewGetMetrics(uowFactory),
		DBHealth:           query.NewDBHealth(pool),
	}
	handler := rest.NewServer(handlers)
	app := fiber.New(fiber.Config{
		IdleTimeout:  5 * time.Second,
		BodyLimit:    serverConfig.BodyLimit,
		ErrorHandler: rest.ErrorHandler,
	})
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: serverConfig.OriginAllowed,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	rest.RegisterHandlers(app, handler, identity)

	go func() {
		if err := app.Listen(serverConfig.Host + ":" + serverConfig.Port); err != nil {
			log.Panic(err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	fmt.Println("Gracefully shutting down...")
	_ = app.Shutdown()

	fmt.Println("Running cleanup tasks...")

	uowFactory.Pool.Close()
	fmt.Println("Fiber was successfully shutdown.")
}
