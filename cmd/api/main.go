package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/auth"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/config"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/database"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/payments"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/repository"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/routes"
	"github.com/csmahmud99/krafti-summer-camp-school-server/internal/utils"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Connect to MongoDB
	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	logger.Info("Connected to MongoDB")

	repos := repository.NewMongoRepositories(client, cfg.DatabaseName)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	gateway := payments.NewStripeGateway(cfg.StripeSecretKey)
	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	// Initialize router
	router := routes.SetupRouter(repos, tokens, gateway, mailer, logger)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	// Wrap router with CORS
	handler := c.Handler(router)

	// Start server
	logger.Info("Server running", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
