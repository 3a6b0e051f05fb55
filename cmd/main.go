package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yungbote/crm-backend/internal/db"
	"github.com/yungbote/crm-backend/internal/graph"
	"github.com/yungbote/crm-backend/internal/handlers"
	"github.com/yungbote/crm-backend/internal/logger"
	"github.com/yungbote/crm-backend/internal/observability"
	"github.com/yungbote/crm-backend/internal/repos"
	"github.com/yungbote/crm-backend/internal/server"
	"github.com/yungbote/crm-backend/internal/services"
	"github.com/yungbote/crm-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownTracing := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "crm-backend",
		Environment: utils.GetEnv("ENVIRONMENT", "development", log),
	})
	if shutdownTracing != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracing(ctx)
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	customerRepo := repos.NewCustomerRepo(thePG, log)
	productRepo := repos.NewProductRepo(thePG, log)
	orderRepo := repos.NewOrderRepo(thePG, log)

	// Services
	log.Info("Setting up services from main...")
	customerService := services.NewCustomerService(thePG, log, customerRepo)
	productService := services.NewProductService(thePG, log, productRepo)
	orderService := services.NewOrderService(thePG, log, customerRepo, productRepo, orderRepo)

	// GraphQL schema
	log.Info("Setting up GraphQL schema from main...")
	resolver := graph.NewResolver(log, customerService, productService, orderService)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Error("Failed to parse GraphQL schema", "error", err)
		os.Exit(1)
	}

	// Handlers
	graphqlHandler := handlers.NewGraphQLHandler(log, schema)

	// Router
	log.Info("Setting up router from main...")
	allowOrigins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log), ",")
	router := server.NewRouter(server.RouterConfig{
		ServiceName:    "crm-backend",
		AllowOrigins:   allowOrigins,
		GraphQLHandler: graphqlHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
