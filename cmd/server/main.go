package main

import (
	"database/sql"
	"net/http"

	"crm-be/internal/config"
	"crm-be/internal/customer"
	"crm-be/internal/db"
	"crm-be/internal/graph"
	"crm-be/internal/logger"
	"crm-be/internal/middleware"
	"crm-be/internal/order"
	"crm-be/internal/product"
	"crm-be/internal/user"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"go.uber.org/zap"
)

// Seams for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func setupRouter(srv http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", playground.Handler("GraphQL Playground", "/graphql"))
	mux.Handle("/graphql", middleware.AuthMiddleware(srv))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	chain := logger.RequestIDMiddleware(
		logger.LoggingMiddleware(
			middleware.RateLimitMiddleware(mux),
		),
	)

	return chain
}

func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	customerRepo := customer.NewRepository(database)
	customerSvc := customer.NewService(customerRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	resolver := &graph.Resolver{
		DB:          database,
		CustomerSvc: customerSvc,
		ProductSvc:  productSvc,
		OrderSvc:    orderSvc,
		UserSvc:     userSvc,
	}

	srv := handler.NewDefaultServer(graph.NewSchema(resolver))

	return setupRouter(srv)
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	logger.L().Info("GraphQL server running",
		zap.String("url", "http://localhost:"+cfg.AppPort+"/"),
	)
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
