package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/casedesk/case-servicing/internal/config"
	"github.com/casedesk/case-servicing/internal/handlers"
	"github.com/casedesk/case-servicing/internal/ratelimit"
	"github.com/casedesk/case-servicing/internal/refnum"
	"github.com/casedesk/case-servicing/internal/repository"
	"github.com/casedesk/case-servicing/internal/services"
	xhttp "github.com/casedesk/case-servicing/pkg/http"
	"github.com/casedesk/case-servicing/pkg/logger"
	"github.com/casedesk/case-servicing/pkg/pg"
	"github.com/casedesk/case-servicing/pkg/prom"
	"github.com/casedesk/case-servicing/pkg/redis"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {

	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	// transport (tcp for now)
	s := xhttp.NewServer(xhttp.DefaultServerOption)
	s.Server.ReadBufferSize = 1024 * 16
	s.Server.WriteBufferSize = 1024 * 16
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 5))
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Router = xhttp.CreateDefaultRouter()

	readConf := pg.Config{
		User:     config.Get().PostgresReadUser,
		Host:     config.Get().PostgresReadHost,
		Port:     config.Get().PostgresReadPort,
		Password: config.Get().PostgresReadPassword,
		Database: config.Get().PostgresReadDatabase,
	}
	writeConf := pg.Config{
		User:     config.Get().PostgresWriteUser,
		Host:     config.Get().PostgresWriteHost,
		Port:     config.Get().PostgresWritePort,
		Password: config.Get().PostgresWritePassword,
		Database: config.Get().PostgresWriteDatabase,
	}

	pgDebug := false
	if config.Get().AppEnv == "dev" {
		pgDebug = true
	}
	db, err := pg.CreateReadWrite(readConf, writeConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	redisAdap, err := redis.NewRedisAdapter("default", config.Get().RedisUniversalKeyPrefix, &redis.Options{
		Addrs:      []string{config.Get().RedisAddr},
		ClientName: "default",
		DB:         config.Get().RedisDatabase,
		Username:   config.Get().RedisUsername,
		Password:   config.Get().RedisPassword,
	})
	if err != nil {
		logger.Error("failed connecting to redis", "error", err)
		return
	}

	if config.Get().RateLimitEnable {
		limiter := ratelimit.New(
			redisAdap,
			config.Get().RateLimitRequests,
			time.Duration(config.Get().RateLimitWindowSeconds)*time.Second,
		)
		s.Use(handlers.RateLimitMiddleware(limiter))
	}

	if config.Get().PromNamespace != "" {
		host, _ := os.Hostname()
		if err := prom.Create(host, config.Get().AppEnv, config.Get().PromNamespace); err != nil {
			logger.Error("failed registering metrics", "error", err)
		}
		if config.Get().AppDebugMetricsAddr != "" {
			go prom.ListenAndServer(config.Get().AppDebugMetricsAddr, config.Get().AppDebugMetricsURI)
		}
		s.Use(func(next xhttp.RequestHandler) xhttp.RequestHandler {
			return func(ctx *xhttp.RequestCtx) {
				start := time.Now()
				next(ctx)
				prom.ObserveRequestDuration(string(ctx.Path()), time.Since(start).Seconds())
			}
		})
	}

	caseRepo := repository.NewCaseRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	transactionTypeRepo := repository.NewTransactionTypeRepository(db)

	generator := refnum.NewGenerator()

	// services
	caseService := services.NewCaseService(caseRepo, generator)
	interactionService := services.NewInteractionService(interactionRepo, caseRepo, generator)
	transactionService := services.NewTransactionService(transactionRepo, caseRepo, interactionRepo, transactionTypeRepo, generator)
	transactionTypeService := services.NewTransactionTypeService(transactionTypeRepo)
	healthService := services.NewHealthService(db)

	// v1 handlers
	caseHandler := handlers.NewCaseHandler(caseService)
	interactionHandler := handlers.NewInteractionHandler(interactionService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	transactionTypeHandler := handlers.NewTransactionTypeHandler(transactionTypeService)
	healthHandler := handlers.NewHealthHandler(healthService)

	g := s.Router.Group("/api/v1")
	handlers.RegisterCaseRoutes(g, caseHandler)
	handlers.RegisterInteractionRoutes(g, interactionHandler)
	handlers.RegisterTransactionRoutes(g, transactionHandler)
	handlers.RegisterTransactionTypeRoutes(g, transactionTypeHandler)
	handlers.RegisterHealthRoutes(g, healthHandler)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		var err = s.ListenAndServe(config.Get().HttpListenAddr)
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	select {
	case <-c:
		s.Shutdown()
	}
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
