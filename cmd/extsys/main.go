package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FulfillmentStatus represents the processing state of a forwarded transaction
type FulfillmentStatus string

const (
	StatusCompleted FulfillmentStatus = "COMPLETED"
	StatusRejected  FulfillmentStatus = "REJECTED"
	StatusAccepted  FulfillmentStatus = "ACCEPTED"
)

// FulfillRequest represents a transaction handed off for external fulfillment
type FulfillRequest struct {
	TransactionID   string `json:"transaction_id" binding:"required"`
	ReferenceNumber string `json:"reference_number" binding:"required"`
	TransactionType string `json:"transaction_type"`
	IsImmediate     bool   `json:"is_immediate"`
	Details         string `json:"details"`
}

// FulfillResponse represents the outcome of a fulfillment attempt
type FulfillResponse struct {
	TransactionID   string            `json:"transaction_id"`
	ReferenceNumber string            `json:"reference_number"`
	Status          FulfillmentStatus `json:"status"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	ErrorCode       string            `json:"error_code,omitempty"`
	ErrorMsg        string            `json:"error_msg,omitempty"`
	SystemID        string            `json:"system_id"`
	ProcessedAt     time.Time         `json:"processed_at"`
}

// StatusCheckResponse represents a fulfillment status lookup
type StatusCheckResponse struct {
	TransactionID string            `json:"transaction_id"`
	Status        FulfillmentStatus `json:"status"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
	ErrorCode     string            `json:"error_code,omitempty"`
	ErrorMsg      string            `json:"error_msg,omitempty"`
	SystemID      string            `json:"system_id"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status      string    `json:"status"`
	SystemID    string    `json:"system_id"`
	Timestamp   time.Time `json:"timestamp"`
	SuccessRate float64   `json:"success_rate"`
}

// MockExternalSystem simulates a downstream policy administration system
type MockExternalSystem struct {
	successRate float64
	minDelay    time.Duration
	maxDelay    time.Duration
	systemID    string
	rng         *rand.Rand
}

// NewMockExternalSystem creates a new mock system instance
func NewMockExternalSystem(successRate float64, minDelay, maxDelay time.Duration) *MockExternalSystem {
	return &MockExternalSystem{
		successRate: successRate,
		minDelay:    minDelay,
		maxDelay:    maxDelay,
		systemID:    "MOCK_EXTSYS_" + uuid.New().String()[:8],
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// simulateFulfillment simulates processing a forwarded transaction
func (m *MockExternalSystem) simulateFulfillment(req *FulfillRequest) *FulfillResponse {
	delay := m.randomDelay()

	// Immediate transactions get processed at the head of the queue
	if req.IsImmediate {
		delay = delay / 2
	}

	time.Sleep(delay)

	response := &FulfillResponse{
		TransactionID:   req.TransactionID,
		ReferenceNumber: req.ReferenceNumber,
		SystemID:        m.systemID,
		ProcessedAt:     time.Now(),
	}

	if m.shouldSucceed() {
		now := time.Now()
		response.Status = StatusCompleted
		response.CompletedAt = &now

		log.Info().
			Str("transaction_id", req.TransactionID).
			Str("reference_number", req.ReferenceNumber).
			Dur("delay", delay).
			Msg("Transaction fulfilled")
	} else {
		response.Status = StatusRejected
		response.ErrorCode = m.randomErrorCode()
		response.ErrorMsg = m.errorMessage(response.ErrorCode)

		log.Warn().
			Str("transaction_id", req.TransactionID).
			Str("reference_number", req.ReferenceNumber).
			Str("error_code", response.ErrorCode).
			Msg("Transaction fulfillment rejected")
	}

	return response
}

func (m *MockExternalSystem) randomDelay() time.Duration {
	delta := m.maxDelay - m.minDelay
	randomDelta := time.Duration(m.rng.Int63n(int64(delta)))
	return m.minDelay + randomDelta
}

func (m *MockExternalSystem) shouldSucceed() bool {
	return m.rng.Float64() < m.successRate
}

func (m *MockExternalSystem) randomErrorCode() string {
	errorCodes := []string{
		"POLICY_NOT_FOUND",
		"POLICY_LAPSED",
		"NETWORK_ERROR",
		"TIMEOUT",
		"VALIDATION_FAILED",
		"SYSTEM_REJECTED",
	}
	return errorCodes[m.rng.Intn(len(errorCodes))]
}

func (m *MockExternalSystem) errorMessage(code string) string {
	msgs := map[string]string{
		"POLICY_NOT_FOUND":  "No policy exists for the supplied identification number",
		"POLICY_LAPSED":     "The policy has lapsed and cannot be serviced",
		"NETWORK_ERROR":     "Network connectivity issue with the admin system",
		"TIMEOUT":           "Fulfillment timed out",
		"VALIDATION_FAILED": "The transaction details failed validation",
		"SYSTEM_REJECTED":   "The admin system rejected the transaction",
	}

	if msg, ok := msgs[code]; ok {
		return msg
	}
	return "Unknown error occurred"
}

// Handler struct holds the mock system and routes
type Handler struct {
	system *MockExternalSystem
}

func NewHandler(system *MockExternalSystem) *Handler {
	return &Handler{system: system}
}

// Fulfill handles single transaction fulfillment requests
func (h *Handler) Fulfill(c *gin.Context) {
	var req FulfillRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	log.Info().
		Str("transaction_id", req.TransactionID).
		Str("reference_number", req.ReferenceNumber).
		Str("transaction_type", req.TransactionType).
		Msg("Received fulfillment request")

	response := h.system.simulateFulfillment(&req)

	statusCode := http.StatusOK
	if response.Status == StatusRejected {
		statusCode = http.StatusAccepted // 202: accepted but rejected downstream
	}

	c.JSON(statusCode, response)
}

// GetStatus handles fulfillment status check requests
func (h *Handler) GetStatus(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	if transactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "transaction_id is required",
		})
		return
	}

	// Simulate API delay
	time.Sleep(100 * time.Millisecond)

	response := StatusCheckResponse{
		TransactionID: transactionID,
		SystemID:      h.system.systemID,
	}

	if h.system.shouldSucceed() {
		now := time.Now()
		response.Status = StatusCompleted
		response.CompletedAt = &now
	} else {
		response.Status = StatusRejected
		response.ErrorCode = "TIMEOUT"
		response.ErrorMsg = "Fulfillment timed out"
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(c *gin.Context) {
	// Simulate 5% downtime
	if h.system.rng.Float64() < 0.05 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  "Admin system temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		SystemID:    h.system.systemID,
		Timestamp:   time.Now(),
		SuccessRate: h.system.successRate,
	})
}

// UpdateConfig allows changing system behavior at runtime
func (h *Handler) UpdateConfig(c *gin.Context) {
	var config struct {
		SuccessRate *float64 `json:"success_rate"`
	}

	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if config.SuccessRate != nil {
		if *config.SuccessRate >= 0 && *config.SuccessRate <= 1.0 {
			h.system.successRate = *config.SuccessRate
			log.Info().Float64("rate", *config.SuccessRate).Msg("Updated success rate")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":          "Configuration updated",
		"success_rate": h.system.successRate,
	})
}

// SetupRouter configures all routes
func SetupRouter(handler *Handler) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", duration).
			Msg("Request processed")
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/transactions/fulfill", handler.Fulfill)
		v1.GET("/transactions/status/:transaction_id", handler.GetStatus)
		v1.GET("/health", handler.HealthCheck)
		v1.PUT("/config", handler.UpdateConfig)
	}

	router.GET("/health", handler.HealthCheck)

	return router
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	port := getEnv("PORT", "8082")
	successRate := getEnvFloat("SUCCESS_RATE", 1)
	minDelay := getEnvDuration("MIN_DELAY", 1*time.Second)
	maxDelay := getEnvDuration("MAX_DELAY", 5*time.Second)

	log.Info().
		Str("port", port).
		Float64("success_rate", successRate).
		Dur("min_delay", minDelay).
		Dur("max_delay", maxDelay).
		Msg("Starting Mock External Fulfillment System")

	system := NewMockExternalSystem(successRate, minDelay, maxDelay)
	handler := NewHandler(system)
	router := SetupRouter(handler)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var f float64
		if _, err := fmt.Sscanf(value, "%f", &f); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
