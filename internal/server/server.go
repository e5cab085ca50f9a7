package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iwvelando/eoq-calculator/internal/config"
	"github.com/iwvelando/eoq-calculator/internal/eoq"
	"github.com/iwvelando/eoq-calculator/internal/export"
	"github.com/iwvelando/eoq-calculator/internal/report"
	"github.com/iwvelando/eoq-calculator/pkg/constants"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

const requestIDKey = "requestID"

type handler struct {
	logger         *zap.Logger
	app            *config.Configuration
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the web UI and the EOQ API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	maxRequestSize := cfg.RequestSizeBytes()
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	mode := cfg.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	h := &handler{
		logger:         logger,
		app:            cfg.App(),
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery(), h.requestLogger())

	api := router.Group("/api")
	{
		api.POST("/compute", h.handleCompute)
		api.POST("/export", h.handleExport)
		api.GET("/version", h.handleVersion)
	}

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	router.StaticFS("/assets", http.FS(sub))
	router.GET("/", func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})

	return router
}

// computeRequest mirrors the web form. Pointers distinguish omitted fields
// from zeros.
type computeRequest struct {
	AnnualDemand *float64 `json:"annualDemand"`
	OrderCost    *float64 `json:"orderCost"`
	HoldingCost  *float64 `json:"holdingCost"`
	WorkDays     *float64 `json:"workDays"`
}

type computeResponse struct {
	*report.Report
	Duration  string `json:"duration"`
	RequestID string `json:"requestId"`
}

type missingFieldError struct {
	field string
}

func (e *missingFieldError) Error() string {
	return e.field + " is required"
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (h *handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		h.logger.Debug("request served",
			zap.String("op", "server.request"),
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func (h *handler) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": h.version})
}

func (h *handler) handleCompute(c *gin.Context) {
	const op = "server.handleCompute"
	start := time.Now()

	rep, ok := h.computeReport(c, op)
	if !ok {
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("eoq computed",
		zap.String("op", op),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Float64("eoq", rep.Result.EOQ),
		zap.Int("curve_points", len(rep.Curve)),
		zap.Duration("duration", elapsed),
	)

	c.JSON(http.StatusOK, computeResponse{
		Report:    rep,
		Duration:  elapsed.String(),
		RequestID: c.GetString(requestIDKey),
	})
}

func (h *handler) handleExport(c *gin.Context) {
	const op = "server.handleExport"

	rep, ok := h.computeReport(c, op)
	if !ok {
		return
	}

	// Buffer the workbook so a writer failure still yields a JSON error.
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, rep.Table(), rep.Curve); err != nil {
		h.respondError(c, http.StatusInternalServerError, err, op)
		return
	}

	h.logger.Info("workbook exported",
		zap.String("op", op),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Int("bytes", buf.Len()),
	)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", constants.ExportFileName))
	c.Data(http.StatusOK, constants.ExportContentType, buf.Bytes())
}

// computeReport decodes the request and runs the computation, writing an
// error response and returning false on failure.
func (h *handler) computeReport(c *gin.Context, op string) (*report.Report, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxRequestSize)

	var req computeRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			h.respondError(c, http.StatusRequestEntityTooLarge,
				fmt.Errorf("request exceeds limit of %d bytes", h.maxRequestSize), op)
		case errors.Is(err, io.EOF):
			h.respondError(c, http.StatusBadRequest, errors.New("missing request body"), op)
		default:
			h.respondError(c, http.StatusBadRequest, fmt.Errorf("failed to decode input: %v", err), op)
		}
		return nil, false
	}

	required := []struct {
		name  string
		value *float64
	}{
		{eoq.KeyAnnualDemand, req.AnnualDemand},
		{eoq.KeyOrderCost, req.OrderCost},
		{eoq.KeyHoldingCost, req.HoldingCost},
	}
	for _, field := range required {
		if field.value == nil {
			h.respondError(c, http.StatusBadRequest, &missingFieldError{field: field.name}, op)
			return nil, false
		}
	}

	var workDays float64
	if req.WorkDays != nil {
		workDays = *req.WorkDays
		if workDays == 0 {
			// An explicit zero is invalid, not omitted.
			h.respondError(c, http.StatusBadRequest, &eoq.ValidationError{Field: eoq.KeyWorkDays, Minimum: constants.MinWorkDays}, op)
			return nil, false
		}
	}

	in := h.app.Input(*req.AnnualDemand, *req.OrderCost, *req.HoldingCost, workDays)
	rep, err := report.Compute(in, h.app.ReportOptions())
	if err != nil {
		var validationErr *eoq.ValidationError
		var domainErr *eoq.DomainError
		switch {
		case errors.As(err, &validationErr):
			h.respondError(c, http.StatusBadRequest, err, op)
		case errors.As(err, &domainErr):
			h.respondError(c, http.StatusUnprocessableEntity, err, op)
		default:
			h.respondError(c, http.StatusInternalServerError, err, op)
		}
		return nil, false
	}
	return rep, true
}

func (h *handler) respondError(c *gin.Context, status int, err error, op string) {
	resp := errorResponse{Error: err.Error()}
	var validationErr *eoq.ValidationError
	var missingErr *missingFieldError
	switch {
	case errors.As(err, &validationErr):
		resp.Field = validationErr.Field
	case errors.As(err, &missingErr):
		resp.Field = missingErr.field
	}

	h.logger.Error("eoq request failed",
		zap.String("op", op),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Int("status", status),
		zap.Error(err),
	)

	c.AbortWithStatusJSON(status, resp)
}
