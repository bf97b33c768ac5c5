package api

import (
	"context"
	"errors"
	mrand "math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/joshhuu/data-navigator-ai/internal/auth"
	"github.com/joshhuu/data-navigator-ai/internal/catalog"
	"github.com/joshhuu/data-navigator-ai/internal/contact"
	"github.com/joshhuu/data-navigator-ai/internal/db"
	"github.com/joshhuu/data-navigator-ai/internal/models"
	"github.com/joshhuu/data-navigator-ai/internal/search"
)

// Store is the persistence the HTTP layer needs. *db.Store implements it.
type Store interface {
	AddToCart(ctx context.Context, userID uuid.UUID, datasetID string) (bool, error)
	RemoveFromCart(ctx context.Context, userID uuid.UUID, datasetID string) (bool, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
	ListCart(ctx context.Context, userID uuid.UUID) ([]db.CartEntry, error)
	InsertContactRequest(ctx context.Context, enq *contact.Enquiry) (uuid.UUID, error)
	UpsertDatasets(ctx context.Context, datasets []models.Dataset) (int, error)
	GetStats(ctx context.Context) (map[string]interface{}, error)
}

// Accounts signs users up and in. *auth.Service implements it.
type Accounts interface {
	Signup(ctx context.Context, req auth.SignupRequest) (*auth.AuthResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error)
}

type Server struct {
	Catalog  *catalog.Catalog
	Engine   *search.Engine
	Store    Store
	Accounts Accounts
	Echo     *echo.Echo

	adminSecret *auth.Secret

	rngMu sync.Mutex
	rng   *mrand.Rand
}

func NewServer(pool *pgxpool.Pool, cat *catalog.Catalog, keywords *search.KeywordTable) *Server {
	return newServer(cat, keywords, db.NewStore(pool), auth.NewService(pool))
}

func newServer(cat *catalog.Catalog, keywords *search.KeywordTable, store Store, accounts Accounts) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:5173"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		allowedOrigins = append(allowedOrigins, splitCSV(extra)...)
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Admin-Secret"},
	}))

	s := &Server{
		Catalog:  cat,
		Engine:   search.NewEngine(cat.Datasets, keywords),
		Store:    store,
		Accounts: accounts,
		Echo:     e,

		adminSecret: auth.NewSecret("ADMIN_SECRET"),
		rng:         mrand.New(mrand.NewSource(time.Now().UnixNano())),
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")

	// Catalog
	api.GET("/datasets", s.handleSearchDatasets)
	api.GET("/datasets/trending", s.handleTrending)
	api.GET("/datasets/:id", s.handleGetDataset)
	api.GET("/facets", s.handleFacets)
	api.GET("/analytics", s.handleAnalytics)
	api.GET("/compare", s.handleCompare)
	api.GET("/use-cases", s.handleListUseCases)
	api.GET("/use-cases/:id", s.handleGetUseCase)
	api.GET("/compliance/faq", s.handleFAQ)
	api.POST("/contact", s.handleContact)

	// Auth Routes
	api.POST("/auth/signup", s.handleSignup)
	api.POST("/auth/login", s.handleLogin)

	// Protected Routes (Cart)
	cart := api.Group("/cart")
	cart.Use(auth.Middleware)
	cart.GET("", s.handleGetCart)
	cart.POST("/checkout", s.handleCheckout)
	cart.GET("/compare", s.handleCompareCart)
	cart.POST("/:id", s.handleAddToCart)
	cart.DELETE("/:id", s.handleRemoveFromCart)
	cart.DELETE("", s.handleClearCart)

	// Admin Routes
	admin := api.Group("/admin")
	admin.Use(s.adminMiddleware)
	admin.GET("/stats", s.handleGetStats)
	admin.POST("/seed", s.handleSeed)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleSignup(c echo.Context) error {
	var req auth.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	resp, err := s.Accounts.Signup(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, auth.ErrUserExists):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		c.Logger().Errorf("Signup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	resp, err := s.Accounts.Login(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, auth.ErrInvalidCreds):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		c.Logger().Errorf("Login failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleContact(c echo.Context) error {
	var req contact.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	enq, err := contact.Prepare(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	id, err := s.Store.InsertContactRequest(c.Request().Context(), enq)
	if err != nil {
		c.Logger().Errorf("Failed to store contact request: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit request"})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"id":      id.String(),
		"status":  "received",
		"preview": enq.Preview,
	})
}

func (s *Server) handleGetStats(c echo.Context) error {
	stats, err := s.Store.GetStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, stats)
}

// handleSeed writes the loaded catalog into Postgres.
func (s *Server) handleSeed(c echo.Context) error {
	n, err := s.Store.UpsertDatasets(c.Request().Context(), s.Catalog.Datasets)
	if err != nil {
		c.Logger().Errorf("Seed failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Seed failed"})
	}
	return c.JSON(http.StatusOK, map[string]int{"upserted": n})
}

func (s *Server) confidence() float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return search.Confidence(s.rng)
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}

// splitCSV splits a comma-separated query parameter into trimmed non-empty strings.
func splitCSV(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func (s *Server) adminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		candidate := c.Request().Header.Get("X-Admin-Secret")
		if candidate == "" {
			if scheme, token, ok := strings.Cut(c.Request().Header.Get("Authorization"), " "); ok && strings.EqualFold(scheme, "Bearer") {
				candidate = token
			}
		}

		ok, err := s.adminSecret.Matches(candidate)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server admin configuration error"})
		}
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized admin access"})
		}
		return next(c)
	}
}
