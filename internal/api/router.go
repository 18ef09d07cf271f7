package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openboard/board-service/internal/api/handler"
	"github.com/openboard/board-service/internal/api/middleware"
	"github.com/openboard/board-service/internal/auth"
	"github.com/openboard/board-service/internal/auth/token"
	"github.com/openboard/board-service/internal/core/ports"
	"github.com/openboard/board-service/internal/core/service"
	mongodb "github.com/openboard/board-service/internal/infrastructure/db/mongo"
	redisdb "github.com/openboard/board-service/internal/infrastructure/db/redis"
)

// Options carries everything the router needs beyond its datastores.
type Options struct {
	JWTSecret        string
	TokenTTL         time.Duration
	AdminSignupToken string
	Audit            ports.AuditSink
	Logger           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("board"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	boardRepo := mongodb.NewBoardRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	boardCache := redisdb.NewBoardCache(rdb)

	codec := token.NewCodec([]byte(opts.JWTSecret), opts.TokenTTL)
	resolver := auth.NewResolver(codec, userRepo, opts.Logger)

	authService := service.NewAuthService(userRepo, codec, opts.AdminSignupToken, opts.Logger)
	boardService := service.NewBoardService(boardRepo, commentRepo, boardCache, resolver, opts.Audit, opts.Logger)
	commentService := service.NewCommentService(commentRepo, boardRepo, resolver, opts.Audit, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	boardHandler := handler.NewBoardHandler(boardService)
	commentHandler := handler.NewCommentHandler(commentService)
	bearer := middleware.BearerToken()

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/login", authHandler.Login)

	// --- Board routes (reads are public) ---
	v1 := e.Group("/v1")
	v1.GET("/boards", boardHandler.List)
	v1.GET("/boards/:id", boardHandler.Get)
	v1.GET("/boards/:id/comments", commentHandler.ListByBoard)
	v1.POST("/boards", boardHandler.Create, bearer)
	v1.PUT("/boards/:id", boardHandler.Update, bearer)
	v1.DELETE("/boards/:id", boardHandler.Delete, bearer)

	// --- Comment routes ---
	v1.POST("/comments", commentHandler.Create, bearer)
	v1.PUT("/comments/:id", commentHandler.Update, bearer)
	v1.DELETE("/comments/:id", commentHandler.Delete, bearer)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)         // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
