package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/gahette/judo-library/internal/config"
	"github.com/gahette/judo-library/internal/handler"
	"github.com/gahette/judo-library/internal/httperr"
	"github.com/gahette/judo-library/internal/middleware"
	"github.com/gahette/judo-library/internal/repository"
	"github.com/gahette/judo-library/internal/service"
)

type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) *Server {
	userRepo := repository.NewUserRepository(db, logger)
	techniqueRepo := repository.NewTechniqueRepository(db, logger)
	return newServer(userRepo, techniqueRepo, cfg, logger)
}

// newServer wires the full stack on top of the given repositories, so tests
// can run the router against in-memory fakes.
func newServer(userRepo repository.UserRepository, techniqueRepo repository.TechniqueRepository, cfg *config.Config, logger *zap.Logger) *Server {
	router := gin.Default()

	errs := httperr.NewWriter(cfg.Errors.Verbosity, logger)
	hasher := service.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.TokenTTL())

	authService := service.NewAuthService(userRepo, hasher, tokens, logger)
	userService := service.NewUserService(userRepo, hasher, logger)
	techniqueService := service.NewTechniqueService(techniqueRepo, logger)

	authHandler := handler.NewAuthHandler(authService, errs, logger)
	userHandler := handler.NewUserHandler(userService, errs, logger)
	techniqueHandler := handler.NewTechniqueHandler(techniqueService, errs, logger)

	authRequired := middleware.Auth(tokens, errs)

	// Ping route for health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	router.POST("/auth/login", authHandler.Login)

	users := router.Group("/users", authRequired)
	{
		users.GET("", userHandler.GetAll)
		users.GET("/:id", userHandler.Get)
		users.PUT("", userHandler.Create)
		users.PATCH("/:id", userHandler.Update)
		users.POST("/untrash/:id", userHandler.Untrash)
		users.DELETE("/trash/:id", userHandler.Trash)
		users.DELETE("/:id", userHandler.Delete)
	}

	techniques := router.Group("/techniques")
	techniques.GET("", techniqueHandler.GetAll)
	techniques.GET("/:id", techniqueHandler.Get)

	writes := techniques
	if cfg.Auth.ProtectTechniques {
		writes = router.Group("/techniques", authRequired)
	}
	{
		writes.PUT("", techniqueHandler.Create)
		writes.PATCH("/:id", techniqueHandler.Update)
		writes.POST("/untrash/:id", techniqueHandler.Untrash)
		writes.DELETE("/trash/:id", techniqueHandler.Trash)
		writes.DELETE("/:id", techniqueHandler.Delete)
	}

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotImplemented, "What the hell are you doing !?!")
	})

	return &Server{router: router, logger: logger}
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
