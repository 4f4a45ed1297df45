package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "rental_console/docs"
	"rental_console/internal/adapter/http/handlers"
	"rental_console/internal/adapter/http/middleware"
	"rental_console/internal/config"
	"rental_console/internal/usecase"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 30 * time.Second

// Handlers is every HTTP handler the console serves, plus the session
// resolver guarding them.
type Handlers struct {
	Auth        usecase.IAuthUseCase
	Session     *handlers.AuthHandler
	TeamMembers *handlers.TeamMemberHandler
	Clients     *handlers.ClientHandler
	Products    *handlers.ProductHandler
	Quotations  *handlers.QuotationHandler
	Orders      *handlers.OrderHandler
	Payments    *handlers.PaymentHandler
	Documents   *handlers.DocumentHandler
	Terms       *handlers.TermsHandler
}

// Run will start the server
func Run(ctx context.Context, cfg config.Config, logger *logrus.Logger) error {
	h, cleanup, err := buildHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           NewRouter(h, cfg.CORSAllowedOrigins, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("port", cfg.Port).Info("[routes] listening")
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("[routes] server stopped")
	return nil
}

func NewRouter(h Handlers, allowedOrigins []string, logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, allowedOrigins, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h)

	// Every route below needs a live session
	console := v1.Group("", middleware.RequireSession(h.Auth))
	addTeamRoutes(console, h.TeamMembers)
	addClientRoutes(console, h.Clients)
	addProductRoutes(console, h.Products)
	addQuotationRoutes(console, h.Quotations)
	addOrderRoutes(console, h.Orders, h.Payments, h.Documents)
	addPaymentRoutes(console, h.Payments)
	addTermsRoutes(console, h.Terms)
	return router
}

func setMiddlewares(router *gin.Engine, allowedOrigins []string, logger logrus.FieldLogger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithField("panic", recovered).Error("[routes] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(allowedOrigins)))
}

// corsConfig allows every origin when none is configured.
func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition", "X-Archive-URL"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}
