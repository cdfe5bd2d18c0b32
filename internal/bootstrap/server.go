package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/astralvoyages/spacebooking/api"
	"github.com/astralvoyages/spacebooking/config"
	"github.com/astralvoyages/spacebooking/internal/repository"
	"github.com/astralvoyages/spacebooking/internal/service/booking"
	"github.com/astralvoyages/spacebooking/internal/service/catalog"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, repo repository.BookingRepository, bookingSvc booking.BookingUseCase, catalogSvc catalog.CatalogUseCase) error {
	router := newRouter(cfg, repo, bookingSvc, catalogSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, repo repository.BookingRepository, bookingSvc booking.BookingUseCase, catalogSvc catalog.CatalogUseCase) *gin.Engine {
	router := gin.Default()

	v1 := router.Group("/api/v1")
	api.NewBookingHandler(bookingSvc, repo).Register(v1.Group("/bookings"))
	api.NewSessionHandler(repo).Register(v1.Group("/session"))
	api.NewCatalogHandler(catalogSvc).Register(v1)

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/spacebooking.swagger.json"),
		)))
	}

	return router
}
