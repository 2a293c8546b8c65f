package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/cache"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/shopify"
	"github.com/niksmo/storefront/internal/core/service"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	tagCache   *cache.TagCache
	backend    *shopify.Client
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	app.tagCache = cache.New()

	backend, err := shopify.NewClient(shopify.Config{
		StoreDomain:      app.cfg.StoreDomain,
		AccessToken:      app.cfg.AccessToken,
		HiddenProductTag: app.cfg.HiddenProductTag,
		Timeout:          app.cfg.BackendTimeout,
	}, app.tagCache)
	if err != nil {
		app.fallDown(op, err)
	}
	app.backend = backend
}

func (app *App) initCoreService() {
	app.service = service.New(
		app.backend,
		app.backend,
		app.backend,
		app.backend,
		app.backend,
		app.tagCache,
	)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterStorefront(mux, app.service)
	httphandler.RegisterCart(mux, app.service)
	httphandler.RegisterRevalidate(mux, app.service, app.cfg.RevalidationSecret)

	handler := httphandler.RequestID(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running",
		"site", app.cfg.SiteName, "addr", app.cfg.HTTPServerAddr)
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
