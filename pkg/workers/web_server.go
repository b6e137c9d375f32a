package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 10 * time.Second

type webServer struct {
	app  *fiber.App
	addr string
}

func NewWebServer(app *fiber.App, addr string) *webServer {
	return &webServer{
		app:  app,
		addr: addr,
	}
}

func (w *webServer) Name() string { return "web_server" }

func (w *webServer) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", w.Name(), "addr", w.addr)
	defer slog.Info("Worker stopped", "name", w.Name())

	errCh := make(chan error, 1)
	go func() {
		errCh <- w.app.Listen(w.addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listening on %s: %w", w.addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	if err := w.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	return nil
}
