//go:build js && wasm

package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"github.com/san-kum/pagefx/internal/config"
	"github.com/san-kum/pagefx/internal/web"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := config.DefaultConfig()
	cfg.Seed = 0

	web.OnReady(js.Global().Get("document"), func() {
		p := web.Mount(cfg, logger)
		logger.Info("page mounted",
			"intro", p.Intro != nil,
			"parallax", p.Parallax != nil,
			"particles", p.Animator != nil,
			"contact", p.Contact != nil,
		)
	})

	// Prevent the Go program from exiting
	select {}
}
