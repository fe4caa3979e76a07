package main

import (
	"greeter/internal/config"
	"greeter/internal/greeting"
	"greeter/internal/server"
	"greeter/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Fatal parsing config: %v", err)
	}

	fmtr, err := greeting.New(cfg.Greeting.Template)
	if err != nil {
		logger.Fatalf("Fatal compiling greeting template: %v", err)
	}

	srv := server.NewServer(fmtr)
	if err := srv.Start(cfg.Addr()); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
