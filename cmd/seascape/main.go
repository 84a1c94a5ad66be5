// Package main is the entry point for seascape.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/seascape/internal/config"
	"github.com/Faultbox/seascape/internal/game"
	"github.com/Faultbox/seascape/internal/logger"
)

func init() {
	// SDL and OpenGL must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, configPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if target := config.WriteConfigPath(); target != "" {
		path, err := cfg.Write(target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config write error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Seascape ===", zap.String("config", configPath))
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, configPath); err != nil {
		logger.Error("seascape exited with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("closed normally")
}

func run(ctx context.Context, cfg *config.Config, configPath string) error {
	g, err := game.New(cfg, configPath, config.WatchEnabled())
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer g.Close()

	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
