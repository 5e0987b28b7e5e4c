package main

import (
	"os"
	"strings"

	"github.com/caldwellfirm/leadserver/internal/config"
	"github.com/caldwellfirm/leadserver/internal/logging"
	"github.com/caldwellfirm/leadserver/internal/server"
	"github.com/caldwellfirm/leadserver/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logging.InitLogger(&logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}); err != nil {
		panic(err)
	}
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting lead dispatcher %s in %s mode", version.String(), cfg.Environment)

	// Missing credentials surface here at boot, but each channel also fails
	// independently at dispatch time, so the server still starts.
	if missing := cfg.MissingProviderVars(); len(missing) > 0 {
		logger.Warn("provider configuration incomplete, affected channels will fail: %s",
			strings.Join(missing, ", "))
	}

	srv := server.NewServer(cfg)
	srv.Init()

	logger.Info("Listening on port %s", cfg.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
