// cmd/tidehx/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"
	"path/filepath"

	"github.com/bethropolis/tidehx/internal/app"
	"github.com/bethropolis/tidehx/internal/config"
	"github.com/bethropolis/tidehx/internal/logger"
)

// Version is set at build time.
var Version = "dev"

func main() {
	flags := config.NewFlags(config.AppName)
	args, err := flags.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, Version)
		return
	}

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)

	// --- Logger Initialization ---
	logPath := cfg.Logger.LogFilePath
	if logPath == "" {
		logPath = filepath.Join(os.TempDir(), config.DefaultLogFileName)
	}
	if logPath == "-" {
		logger.Setup(cfg.Logger, os.Stderr)
	} else {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", logPath, err)
		}
		defer logFile.Close()
		logger.Setup(cfg.Logger, logFile)
	}

	logger.Infof("Starting %s %s...", config.AppName, Version)
	if cfgErr != nil {
		logger.Warnf("Config: %v (using defaults)", cfgErr)
	}
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	watchPath := *flags.ConfigFilePath
	if watchPath == "" {
		watchPath = config.DefaultPath()
	}

	// --- Create and Run App ---
	editorApp, err := app.NewApp(app.Options{FilePath: filePath, Config: cfg, ConfigPath: watchPath})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := editorApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
