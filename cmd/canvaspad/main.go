package main

import (
	"errors"
	"fmt"
	"io"
	stlog "log" // for fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/canvaspad/internal/app"
	"github.com/bethropolis/canvaspad/internal/config"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/spf13/pflag"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	flags := config.NewFlags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%v\n\n%s", err, flags.Usage())
		os.Exit(2)
	}
	if flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	cfg, cfgErr := config.Load(flags.ConfigFilePath, flags)

	logOutput, closeLog, err := openLog(cfg.Logger.FilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.FilePath, err)
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s", config.AppName, version)
	if cfgErr != nil {
		// Defaults are still usable; keep going.
		logger.Warnf("Config: %v", cfgErr)
	}
	logger.Debugf("Log level: %s, export dir: %s", cfg.Logger.Level, cfg.Export.Directory)

	canvasApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}
	if err := canvasApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

// openLog resolves the log destination: empty discards, "-" is stderr,
// anything else is a file opened for append.
func openLog(path string) (io.Writer, func(), error) {
	switch path {
	case "":
		return io.Discard, func() {}, nil
	case "-":
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
