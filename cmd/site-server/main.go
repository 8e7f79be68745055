package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Its-donkey/landing/internal/site/config"
	"github.com/Its-donkey/landing/internal/site/server"
	"github.com/Its-donkey/landing/logging"
)

func main() {
	configPath := flag.String("config", "landing.yml", "path to the YAML config; LANDING_* environment variables override it")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "site-server: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	writers := []io.Writer{os.Stdout}
	if cfg.LogDir != "" {
		fw, err := logging.NewFileWriter(logging.FileOptions{Dir: cfg.LogDir, Name: "site.log"})
		if err != nil {
			return err
		}
		defer fw.Close()
		writers = append(writers, fw)
	}
	logger := logging.New("site", logging.ParseLevel(cfg.LogLevel), writers...)

	srv, err := server.New(server.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
