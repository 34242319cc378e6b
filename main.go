package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meteocli/config"
	"meteocli/datasource"
	"meteocli/forecast"
	"meteocli/render"
	"meteocli/report"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env with METEOCLI_CONFIG / METEOCLI_API_URL overrides
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configFile := flag.String("config", "", "Path to configuration file (default ~/.config/meteocli.toml)")
	described := flag.Bool("described", false, "Add a weather description column")
	legacyFilter := flag.Bool("legacy-filter", false, "Select upcoming hours by day-of-month and hour only")
	skipMissing := flag.Bool("skip-missing", false, "Skip hours with missing values instead of aborting")
	showCurrent := flag.Bool("current", false, "Print current conditions above the table")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	timeout := flag.Duration("timeout", 30*time.Second, "Overall request timeout")
	flag.Parse()

	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	cfg := loadConfig(*configFile)

	var source datasource.ForecastSource = datasource.NewOpenMeteoProvider(os.Getenv(config.EnvAPIURL))
	if *enableRateLimiting {
		// Open-Meteo asks non-commercial users to stay under 600 calls/minute
		source = datasource.NewRateLimitedForecastSource(source, 10, 1)
	}

	mode := render.ModeBasic
	if *described {
		mode = render.ModeDescribed
	}

	rep := report.New(source, mode)
	rep.ShowCurrent = *showCurrent
	if *legacyFilter {
		rep.Filter = forecast.FilterDayHour
	}
	if *skipMissing {
		rep.OnMissing = render.SkipOnMissing
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, *timeout)
	defer cancelTimeout()

	if err := rep.Run(ctx, os.Stdout, cfg.Location(), cfg.Elevation); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// loadConfig reads the location settings, falling back to the zero
// location when the file is missing or unreadable
func loadConfig(path string) config.Config {
	if path == "" {
		p, err := config.Path()
		if err != nil {
			log.Printf("Warning: %v, using default location", err)
			return config.Default()
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("Warning: %v, using default location", err)
		return config.Default()
	}
	return cfg
}
