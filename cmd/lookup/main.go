// Command lookup performs a one-shot weather lookup and prints the themed
// report to stdout, including the alert banner when one is raised.
//
// Usage:
//
//	go run ./cmd/lookup -city London
//	go run ./cmd/lookup -city Dubai -key $OWM_API_KEY -timeout 5s
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/skycast/weather-lookup/internal/adapter/openweather"
	"github.com/skycast/weather-lookup/internal/domain"
)

func main() {
	var (
		apiKey  = flag.String("key", "", "OpenWeatherMap API key (overrides OWM_API_KEY env)")
		city    = flag.String("city", "", "City name to look up")
		timeout = flag.Duration("timeout", 10*time.Second, "HTTP request timeout")
	)
	flag.Parse()

	if *city == "" {
		fmt.Fprintln(os.Stderr, "error: -city is required")
		os.Exit(2)
	}

	_ = godotenv.Load()
	key := resolveAPIKey(*apiKey)
	if key == "" {
		fmt.Fprintln(os.Stderr, "error: API key is required. Use -key or set OWM_API_KEY.")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := openweather.NewClient(key, "", *timeout, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	obs, err := client.CurrentByCity(ctx, *city)
	if err != nil {
		if errors.Is(err, domain.ErrCityNotFound) {
			fmt.Fprintf(os.Stderr, "error: no match for city %q\n", *city)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printReport(obs)
}

// resolveAPIKey returns the API key following the priority chain:
// flag > environment variable > empty string.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("OWM_API_KEY")
}

func printReport(obs domain.Observation) {
	theme := domain.ClassifyCondition(obs.ConditionCode)

	fmt.Printf("\n%s  Weather in %s, %s\n", theme.Icon, obs.City, obs.Country)
	fmt.Println("───────────────────────────────────")

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Temperature:\t%.1f °C\n", obs.TemperatureC)
	fmt.Fprintf(tw, "Feels like:\t%.1f °C\n", obs.FeelsLikeC)
	fmt.Fprintf(tw, "Humidity:\t%d%%\n", obs.HumidityPct)
	fmt.Fprintf(tw, "Wind:\t%.1f m/s\n", obs.WindSpeedMPS)
	fmt.Fprintf(tw, "Condition:\t%s\n", obs.Description)
	tw.Flush()

	if alert, ok := domain.EvaluateAlert(obs.TemperatureC, obs.ConditionCode); ok {
		fmt.Printf("\n[%s] %s\n", alert.Category, alert.Recommendation)
	}

	fmt.Println()
}
