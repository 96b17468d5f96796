// Command metar decodes METAR reports from the command line. It decodes a
// report passed as arguments or on stdin, or fetches the latest report for a
// station from aviationweather.gov.
//
// Usage:
//
//	go run ./cmd/metar "KJFK 261251Z 21016KT 10SM OVC250 01/M04 A3010"
//	echo "EFHK 261250Z 29008KT CAVOK 12/07 Q1021" | go run ./cmd/metar
//	go run ./cmd/metar -station KJFK
//	go run ./cmd/metar -station KJFK -json
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/metar-decode-service/internal/adapter/noaa"
	"github.com/couchcryptid/metar-decode-service/internal/config"
	"github.com/couchcryptid/metar-decode-service/internal/metar"
	"github.com/couchcryptid/metar-decode-service/internal/observability"
	"github.com/joho/godotenv"
)

func main() {
	station := flag.String("station", "", "ICAO station to fetch the latest report for")
	asJSON := flag.Bool("json", false, "print the decoded observation as JSON")
	flag.Parse()

	if code := run(*station, *asJSON, flag.Args()); code != 0 {
		os.Exit(code)
	}
}

func run(station string, asJSON bool, args []string) int {
	raw, observedAt, err := resolveReport(station, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	obs, err := metar.DecodeReport(raw, observedAt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: decode report: %v\n", err)
		return 1
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(obs); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Println(strings.TrimSpace(raw))
	fmt.Println()
	printObservation(os.Stdout, obs)
	return 0
}

// resolveReport obtains the raw report text, either from the upstream API or
// from the arguments/stdin, along with its observation instant.
func resolveReport(station string, args []string) (string, time.Time, error) {
	if station != "" {
		_ = godotenv.Load()
		cfg, err := config.Load()
		if err != nil {
			return "", time.Time{}, err
		}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		client := noaa.NewClient(cfg.NOAABaseURL, cfg.NOAATimeout, observability.NewMetrics(), logger)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.NOAATimeout)
		defer cancel()

		msg, err := client.FetchLatest(ctx, station)
		if err != nil {
			return "", time.Time{}, err
		}
		observedAt := msg.ObservedAt
		if observedAt.IsZero() {
			observedAt = time.Now().UTC()
		}
		return msg.RawOb, observedAt, nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), time.Now().UTC(), nil
	}

	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("read stdin: %w", err)
	}
	return string(data), time.Now().UTC(), nil
}

// printObservation renders the decoded fields as labeled lines, omitting
// fields absent from the report.
func printObservation(w io.Writer, obs metar.Observation) {
	if !obs.ObservedAt.IsZero() {
		fmt.Fprintf(w, "Observed:  %s\n", obs.ObservedAt.UTC().Format(time.RFC3339))
	}

	if obs.Wind != nil {
		fmt.Fprintf(w, "Wind:      %s\n", describeWind(obs.Wind))
	}

	if obs.Visibility != nil {
		fmt.Fprintf(w, "Visibility: %s\n", describeVisibility(obs.Visibility))
	}

	if obs.Conditions != "" {
		fmt.Fprintf(w, "Weather:   %s\n", obs.Conditions)
	}

	if obs.CloudLayer != nil {
		if obs.CloudLayer.AltitudeFt != nil {
			fmt.Fprintf(w, "Sky:       %s at %d ft\n", obs.CloudLayer.Description, *obs.CloudLayer.AltitudeFt)
		} else {
			fmt.Fprintf(w, "Sky:       %s\n", obs.CloudLayer.Description)
		}
	}

	if obs.TemperatureF != nil {
		fmt.Fprintf(w, "Temp:      %d F (%d C)\n", *obs.TemperatureF, *obs.TemperatureC)
	}
	if obs.DewPointF != nil {
		fmt.Fprintf(w, "Dew point: %d F (%d C)\n", *obs.DewPointF, *obs.DewPointC)
	}
	if obs.RelativeHumidity != nil {
		fmt.Fprintf(w, "Humidity:  %d%%\n", *obs.RelativeHumidity)
	}
	if obs.HeatIndexF != nil {
		fmt.Fprintf(w, "Feels like: %d F (heat index)\n", *obs.HeatIndexF)
	}
	if obs.WindChillF != nil {
		fmt.Fprintf(w, "Feels like: %d F (wind chill)\n", *obs.WindChillF)
	}

	if obs.PressureInHg != nil {
		fmt.Fprintf(w, "Pressure:  %.2f inHg (%d hPa)\n", *obs.PressureInHg, *obs.PressureHPa)
	}
}

func describeWind(w *metar.Wind) string {
	switch w.Direction {
	case metar.WindCalm:
		return "calm"
	case metar.WindVariable:
		return describeSpeed("variable direction", w)
	default:
		return describeSpeed("out of the "+w.Direction, w)
	}
}

func describeSpeed(prefix string, w *metar.Wind) string {
	s := prefix
	if w.SpeedMPH != nil {
		s += fmt.Sprintf(" at %d mph", *w.SpeedMPH)
	}
	if w.GustMPH != nil {
		s += fmt.Sprintf(", gusting to %d mph", *w.GustMPH)
	}
	return s
}

func describeVisibility(v *metar.Visibility) string {
	miles := strings.TrimSuffix(fmt.Sprintf("%.1f", v.Miles), ".0")
	switch v.Qualifier {
	case metar.VisibilityAtLeast:
		return "at least " + miles + " mi"
	case metar.VisibilityAtMost:
		return "at most " + miles + " mi"
	default:
		return miles + " mi"
	}
}
