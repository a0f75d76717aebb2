package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/echoflaresat/subsolar"
	"github.com/echoflaresat/subsolar/almanac"
	"github.com/echoflaresat/subsolar/earth"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type config struct {
	timeStr   *string
	ellipsoid *string

	lat         *float64
	lon         *float64
	alt         *float64
	stationFile *string

	track *time.Duration
	step  *time.Duration

	asJSON   *bool
	showHelp *bool
}

// stationConfig is the YAML schema for -station files.
type stationConfig struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"lat"`
	Longitude float64 `yaml:"lon"`
	Altitude  float64 `yaml:"alt"`
	Ellipsoid string  `yaml:"ellipsoid"`
}

func defineFlags() config {
	return config{
		timeStr:   flag.String("time", "", "Instant in RFC3339 format (e.g., 2025-08-02T15:04:05Z); defaults to now"),
		ellipsoid: flag.String("ellipsoid", "WGS84", "Reference ellipsoid (WGS84, WGS72, GRS80, IAU76)"),

		lat:         flag.Float64("lat", 0.0, "Station latitude in degrees"),
		lon:         flag.Float64("lon", 0.0, "Station longitude in degrees"),
		alt:         flag.Float64("alt", 0.0, "Station altitude in meters"),
		stationFile: flag.String("station", "", "YAML station file (overrides -lat/-lon/-alt)"),

		track: flag.Duration("track", 0, "Sample the sub-solar track for this long (0 for a single fix)"),
		step:  flag.Duration("step", time.Hour, "Sample interval for -track"),

		asJSON:   flag.Bool("json", false, "Emit JSON instead of text"),
		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Subsolar - Sub-Solar Point Calculator

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Instant", []string{"time", "ellipsoid"})
	printGroup("Station", []string{"lat", "lon", "alt", "station"})
	printGroup("Track", []string{"track", "step"})
	printGroup("Output", []string{"json"})
	printGroup("Misc", []string{"h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-10s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	instant := parseTimeOrExit(*cfg.timeStr)

	ell, err := earth.ByName(*cfg.ellipsoid)
	if err != nil {
		log.Fatal(err)
	}

	station, haveStation := loadStation(cfg, &ell)

	if *cfg.track > 0 {
		fixes := sampleTrack(instant, *cfg.track, *cfg.step, ell)
		printTrack(fixes, *cfg.asJSON)
		return
	}

	calc := subsolar.New().SetEllipsoid(ell).SetInstant(instant)
	fix := calc.Point()

	if !haveStation {
		if *cfg.asJSON {
			printJSON(fix)
		} else {
			printFix(fix)
		}
		return
	}

	calc.SetStation(station)
	bearing, err := calc.Bearing()
	if err != nil {
		log.Fatal(err)
	}
	rise, set := almanac.RiseSet(station.Latitude, station.Longitude, instant)

	if *cfg.asJSON {
		printJSON(stationReport{
			Fix:     fix,
			Station: station,
			Bearing: bearing,
			Sunrise: rise,
			Sunset:  set,
		})
		return
	}
	printFix(fix)
	printStation(station, bearing, rise, set)
}

// stationReport is the JSON shape for a fix observed from a station.
type stationReport struct {
	Fix     subsolar.Fix   `json:"fix"`
	Station subsolar.Point `json:"station"`
	Bearing float64        `json:"bearing"`
	Sunrise time.Time      `json:"sunrise"`
	Sunset  time.Time      `json:"sunset"`
}

func parseTimeOrExit(timeStr string) time.Time {
	if timeStr == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		log.Fatalf("Invalid time format: %v", err)
	}
	return t
}

// loadStation resolves the observer station from -station or -lat/-lon.
// A station file may also name the ellipsoid; that overrides -ellipsoid.
func loadStation(cfg config, ell *earth.Ellipsoid) (subsolar.Point, bool) {
	if *cfg.stationFile != "" {
		raw, err := os.ReadFile(*cfg.stationFile)
		if err != nil {
			log.Fatalf("Read station file: %v", err)
		}
		var sf stationConfig
		if err := yaml.Unmarshal(raw, &sf); err != nil {
			log.Fatalf("Parse station file: %v", err)
		}
		if sf.Ellipsoid != "" {
			e, err := earth.ByName(sf.Ellipsoid)
			if err != nil {
				log.Fatal(err)
			}
			*ell = e
		}
		return subsolar.Point{Latitude: sf.Latitude, Longitude: sf.Longitude, Altitude: sf.Altitude}, true
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["lat"] || set["lon"] {
		return subsolar.Point{Latitude: *cfg.lat, Longitude: *cfg.lon, Altitude: *cfg.alt}, true
	}
	return subsolar.Point{}, false
}

// sampleTrack computes fixes at step intervals across the span, fanning
// the independent computations out across the available cores.
func sampleTrack(start time.Time, span, step time.Duration, ell earth.Ellipsoid) []subsolar.Fix {
	if step <= 0 {
		step = time.Hour
	}
	n := int(span/step) + 1
	fixes := make([]subsolar.Fix, n)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range fixes {
		i := i
		g.Go(func() error {
			fixes[i] = subsolar.Compute(start.Add(time.Duration(i)*step), ell)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	return fixes
}

func printFix(fix subsolar.Fix) {
	epoch := time.Unix(0, int64(fix.Time*1e9)).UTC()
	fmt.Printf("time      %s\n", epoch.Format(time.RFC3339))
	fmt.Printf("position  %+.4f° %+.4f°\n", fix.Latitude, fix.Longitude)
	fmt.Printf("altitude  %.0f m\n", fix.Altitude)
	fmt.Printf("speed     %.1f m/s\n", fix.Speed)
	fmt.Printf("heading   %.0f°\n", fix.Heading)
	fmt.Printf("fix       %s (%s)\n", fix.Quality, fix.Source)
}

func printStation(station subsolar.Point, bearing float64, rise, set time.Time) {
	fmt.Printf("station   %+.4f° %+.4f°\n", station.Latitude, station.Longitude)
	fmt.Printf("bearing   %.1f°\n", bearing)
	if rise.IsZero() && set.IsZero() {
		fmt.Println("sun       does not rise or set today")
		return
	}
	fmt.Printf("sunrise   %s\n", rise.Format(time.RFC3339))
	fmt.Printf("sunset    %s\n", set.Format(time.RFC3339))
}

func printTrack(fixes []subsolar.Fix, asJSON bool) {
	if asJSON {
		printJSON(fixes)
		return
	}
	for _, fix := range fixes {
		epoch := time.Unix(0, int64(fix.Time*1e9)).UTC()
		fmt.Printf("%s  %+9.4f° %+9.4f°  %.1f m/s\n",
			epoch.Format(time.RFC3339), fix.Latitude, fix.Longitude, fix.Speed)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Encode JSON: %v", err)
	}
}
