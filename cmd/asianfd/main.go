// Command asianfd prices Asian options by finite differences: it runs
// the configured (equation × scheme × option) combinations and writes
// the solution tables as CSV files.
//
// Usage:
//
//	asianfd -config config/main.yaml -out data/tables [-equation H|W] [-scheme explicit|cn]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/1570590/mn-valoracio-d-opcions-financeres/config"
	"github.com/1570590/mn-valoracio-d-opcions-financeres/export"
	"github.com/1570590/mn-valoracio-d-opcions-financeres/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("asianfd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "config/main.yaml", "YAML configuration file")
	outDir := fs.String("out", "data/tables", "directory for CSV tables")
	equation := fs.String("equation", "", "restrict to one equation: H or W")
	scheme := fs.String("scheme", "", "restrict to one scheme: explicit or cn")
	verbose := fs.Bool("v", false, "verbose (development) logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log, err := buildLogger(*verbose)
	if err != nil {
		fmt.Fprintln(stderr, "logger:", err)
		return 1
	}
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("loading configuration", zap.Error(err))
		return 1
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Error("creating output directory", zap.Error(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failures := 0
	for _, res := range pipeline.Run(ctx, cfg, log) {
		if skip(res.Combo, *equation, *scheme) {
			continue
		}
		if res.Err != nil {
			failures++
			continue
		}
		if err := writeTables(*outDir, cfg, res); err != nil {
			log.Error("writing tables", zap.String("combo", res.Combo.String()), zap.Error(err))
			failures++
		}
	}

	if failures > 0 {
		log.Warn("finished with failures", zap.Int("failed", failures))
		return 1
	}
	log.Info("finished")
	return 0
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// skip reports whether the result falls outside the -equation/-scheme
// filters.
func skip(c pipeline.Combo, equation, scheme string) bool {
	if equation != "" && !strings.EqualFold(equation, c.Equation.String()) {
		return true
	}
	if scheme != "" && !strings.EqualFold(scheme, c.Scheme.String()) {
		return true
	}
	return false
}

// writeTables emits the bounded table, the variable-changed table and,
// when configured, the raw unbounded one.
func writeTables(dir string, cfg *config.File, res pipeline.Result) error {
	base := fmt.Sprintf("%s_%s_%s", res.Equation, res.Scheme, res.Option)
	header := fmt.Sprintf("%s(x, tau)", res.Equation)

	ec, err := cfg.Equation(res.Equation)
	if err != nil {
		return err
	}
	if ec.ExportUnbounded {
		path := filepath.Join(dir, base+".csv")
		if err := export.WriteFile(path, res.Solution.X, res.Solution.Tau, res.Solution.Values, header); err != nil {
			return err
		}
	}

	path := filepath.Join(dir, base+"_acotat.csv")
	if err := export.WriteFile(path, res.BoundedX, res.Solution.Tau, res.Bounded, header); err != nil {
		return err
	}

	rHeader := fmt.Sprintf("%s(R, t)", res.Equation)
	path = filepath.Join(dir, base+"_canvi.csv")
	return export.WriteFile(path, res.R, res.Time, res.RBounded, rHeader)
}
