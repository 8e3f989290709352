// Command csvcheck validates delimited text files against a column schema.
//
// It loads a JSON run configuration and a JSON schema contract, lints both,
// then streams each input file through the validation engine. Diagnostics go
// to stderr; a completion notice per valid file goes to stdout.
//
// Usage:
//
//	csvcheck -config configs/csvcheck.json -schema configs/schema.json data.csv
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"csvcheck/internal/config"
	"csvcheck/internal/metrics"
	"csvcheck/internal/metrics/prompush"
	"csvcheck/internal/report"
	"csvcheck/internal/schema"
	"csvcheck/internal/validator"
)

func main() {
	var (
		cfgPath           string
		schemaPath        string
		lint              bool
		metricsBackendFlg string
		pushGatewayURLFlg string
	)

	flag.StringVar(&cfgPath, "config", "configs/csvcheck.json", "run config JSON path")
	flag.StringVar(&schemaPath, "schema", "configs/schema.json", "schema contract JSON path")
	flag.BoolVar(&lint, "lint", false, "validate the configuration and schema, then exit")
	flag.StringVar(&metricsBackendFlg, "metrics-backend", "", "metrics backend to use (pushgateway, none)")
	flag.StringVar(&pushGatewayURLFlg, "pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
	verbose := flag.Bool("v", false, "enable verbose logs")
	flag.Parse()

	cfg, reg := loadInputs(cfgPath, schemaPath)

	// Lint config against the schema it will run with.
	hasError := false
	for _, iss := range config.Validate(cfg, reg) {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		if iss.Severity == config.SeverityError {
			hasError = true
		}
	}
	if hasError {
		fatalf("configuration is invalid: %v", cfgPath)
	}
	if lint {
		log.Printf("configuration is valid: %v", cfgPath)
		os.Exit(0)
	}

	files := flag.Args()
	if len(files) == 0 {
		fatalf("missing input file argument\nusage: csvcheck [flags] FILE [FILE ...]")
	}

	initMetrics(metricsBackendFlg, pushGatewayURLFlg, *verbose)
	defer func() {
		if err := metrics.Flush(); err != nil {
			log.Printf("metrics: flush error: %v", err)
		}
	}()

	ctx := context.Background()
	start := time.Now()

	ok := runAll(ctx, cfg, reg, files, os.Stdout, os.Stderr)

	if *verbose {
		log.Printf("completed in %s", time.Since(start).Truncate(time.Millisecond))
	}
	if !ok {
		os.Exit(1)
	}
}

// loadInputs decodes the run config and builds the schema registry.
func loadInputs(cfgPath, schemaPath string) (config.Config, schema.Registry) {
	cf, err := os.Open(cfgPath)
	if err != nil {
		fatalf("open config: %v", err)
	}
	defer cf.Close()
	cfg, err := config.Decode(cf)
	if err != nil {
		fatalf("%v", err)
	}

	sf, err := os.Open(schemaPath)
	if err != nil {
		fatalf("open schema: %v", err)
	}
	defer sf.Close()
	var contract schema.Contract
	if err := json.NewDecoder(sf).Decode(&contract); err != nil {
		fatalf("decode schema: %v", err)
	}
	reg, err := schema.NewRegistry(contract)
	if err != nil {
		fatalf("%v", err)
	}
	return cfg, reg
}

// initMetrics decides the metrics backend: flag → env → default.
func initMetrics(backendName, gwURL string, verbose bool) {
	if backendName == "" {
		backendName = os.Getenv("METRICS_BACKEND")
	}
	switch backendName {
	case "pushgateway":
		if gwURL == "" {
			gwURL = os.Getenv("PUSHGATEWAY_URL")
		}
		if gwURL == "" {
			gwURL = "http://localhost:9091"
		}
		b, err := prompush.NewBackend("csvcheck", gwURL)
		if err != nil {
			log.Printf("metrics: failed to init prom push backend: %v; using nop", err)
			return
		}
		if verbose {
			log.Printf("metrics: url=%v, backend=%v", gwURL, backendName)
		}
		metrics.SetBackend(b)

	case "", "none":
		if verbose {
			log.Printf("metrics: disabled (backend=%q)", backendName)
		}

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", backendName)
	}
}

// runAll validates every input file and reports whether all of them
// completed without a fatal fault.
//
// A single file streams its diagnostics directly. Several files run
// concurrently, each writing into private buffers that are flushed to
// stdout/stderr in argument order, so each file's diagnostics stay in strict
// file order.
func runAll(ctx context.Context, cfg config.Config, reg schema.Registry, files []string, stdout, stderr io.Writer) bool {
	if len(files) == 1 {
		rep := report.New(stdout, stderr)
		sum := runOne(ctx, cfg, reg, rep, files[0])
		return sum.Fatal == nil
	}

	type result struct {
		out, errOut bytes.Buffer
		sum         validator.Summary
	}
	results := make([]result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			res := &results[i]
			rep := report.New(&res.out, &res.errOut)
			res.sum = runOne(ctx, cfg, reg, rep, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("run: %v", err)
	}

	ok := true
	for i := range results {
		stderr.Write(results[i].errOut.Bytes())
		stdout.Write(results[i].out.Bytes())
		if results[i].sum.Fatal != nil {
			ok = false
		}
	}
	return ok
}

// runOne validates a single file and emits its completion notice on success.
func runOne(ctx context.Context, cfg config.Config, reg schema.Registry, rep *report.Reporter, path string) validator.Summary {
	job := filepath.Base(path)
	sum, err := validator.New(cfg, reg, rep, job).Run(ctx, path)
	if err != nil {
		log.Printf("%s: %v", path, err)
		return sum
	}
	if sum.State == validator.StateCompleted {
		rep.Complete(path, sum)
	}
	return sum
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
