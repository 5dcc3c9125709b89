// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"mailmask/internal/classifier"
	"mailmask/internal/config"
	"mailmask/internal/core"
	"mailmask/internal/formatters"
	"mailmask/internal/ner"
	"mailmask/internal/observability"
	"mailmask/internal/storage"
	"mailmask/internal/version"
	"mailmask/internal/web"

	// Import formatters to register them
	_ "mailmask/internal/formatters/json"
	_ "mailmask/internal/formatters/text"
)

func main() {
	// Parse command line flags
	inputText := flag.String("text", "", "Text to mask (alternatively use -file or pipe to stdin)")
	inputFile := flag.String("file", "", "Path to a file whose contents will be masked")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	outputFormat := flag.String("format", "", "Output format: text, json (default: text)")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	verbose := flag.Bool("verbose", false, "Display detailed information for each masked entity")
	debug := flag.Bool("debug", false, "Enable debug logging to show detection and resolution flow")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showValues := flag.Bool("show-values", false, "Display the detected entity values in text output (prints PII)")
	showVersion := flag.Bool("version", false, "Show version information")
	serveMode := flag.Bool("serve", false, "Start the HTTP API server instead of masking once")
	servePort := flag.Int("port", 0, "Port for the HTTP API server (default: from config, 8080)")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg := config.LoadConfigOrDefault(*configFile)
	if *noColor {
		cfg.Defaults.NoColor = true
	}
	if *verbose {
		cfg.Defaults.Verbose = true
	}
	if *debug {
		cfg.Defaults.Debug = true
	}
	if *outputFormat != "" {
		cfg.Defaults.Format = *outputFormat
	}
	if *servePort != 0 {
		cfg.Server.Port = *servePort
	}
	if cfg.Defaults.NoColor {
		color.NoColor = true
	}

	if *serveMode {
		if err := runServer(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runMask(cfg, *inputText, *inputFile, *outputFile, *showValues); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildObserver creates the observer matching the configured level.
func buildObserver(cfg *config.Config) *observability.StandardObserver {
	observer := observability.NewStandardObserver(observability.ObservabilityMetrics, os.Stderr)
	if cfg.Defaults.Debug {
		debugObs := observability.NewDebugObserver(os.Stderr)
		observer = debugObs.StandardObserver
		observer.DebugObserver = debugObs
	}
	return observer
}

// buildRecognizer selects the NER provider from configuration.
func buildRecognizer(cfg *config.Config) ner.Recognizer {
	switch cfg.NER.Provider {
	case "http":
		return ner.NewHTTPRecognizer(cfg.NER.Endpoint, time.Duration(cfg.NER.TimeoutSeconds)*time.Second)
	case "off":
		return nil
	default:
		return ner.NewRuleBasedRecognizer()
	}
}

// runMask masks one text and writes the formatted result.
func runMask(cfg *config.Config, inputText, inputFile, outputFile string, showValues bool) error {
	text, err := readInput(inputText, inputFile)
	if err != nil {
		return err
	}

	pipeline := core.NewPipeline(core.PipelineConfig{
		Recognizer:          buildRecognizer(cfg),
		CreditCardLuhnCheck: cfg.Validators.CreditCard.LuhnCheck,
		Observer:            buildObserver(cfg),
	})

	result := pipeline.Process(context.Background(), text)

	// Printing detected values puts PII back on the terminal, so it is
	// only ever enabled by the explicit flag, never by the config file.
	output, err := formatters.Export(cfg.Defaults.Format, result, formatters.FormatterOptions{
		Verbose:    cfg.Defaults.Verbose,
		NoColor:    cfg.Defaults.NoColor,
		ShowValues: showValues,
	})
	if err != nil {
		return err
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, []byte(output), 0600)
	}
	fmt.Println(output)
	return nil
}

// readInput resolves the text to mask from the -text flag, the -file
// flag, or piped stdin, in that priority order.
func readInput(inputText, inputFile string) (string, error) {
	if inputText != "" {
		return inputText, nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	return "", errors.New("no input: use -text, -file, or pipe text to stdin")
}

// runServer starts the HTTP API with graceful shutdown.
func runServer(cfg *config.Config) error {
	observer := buildObserver(cfg)
	metrics := observability.NewMetrics("mailmask")

	pipeline := core.NewPipeline(core.PipelineConfig{
		Recognizer:          buildRecognizer(cfg),
		CreditCardLuhnCheck: cfg.Validators.CreditCard.LuhnCheck,
		Observer:            observer,
		Metrics:             metrics,
	})

	var cls classifier.Classifier = classifier.NewKeywordClassifier()
	if cfg.Classifier.Endpoint != "" {
		cls = classifier.NewHTTPClassifier(cfg.Classifier.Endpoint,
			time.Duration(cfg.Classifier.TimeoutSeconds)*time.Second)
	}

	store, err := storage.Open(cfg.Storage.Path, cfg.Storage.AccessKey)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close()

	server := web.NewServer(pipeline, cls, store, observer, metrics)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("mailmask API listening on %s\n", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		httpServer.Close()
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
