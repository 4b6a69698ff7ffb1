package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SAIRAALMAS88/AI-FYP/internal/ai"
	cfgpkg "github.com/SAIRAALMAS88/AI-FYP/internal/config"
	"github.com/SAIRAALMAS88/AI-FYP/internal/format"
	"github.com/SAIRAALMAS88/AI-FYP/internal/table"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	// Retry/HTTP flags (override config if set)
	flagHTTPTimeoutSec   int
	flagRetryMaxAttempts int
	flagRetryBaseDelayMs int
	flagRetryMaxDelayMs  int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "insights",
	Short: "AI-powered data insights and visualization assistant",
	Long: `Insights ingests a dataset (CSV/XLSX) or document (PDF), derives descriptive
context about it, and produces natural-language analysis through an LLM, plus
profiling reports and charts for tabular data.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗ Error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.insights/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().IntVar(&flagHTTPTimeoutSec, "http-timeout", 0, "HTTP client timeout in seconds (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetryMaxAttempts, "retry-max", 0, "max retry attempts on 429/5xx (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetryBaseDelayMs, "retry-base-ms", 0, "base retry backoff in ms (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetryMaxDelayMs, "retry-max-ms", 0, "max retry backoff cap in ms (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintln(os.Stderr, color.YellowString("⚠ Warning:"), "failed to load config:", err)
		return
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("http-timeout") && flagHTTPTimeoutSec > 0 {
		cfg.HTTPTimeoutSec = flagHTTPTimeoutSec
	}
	if f.Changed("retry-max") && flagRetryMaxAttempts > 0 {
		cfg.RetryMaxAttempts = flagRetryMaxAttempts
	}
	if f.Changed("retry-base-ms") && flagRetryBaseDelayMs > 0 {
		cfg.RetryBaseDelayMs = flagRetryBaseDelayMs
	}
	if f.Changed("retry-max-ms") && flagRetryMaxDelayMs > 0 {
		cfg.RetryMaxDelayMs = flagRetryMaxDelayMs
	}
}

// newAIClient builds the LLM collaborator from loaded configuration. The
// client is constructed here, in the hosting process, and handed to the
// operations that need it.
func newAIClient() *ai.Client {
	c := cfg
	if c == nil {
		c = &cfgpkg.Global{}
	}
	return ai.NewClient(c.APIKey, ai.Options{
		Model:            c.Model,
		MaxTokens:        c.MaxTokens,
		Temperature:      c.Temperature,
		TopP:             c.TopP,
		HTTPTimeout:      time.Duration(c.HTTPTimeoutSec) * time.Second,
		RetryMaxAttempts: c.RetryMaxAttempts,
		RetryBaseDelay:   time.Duration(c.RetryBaseDelayMs) * time.Millisecond,
		RetryMaxDelay:    time.Duration(c.RetryMaxDelayMs) * time.Millisecond,
	})
}

// readUpload is the upload boundary: it hands the core a filename and raw
// bytes, nothing more.
func readUpload(path string) (string, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read file: %w", err)
	}
	return filepath.Base(path), data, nil
}

// parseTable dispatches tabular bytes to the right normalizer.
func parseTable(name string, data []byte, kind format.Kind) (*table.Table, error) {
	switch kind {
	case format.CSV:
		return table.ParseCSV(name, data)
	case format.Excel:
		return table.ParseXLSX(name, data)
	default:
		return nil, &format.UnsupportedFormatError{Filename: name}
	}
}

// loadTable reads and normalizes an upload for operations that only accept
// tabular input.
func loadTable(path string) (*table.Table, error) {
	name, data, err := readUpload(path)
	if err != nil {
		return nil, err
	}
	kind, err := format.Detect(name, data)
	if err != nil {
		return nil, err
	}
	if !kind.Tabular() {
		return nil, fmt.Errorf("a tabular file (CSV/XLSX) is required, got %s", kind)
	}
	return parseTable(name, data, kind)
}

func successf(msgFormat string, args ...any) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(msgFormat, args...))
}

func debugf(msgFormat string, args ...any) {
	if !debug {
		return
	}
	fmt.Fprintln(os.Stderr, color.CyanString("·"), fmt.Sprintf(msgFormat, args...))
}
