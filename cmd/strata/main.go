package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/strata/internal/common"
	"github.com/ternarybob/strata/internal/eodhd"
	"github.com/ternarybob/strata/internal/services/analysis"
	"github.com/ternarybob/strata/internal/services/filings"
	"github.com/ternarybob/strata/internal/services/market"
	badgerstore "github.com/ternarybob/strata/internal/storage/badger"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles  configPaths // Multiple -config flags supported
	tickerFlag   = flag.String("ticker", "", "Ticker to analyze (e.g. NYSE:XOM or XOM)")
	scheduleFlag = flag.String("schedule", "", "Cron expression for repeated analysis runs")
	ingestFlag   = flag.String("ingest", "", "Path to a filing HTML file to ingest before analysis")
	titleFlag    = flag.String("title", "", "Title for the ingested filing")
	sourceFlag   = flag.String("source", "", "Source URL for the ingested filing")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	// Global state
	config *common.Config
	logger arbor.ILogger
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Strata version %s\n", common.GetVersion())
		os.Exit(0)
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file1 -> file2 -> ... -> env)
	// 2. Initialize logger
	// 3. Print banner

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("strata.toml"); err == nil {
			configFiles = append(configFiles, "strata.toml")
		} else if _, err := os.Stat("deployments/local/strata.toml"); err == nil {
			configFiles = append(configFiles, "deployments/local/strata.toml")
		}
	}

	var err error
	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger = common.InitLogger(config)
	common.PrintBanner(common.LoadVersionFromFile())

	common.SetDefaultExchange(config.Markets.DefaultExchange)

	if *tickerFlag == "" {
		logger.Fatal().Msg("A ticker is required: -ticker NYSE:XOM")
		os.Exit(1)
	}

	logger.Info().
		Strs("config_files", configFiles).
		Str("ticker", *tickerFlag).
		Str("environment", config.Environment).
		Msg("Configuration loaded")

	db, err := badgerstore.NewBadgerDB(logger, &config.Storage.Badger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open storage")
		os.Exit(1)
	}
	defer db.Close()

	filingStorage := badgerstore.NewFilingStorage(db, logger)
	kvStorage := badgerstore.NewKVStorage(db, logger)

	client := eodhd.NewClient(config.EODHD.APIKey,
		eodhd.WithBaseURL(config.EODHD.BaseURL),
		eodhd.WithRateLimit(config.EODHD.RateLimit),
		eodhd.WithLogger(logger),
	)

	cacheTTL, err := config.MarketCacheTTL()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid market cache TTL")
		os.Exit(1)
	}

	marketService := market.NewService(client, kvStorage, cacheTTL, logger)
	filingService := filings.NewService(filingStorage, config.Analysis.FilingType, logger)
	analysisService := analysis.NewService(marketService, filingService, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *ingestFlag != "" {
		if err := ingestFiling(ctx, filingService, *ingestFlag); err != nil {
			logger.Fatal().Err(err).Str("path", *ingestFlag).Msg("Filing ingestion failed")
			os.Exit(1)
		}
	}

	if *scheduleFlag != "" {
		runScheduled(ctx, cancel, analysisService)
		return
	}

	report := analysisService.Run(ctx, *tickerFlag)
	if err := printReport(report); err != nil {
		logger.Fatal().Err(err).Msg("Failed to encode report")
		os.Exit(1)
	}
	if report.Rejected() {
		os.Exit(1)
	}
}

// ingestFiling normalizes and stores a local filing HTML file so the
// analysis run that follows can use it.
func ingestFiling(ctx context.Context, svc *filings.Service, path string) error {
	html, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read filing: %w", err)
	}

	title := *titleFlag
	if title == "" {
		title = filepath.Base(path)
	}

	ticker := common.ParseTicker(*tickerFlag)
	_, err = svc.Ingest(ctx, ticker.Code, config.Analysis.FilingType, title, *sourceFlag, string(html))
	return err
}

// runScheduled runs the analysis on a cron schedule until interrupted.
func runScheduled(ctx context.Context, cancel context.CancelFunc, svc *analysis.Service) {
	scheduler := cron.New()
	_, err := scheduler.AddFunc(*scheduleFlag, func() {
		report := svc.Run(ctx, *tickerFlag)
		if err := printReport(report); err != nil {
			logger.Error().Err(err).Msg("Failed to encode report")
		}
	})
	if err != nil {
		logger.Fatal().Err(err).Str("schedule", *scheduleFlag).Msg("Invalid cron schedule")
		os.Exit(1)
	}

	scheduler.Start()
	logger.Info().Str("schedule", *scheduleFlag).Str("ticker", *tickerFlag).Msg("Scheduler started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	cancel()
	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
}

// printReport writes the report as indented JSON to stdout.
func printReport(report interface{}) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
