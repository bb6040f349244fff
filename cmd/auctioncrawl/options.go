package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nao1215/auctioncrawl/internal/config"
	"github.com/nao1215/auctioncrawl/internal/fetch"
	"github.com/nao1215/auctioncrawl/internal/log"
	"github.com/nao1215/auctioncrawl/internal/pipeline"
	"github.com/spf13/cobra"
)

// addCrawlFlags registers the flags shared by crawl and serve.
func addCrawlFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .auctioncrawl in current directory, XDG config dir or home)")

	cmd.Flags().String("home", config.DefaultHomeURL,
		"Category list page URL")
	cmd.Flags().String("category-base", config.DefaultCategoryBaseURL,
		"Prefix that category IDs are appended to for listing page URLs")
	cmd.Flags().String("marker", config.DefaultProductMarker,
		"Class token identifying product links on listing pages")

	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each request")
	cmd.Flags().String("user-agent", config.DefaultUserAgent,
		"User-Agent header sent with each request")
	cmd.Flags().Int64("max-body-size", config.DefaultMaxBodySize,
		"Maximum response body size in bytes (larger pages fail)")
	cmd.Flags().IntP("concurrency", "n", 0,
		"Maximum number of listing pages fetched at once (0 = all at once)")
	cmd.Flags().Float64P("rate", "r", 0,
		"Maximum requests per second (0 = no pacing)")
	cmd.Flags().StringP("proxy", "x", "",
		"Proxy address (socks5://host:port, http://host:port or host:port for SOCKS5)")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// the command flags, in increasing order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// A missing file is only an error when the user asked for one.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	flags := cmd.Flags()
	if flags.Changed("home") {
		if cfg.HomeURL, err = flags.GetString("home"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("category-base") {
		if cfg.CategoryBaseURL, err = flags.GetString("category-base"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("marker") {
		if cfg.ProductMarker, err = flags.GetString("marker"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("user-agent") {
		if cfg.UserAgent, err = flags.GetString("user-agent"); err != nil {
			return nil, err
		}
	}

	if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
		return nil, err
	}
	if cfg.MaxBodySize, err = flags.GetInt64("max-body-size"); err != nil {
		return nil, err
	}
	if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = flags.GetFloat64("rate"); err != nil {
		return nil, err
	}
	if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setupLogger creates a sanitizing logger writing to stderr.
func setupLogger(verbose, jsonFormat bool) *slog.Logger {
	if jsonFormat {
		return log.NewSecureJSONLogger(os.Stderr, verbose)
	}
	return log.NewSecureLogger(os.Stderr, verbose)
}

// newClient creates the HTTP client described by cfg.
func newClient(cfg *config.Config, logger *slog.Logger) (*fetch.Client, error) {
	opts := []fetch.Option{
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithRateLimit(cfg.RateLimit),
		fetch.WithLogger(logger),
	}
	if cfg.Cookie != "" {
		opts = append(opts, fetch.WithCookie(cfg.Cookie))
	}
	if len(cfg.Headers) > 0 {
		opts = append(opts, fetch.WithHeaders(cfg.Headers))
	}
	if cfg.ProxyAddress != "" {
		opts = append(opts, fetch.WithProxy(cfg.ProxyAddress))
	}

	client, err := fetch.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	return client, nil
}

// newPipeline creates the crawl pipeline described by cfg.
func newPipeline(cfg *config.Config, fetcher fetch.Fetcher, logger *slog.Logger) (*pipeline.Pipeline, error) {
	return pipeline.DefaultPipeline(fetcher,
		[]pipeline.Option{pipeline.WithLogger(logger)},
		pipeline.WithPipelineCategoryBaseURL(cfg.CategoryBaseURL),
		pipeline.WithPipelineProductMarker(cfg.ProductMarker),
		pipeline.WithPipelineConcurrency(cfg.Concurrency),
	)
}
