// Command catalog queries the company catalog from the command line
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/yourorg/stocksnap/internal/config"
	"github.com/yourorg/stocksnap/internal/repository"
	"github.com/yourorg/stocksnap/internal/search"
	"github.com/yourorg/stocksnap/internal/service"
	"github.com/yourorg/stocksnap/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose       bool
	configPath    string
	discoverLimit int
)

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Query the StockSnap company catalog",
	Long: `Query the StockSnap company catalog without starting the server.

Available subcommands:
  list     - Print every company
  trending - Print the trending companies
  search   - Filter companies by symbol or name
  discover - Free-text search over company descriptions
  show     - Print the one-pager of a company
  share    - Copy a company share link to the clipboard
  session  - Print the stored session record`,
	SilenceUsage: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every company",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := newSearchService(false)
		if err != nil {
			return err
		}
		defer cleanup()
		companies, err := svc.Companies(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, companies)
	},
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Print the trending companies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := newSearchService(false)
		if err != nil {
			return err
		}
		defer cleanup()
		companies, err := svc.Trending(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, companies)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Filter companies by symbol or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := newSearchService(false)
		if err != nil {
			return err
		}
		defer cleanup()
		companies, err := svc.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, companies)
	},
}

var discoverCmd = &cobra.Command{
	Use:   "discover <query>",
	Short: "Free-text search over company descriptions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := newSearchService(true)
		if err != nil {
			return err
		}
		defer cleanup()
		companies, err := svc.Discover(cmd.Context(), args[0], discoverLimit)
		if err != nil {
			return err
		}
		return printJSON(cmd, companies)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <symbol>",
	Short: "Print the one-pager of a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()

		svc := service.NewOnePagerService(repository.NewMockCatalog(logger), logger)
		symbol := repository.NormalizeSymbol(args[0])
		page, err := svc.Get(cmd.Context(), symbol)
		if err != nil {
			return err
		}
		if page == nil {
			return fmt.Errorf("unknown symbol %q", symbol)
		}
		return printJSON(cmd, page)
	},
}

var shareCmd = &cobra.Command{
	Use:   "share <symbol>",
	Short: "Copy a company share link to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		logger := newLogger()
		defer logger.Sync()

		svc := service.NewShareService(
			repository.NewMockCatalog(logger),
			service.UnsupportedSharer{},
			service.SystemClipboard{},
			cfg.Share.BaseURL,
			0,
			logger,
		)
		symbol := repository.NormalizeSymbol(args[0])
		result, err := svc.Share(cmd.Context(), symbol)
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("unknown symbol %q", symbol)
		}
		return printJSON(cmd, result)
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Print the stored session record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		logger := newLogger()
		defer logger.Sync()

		store, err := storage.NewKVStore(cmd.Context(), &cfg.Storage, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		raw, ok, err := store.Get(cmd.Context(), cfg.Storage.Key)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "no stored session")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), raw)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/config.yaml", "Path to the config file")
	discoverCmd.Flags().IntVarP(&discoverLimit, "limit", "n", 10, "Maximum number of results")

	rootCmd.AddCommand(listCmd, trendingCmd, searchCmd, discoverCmd, showCmd, shareCmd, sessionCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newSearchService builds a search service over the mock catalog, with the
// free-text index only when withIndex is set
func newSearchService(withIndex bool) (*service.SearchService, func(), error) {
	logger := newLogger()
	catalog := repository.NewMockCatalog(logger)

	if !withIndex {
		return service.NewSearchService(catalog, nil, logger), func() { _ = logger.Sync() }, nil
	}

	companies, err := catalog.Companies(context.Background())
	if err != nil {
		return nil, nil, err
	}
	index, err := search.NewDiscoverIndex(companies, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build discover index: %w", err)
	}
	cleanup := func() {
		_ = index.Close()
		_ = logger.Sync()
	}
	return service.NewSearchService(catalog, index, logger), cleanup, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
