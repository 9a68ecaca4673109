// Command guide runs a single guide query from the terminal and prints the
// result as JSON.
//
//	guide itinerary --city Roma --hours 6
//	guide safety --city Tokyo
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	appLogger "github.com/FACorreiaa/go-viberoute/app/logger"
	"github.com/FACorreiaa/go-viberoute/config"
	"github.com/FACorreiaa/go-viberoute/internal/api/guide"
	"github.com/FACorreiaa/go-viberoute/internal/container"
	"github.com/FACorreiaa/go-viberoute/internal/types"
)

// serviceFactory builds the guide service once flags are parsed.
type serviceFactory func(ctx context.Context, model string, webSearch bool, verbose bool) (guide.Service, error)

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(defaultServiceFactory).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func defaultServiceFactory(ctx context.Context, model string, webSearch bool, verbose bool) (guide.Service, error) {
	cfg, err := config.InitConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if model != "" {
		cfg.LLM.Model = model
	}
	cfg.LLM.WebSearch = webSearch

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if verbose {
		logger = appLogger.New("development", os.Stderr)
	}

	c, err := container.NewContainer(ctx, &cfg, logger)
	if err != nil {
		return nil, err
	}
	return c.GuideService, nil
}

func newRootCmd(factory serviceFactory) *cobra.Command {
	var (
		city     string
		hours    int
		model    string
		noSearch bool
		verbose  bool
	)

	root := &cobra.Command{
		Use:   "guide <tab>",
		Short: "Query the travel guide for one tab of a city",
		Long: "Runs the model query behind a guide tab and prints {kind, data, sources} as JSON.\n" +
			"Tabs: " + strings.Join(detailTabs(), ", "),
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab := types.Tab(args[0])
			if !guide.IsDetailTab(tab) {
				return fmt.Errorf("tab %q does not query the guide (choose one of: %s)", tab, strings.Join(detailTabs(), ", "))
			}
			if strings.TrimSpace(city) == "" {
				return types.ErrCityRequired
			}
			if hours < 0 {
				return types.ErrInvalidHours
			}

			svc, err := factory(cmd.Context(), model, !noSearch, verbose)
			if err != nil {
				return err
			}
			result, err := svc.Dispatch(cmd.Context(), tab, types.GuideQuery{City: city, DurationHours: hours})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(result)
		},
	}

	root.Flags().StringVarP(&city, "city", "c", "", "city to query (required)")
	root.Flags().IntVar(&hours, "hours", types.DefaultDurationHours, "itinerary duration in hours")
	root.Flags().StringVar(&model, "model", "", "model name (defaults to the configured model)")
	root.Flags().BoolVar(&noSearch, "no-search", false, "disable web search grounding")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
	_ = root.MarkFlagRequired("city")

	root.AddCommand(&cobra.Command{
		Use:   "suggestions",
		Short: "List the suggested cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, c := range guide.CitySuggestions {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	})

	return root
}

func detailTabs() []string {
	return []string{
		string(types.TabItinerary), string(types.TabSafety), string(types.TabBites),
		string(types.TabSocial), string(types.TabOverview), string(types.TabFood),
		string(types.TabMonuments),
	}
}
