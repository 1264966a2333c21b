package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"launchdash/domain/launch"
	"launchdash/internal/config"
	"launchdash/internal/dashboard"
	"launchdash/internal/dataset"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataFile string

	rootCmd := &cobra.Command{
		Use:           "launchdash-cli",
		Short:         "Inspect launch records and render dashboard charts as JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", envOr("DATA_FILE", config.DefaultDataFile), "launch records file (.csv or .xlsx)")

	load := func() (*dashboard.Dashboard, error) {
		table, err := dataset.Load(dataFile)
		if err != nil {
			return nil, err
		}
		bounds, err := dataset.Bounds(table)
		if err != nil {
			return nil, err
		}
		return dashboard.New(table, bounds), nil
	}

	rootCmd.AddCommand(
		newSitesCmd(load),
		newBoundsCmd(load),
		newPieCmd(load),
		newScatterCmd(load),
		newSummaryCmd(load),
	)
	return rootCmd
}

type loader func() (*dashboard.Dashboard, error)

func newSitesCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List the site dropdown options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := load()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dash.Catalog())
		},
	}
}

func newBoundsCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Print the payload bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := load()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dash.Bounds())
		},
	}
}

func newPieCmd(load loader) *cobra.Command {
	var site string

	cmd := &cobra.Command{
		Use:   "pie",
		Short: "Render the success pie chart for a site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := load()
			if err != nil {
				return err
			}
			state := dash.DefaultState()
			state.Site = site
			fig, err := dash.Dispatch(dashboard.PieChartID, state)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), fig)
		},
	}
	cmd.Flags().StringVar(&site, "site", launch.AllSitesValue, "launch site, or ALL")
	return cmd
}

func newScatterCmd(load loader) *cobra.Command {
	var site string
	var low, high float64

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Render the payload vs. outcome scatter chart",
		Long: `Render the payload vs. outcome scatter chart. Without --low/--high the
payload bounds of the dataset are used.

Example: launchdash-cli scatter --site "KSC LC-39A" --low 2000 --high 8000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := load()
			if err != nil {
				return err
			}
			state := dash.DefaultState()
			state.Site = site
			if cmd.Flags().Changed("low") {
				state.Payload.Low = low
			}
			if cmd.Flags().Changed("high") {
				state.Payload.High = high
			}
			fig, err := dash.Dispatch(dashboard.ScatterChartID, state)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), fig)
		},
	}
	cmd.Flags().StringVar(&site, "site", launch.AllSitesValue, "launch site, or ALL")
	cmd.Flags().Float64Var(&low, "low", 0, "lowest payload mass (kg)")
	cmd.Flags().Float64Var(&high, "high", 0, "highest payload mass (kg)")
	return cmd
}

func newSummaryCmd(load loader) *cobra.Command {
	var confidence float64

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Per-site launch counts, success rate interval and payload statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := load()
			if err != nil {
				return err
			}
			summaries, err := dashboard.Summarize(dash.Table(), confidence)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), summaries)
		},
	}
	cmd.Flags().Float64Var(&confidence, "confidence", config.DefaultConfidence, "confidence level of the success rate interval")
	return cmd
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
