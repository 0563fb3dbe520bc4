// ABOUTME: Chillers command for hydro-sizer CLI
// ABOUTME: Searches chiller plant configurations ranked by 10-year TCO

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mfreeman/hydronic-sizer/cli/internal/client"
	"github.com/mfreeman/hydronic-sizer/cli/internal/format"
	"github.com/spf13/cobra"
)

var (
	chillersLoadMW     float64
	chillersRedundancy string
	chillersRedPercent float64
	chillersStrategy   string
	chillersMax        int
	chillersTop        int
)

var chillersCmd = &cobra.Command{
	Use:   "chillers",
	Short: "Search chiller plant configurations",
	Long: `Search chiller plant configurations for a cooling load, ranked by
10-year TCO per MW.

Exit codes:
  0  at least one feasible configuration found
  1  no configuration satisfies the constraints
  2  request or backend error`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runChillers(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	chillersCmd.Flags().Float64Var(&chillersLoadMW, "load", 0, "Total cooling load in MW (required)")
	chillersCmd.Flags().StringVar(&chillersRedundancy, "redundancy", "", "Redundancy model: n+1, n+2, n+percent")
	chillersCmd.Flags().Float64Var(&chillersRedPercent, "redundancy-percent", 0, "Spare capacity percent for n+percent")
	chillersCmd.Flags().StringVar(&chillersStrategy, "strategy", "", "Sizing strategy: modular, central, balanced")
	chillersCmd.Flags().IntVar(&chillersMax, "max-chillers", 0, "Maximum total units")
	chillersCmd.Flags().IntVar(&chillersTop, "top", 5, "Number of configurations to display")
	rootCmd.AddCommand(chillersCmd)
}

// runChillers executes the configuration search and returns exit code
func runChillers(ctx context.Context, w io.Writer) int {
	if chillersLoadMW == 0 {
		fmt.Fprintln(w, "Error: --load is required")
		return 2
	}

	c := client.New(GetAPIURL())
	configs, err := c.SearchChillers(ctx, &client.ChillerSearchRequest{
		TotalLoadMW:       chillersLoadMW,
		Redundancy:        chillersRedundancy,
		RedundancyPercent: chillersRedPercent,
		Strategy:          chillersStrategy,
		MaxChillers:       chillersMax,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(configs, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatChillersHuman(configs))
	}

	if len(configs) == 0 {
		return 1
	}
	return 0
}

// formatChillersHuman formats configurations as a ranked table
func formatChillersHuman(configs []client.ChillerConfig) string {
	if len(configs) == 0 {
		return "No feasible configuration. Relax the unit cap or loading window."
	}

	shown := configs
	if chillersTop > 0 && len(shown) > chillersTop {
		shown = shown[:chillersTop]
	}

	rows := make([][]string, len(shown))
	for i, cfg := range shown {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d x %.0f ton", cfg.TotalChillers, cfg.UnitCapacityTons),
			fmt.Sprintf("%d+%d", cfg.OperatingChillers, cfg.RedundantChillers),
			fmt.Sprintf("%.1f%%", cfg.LoadingPct),
			format.USD(cfg.TenYearTCOUSD),
			format.USD(cfg.TCOPerMW),
		}
	}

	return format.Title.Render("Chiller Configurations") + "\n" +
		format.Table([]string{"#", "Units", "Op+Spare", "Loading", "10yr TCO", "TCO/MW"}, rows)
}
