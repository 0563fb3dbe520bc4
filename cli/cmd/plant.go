// ABOUTME: Plant command for hydro-sizer CLI
// ABOUTME: Analyzes a full building layout: risers per column plus chiller search

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mfreeman/hydronic-sizer/cli/internal/client"
	"github.com/mfreeman/hydronic-sizer/cli/internal/format"
	"github.com/spf13/cobra"
)

var (
	plantLayout     string
	plantHallLoad   float64
	plantFanHeat    float64
	plantDeltaT     float64
	plantFluid      string
	plantRedundancy string
	plantStrategy   string
)

var plantCmd = &cobra.Command{
	Use:   "plant",
	Short: "Analyze a full building layout",
	Long: `Analyze a data hall layout (columns x rows x floors): aggregate hall
loads per column, size one riser per column, and search chiller
configurations for the building cooling load.

Exit codes:
  0  analysis clean
  1  analysis completed with warnings
  2  request or backend error`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPlant(ctx, cmd, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	plantCmd.Flags().StringVar(&plantLayout, "layout", "", "Building layout, e.g. 6x2x3 (required)")
	plantCmd.Flags().Float64Var(&plantHallLoad, "hall-load", 0, "Uniform IT load per hall in MW (default 1)")
	plantCmd.Flags().Float64Var(&plantFanHeat, "fan-heat", 0, "Fan heat as percent of IT load (default 5)")
	plantCmd.Flags().Float64Var(&plantDeltaT, "delta-t", 0, "Supply/return delta T in °F")
	plantCmd.Flags().StringVar(&plantFluid, "fluid", "", "Fluid key: water, glycol_30, glycol_50")
	plantCmd.Flags().StringVar(&plantRedundancy, "redundancy", "", "Chiller redundancy model: n+1, n+2, n+percent")
	plantCmd.Flags().StringVar(&plantStrategy, "strategy", "", "Chiller strategy: modular, central, balanced")
	rootCmd.AddCommand(plantCmd)
}

// runPlant executes the plant analysis and returns exit code
func runPlant(ctx context.Context, cmd *cobra.Command, w io.Writer) int {
	if plantLayout == "" {
		fmt.Fprintln(w, "Error: --layout is required")
		return 2
	}

	req := &client.PlantAnalyzeRequest{
		Layout:            plantLayout,
		DefaultHallLoadMW: plantHallLoad,
		DeltaTF:           plantDeltaT,
		Fluid:             plantFluid,
		Chillers: client.ChillerSearchRequest{
			Redundancy: plantRedundancy,
			Strategy:   plantStrategy,
		},
	}
	// Only send fan heat when the flag was set, so an explicit zero is
	// distinguishable from the backend default
	if cmd.Flags().Changed("fan-heat") {
		req.FanHeatPct = &plantFanHeat
	}

	c := client.New(GetAPIURL())
	report, err := c.AnalyzePlant(ctx, req)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatPlantHuman(report))
	}

	if len(report.Warnings) > 0 {
		return 1
	}
	return 0
}

// formatPlantHuman formats the plant report for human readability
func formatPlantHuman(report *client.PlantReport) string {
	var b strings.Builder

	b.WriteString(format.Title.Render("Plant Analysis") + "\n")
	fmt.Fprintf(&b, "Layout:       %dx%dx%d (%d halls)\n",
		report.Layout.Columns, report.Layout.Rows, report.Layout.Floors,
		report.Layout.Columns*report.Layout.Rows*report.Layout.Floors)
	fmt.Fprintf(&b, "IT Load:      %.1f MW\n", report.TotalITLoadMW)
	fmt.Fprintf(&b, "Cooling Load: %.1f MW (fan heat %.0f%%)\n\n", report.TotalCoolingMW, report.FanHeatPct)

	rows := make([][]string, len(report.Risers))
	for i, riser := range report.Risers {
		size := riser.Sizing.StandardSize
		if !riser.Sizing.Resolved {
			size = "unresolved"
		}
		rows[i] = []string{
			riser.Column,
			fmt.Sprintf("%d", riser.HallCount),
			fmt.Sprintf("%.1f MW", riser.CoolingLoadMW),
			fmt.Sprintf("%.0f GPM", riser.FlowGPM),
			size,
			fmt.Sprintf("%.1f ft/s", riser.Sizing.VelocityFtS),
			fmt.Sprintf("%.1f psi", riser.Sizing.PressureDropPsi),
		}
	}
	b.WriteString(format.Table(
		[]string{"Riser", "Halls", "Cooling", "Flow", "Pipe", "Velocity", "DP/100ft"}, rows))
	b.WriteString("\n")

	if len(report.Chillers) > 0 {
		best := report.Chillers[0]
		b.WriteString("\n" + format.Title.Render("Recommended Chillers") + "\n")
		fmt.Fprintf(&b, "%d x %.0f ton (%d operating + %d spare), loading %.1f%%\n",
			best.TotalChillers, best.UnitCapacityTons,
			best.OperatingChillers, best.RedundantChillers, best.LoadingPct)
		fmt.Fprintf(&b, "10-year TCO: %s (%s per MW)\n",
			format.USD(best.TenYearTCOUSD), format.USD(best.TCOPerMW))
	} else {
		b.WriteString("\nNo feasible chiller configuration for this load.\n")
	}

	for _, warning := range report.Warnings {
		b.WriteString(format.StatusWarning.Render("warning: ") + warning + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
