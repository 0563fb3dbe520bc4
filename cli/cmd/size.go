// ABOUTME: Size command for hydro-sizer CLI
// ABOUTME: Sizes a single chilled-water pipe segment for a load or flow

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
	sizeLoadMW      float64
	sizeMassFlow    float64
	sizeDeltaT      float64
	sizeFluid       string
	sizeMaxVelocity float64
	sizeMaxDP       float64
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size a chilled-water pipe segment",
	Long: `Size the smallest standard pipe for a cooling load or mass flow.

Exit codes:
  0  sized to a standard pipe
  1  no standard pipe size covers the converged diameter
  2  request or backend error`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSize(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	sizeCmd.Flags().Float64Var(&sizeLoadMW, "load", 0, "Cooling load in MW")
	sizeCmd.Flags().Float64Var(&sizeMassFlow, "mass-flow", 0, "Mass flow in lb/hr (alternative to --load)")
	sizeCmd.Flags().Float64Var(&sizeDeltaT, "delta-t", 0, "Supply/return delta T in °F (backend default if omitted)")
	sizeCmd.Flags().StringVar(&sizeFluid, "fluid", "", "Fluid key: water, glycol_30, glycol_50")
	sizeCmd.Flags().Float64Var(&sizeMaxVelocity, "max-velocity", 0, "Velocity ceiling in ft/s")
	sizeCmd.Flags().Float64Var(&sizeMaxDP, "max-dp", 0, "Pressure drop ceiling in psi per 100 ft")
	rootCmd.AddCommand(sizeCmd)
}

// runSize executes the sizing request and returns exit code
func runSize(ctx context.Context, w io.Writer) int {
	if sizeLoadMW == 0 && sizeMassFlow == 0 {
		fmt.Fprintln(w, "Error: either --load or --mass-flow is required")
		return 2
	}

	c := client.New(GetAPIURL())
	result, err := c.SizePipe(ctx, &client.SizePipeRequest{
		LoadMW:             sizeLoadMW,
		MassFlowLbHr:       sizeMassFlow,
		DeltaTF:            sizeDeltaT,
		Fluid:              sizeFluid,
		MaxVelocityFtS:     sizeMaxVelocity,
		MaxPressureDropPsi: sizeMaxDP,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatSizingHuman(result))
	}

	if !result.Resolved {
		return 1
	}
	return 0
}

// formatSizingHuman formats a sizing result for human readability
func formatSizingHuman(result *client.SizingResult) string {
	status := format.StatusOK.Render("resolved")
	size := result.StandardSize
	if !result.Resolved {
		status = format.StatusWarning.Render("unresolved")
		size = "none (exceeds schedule)"
	}

	return fmt.Sprintf(`%s
Pipe Size:     %s
Internal Dia:  %.1f in
Flow:          %.0f GPM
Velocity:      %.1f ft/s
Reynolds:      %.0f
Friction f:    %.4f
Pressure Drop: %.1f psi / 100 ft
Status:        %s`,
		format.Title.Render("Pipe Sizing"),
		size,
		result.PipeIDIn,
		result.FlowGPM,
		result.VelocityFtS,
		result.ReynoldsNumber,
		result.FrictionFactor,
		result.PressureDropPsi,
		status)
}
