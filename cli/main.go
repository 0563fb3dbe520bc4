// ABOUTME: Entry point for hydro-sizer CLI
// ABOUTME: Command-line tool for pipe sizing and chiller plant selection

package main

import (
	"fmt"
	"os"

	"github.com/mfreeman/hydronic-sizer/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
