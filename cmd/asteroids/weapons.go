package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

var weaponsCmd = &cobra.Command{
	Use:   "weapons",
	Short: "Show the weapon table",
	Long: `List the six firing modes with their hotkey, fire interval, ammo per
pickup and barrel spread.`,
	Args: cobra.NoArgs,
	Run:  runWeapons,
}

func runWeapons(_ *cobra.Command, _ []string) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tWEAPON\tINTERVAL\tPICKUP AMMO\tSHOTS\tSPREAD")
	for i, w := range sim.Weapons {
		pickup := "-"
		if w.Grant > 0 {
			pickup = fmt.Sprintf("%d", w.Grant)
		}
		spread := make([]string, len(w.Spread))
		for j, deg := range w.Spread {
			spread[j] = fmt.Sprintf("%+.0f", deg)
		}
		fmt.Fprintf(tw, "%d\t%s\t%dms\t%s\t%d\t%s\n",
			i+1, w.Name, w.Interval, pickup, w.Counted, strings.Join(spread, " "))
	}
	tw.Flush()
}
