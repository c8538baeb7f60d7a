package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/datex/foundation/utils/datex"
)

var todayYears int

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Heutiges Datum",
	Long: `Gibt das heutige Datum im Ausgabemuster aus. Mit --years werden
zusätzlich die letzten Jahre absteigend aufgelistet.

Beispiele:
  datex today
  datex --today 01.03.2024 --pattern yyyy-MM-dd today
  datex today --years 5`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)

	todayCmd.Flags().IntVar(&todayYears, "years", 0, "Anzahl zurückliegender Jahre auflisten")
}

func runToday(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	today := app.cal.Today()
	fmt.Fprintln(out, ValueStyle.Render(format(today)))

	if todayYears > 0 {
		for _, year := range datex.YearsDescending(today.Year()-todayYears, today.Year()-1) {
			fmt.Fprintln(out, MutedStyle.Render(fmt.Sprint(year)))
		}
	}
	return nil
}
