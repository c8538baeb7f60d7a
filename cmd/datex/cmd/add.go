package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/datex/foundation/core/log"
	"github.com/msto63/datex/foundation/utils/datex"
)

var (
	addDays   int
	addMonths int
	addYears  int
)

var addCmd = &cobra.Command{
	Use:   "add <datum>",
	Short: "Tage, Monate oder Jahre addieren",
	Long: `Addiert Jahre, dann Monate, dann Tage zu einem Datum. Negative Werte
subtrahieren. Überzählige Tage laufen in den Folgemonat (31.01. + 1 Monat
ergibt Anfang März).

Beispiele:
  datex add --days 10 01.01.2020
  datex add --months -1 heute`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().IntVarP(&addDays, "days", "d", 0, "Tage")
	addCmd.Flags().IntVarP(&addMonths, "months", "m", 0, "Monate")
	addCmd.Flags().IntVarP(&addYears, "years", "y", 0, "Jahre")
}

func runAdd(cmd *cobra.Command, args []string) error {
	date, err := parseDateArg(args[0])
	if err != nil {
		return err
	}

	result := datex.AddMonths(datex.AddYears(date, addYears), addMonths)
	if result, err = datex.AddDays(result, addDays); err != nil {
		return err
	}

	app.logger.Debug("dates added", mdwlog.Fields{"years": addYears, "months": addMonths, "days": addDays})
	fmt.Fprintln(cmd.OutOrStdout(), ValueStyle.Render(format(result)))
	return nil
}
