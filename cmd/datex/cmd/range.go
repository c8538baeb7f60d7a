package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/datex/foundation/utils/datex"
)

var rangeSeparator string

var rangeCmd = &cobra.Command{
	Use:   "range <von> [bis]",
	Short: "Zeitraum formatieren",
	Long: `Formatiert einen Zeitraum aus zwei Daten. Ein fehlendes Datum bleibt leer.

Beispiele:
  datex range 1.1.2020 31.1.2020
  datex range --separator bis 01012020 31012020
  datex range 1.1.2020`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRange,
}

func init() {
	rootCmd.AddCommand(rangeCmd)

	rangeCmd.Flags().StringVarP(&rangeSeparator, "separator", "s", "", "Trennzeichen (default aus Config)")
}

func runRange(cmd *cobra.Command, args []string) error {
	from, err := parseDateArg(args[0])
	if err != nil {
		return err
	}

	var to time.Time
	if len(args) == 2 && args[1] != "" {
		if to, err = parseDateArg(args[1]); err != nil {
			return err
		}
	}

	separator := app.separator
	if rangeSeparator != "" {
		separator = rangeSeparator
	}

	out, err := datex.FormatRange(from, to, separator, app.pattern)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ValueStyle.Render(out))
	return nil
}
