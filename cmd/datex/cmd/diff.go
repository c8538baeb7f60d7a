package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/datex/foundation/core/error"
	"github.com/msto63/datex/foundation/utils/datex"
)

var diffUnit string

var diffCmd = &cobra.Command{
	Use:   "diff <datum> <datum>",
	Short: "Abstand zweier Daten",
	Long: `Berechnet den Abstand zweier Daten in Tagen, Monaten und Jahren.

Tage sind vorzeichenbehaftet (zweites minus erstes Datum), Monate zählen
Monatswechsel unabhängig von der Reihenfolge.

Beispiele:
  datex diff 01.01.2020 11.01.2020
  datex diff --unit months 31.01.2020 01.02.2020`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().StringVarP(&diffUnit, "unit", "u", "", "Nur eine Einheit ausgeben: days, months, years")
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := parseDateArg(args[0])
	if err != nil {
		return err
	}
	b, err := parseDateArg(args[1])
	if err != nil {
		return err
	}

	days, err := datex.DiffInDays(a, b)
	if err != nil {
		return err
	}
	months, err := datex.DiffInMonths(a, b)
	if err != nil {
		return err
	}
	years, err := datex.DiffInYears(a, b)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch diffUnit {
	case "":
		fmt.Fprintln(out, TitleStyle.Render(format(a)+" → "+format(b)))
		fmt.Fprintln(out, labeled(tr("diff.days"), strconv.Itoa(days)))
		fmt.Fprintln(out, labeled(tr("diff.months"), strconv.Itoa(months)))
		fmt.Fprintln(out, labeled(tr("diff.years"), strconv.Itoa(years)))
	case "days":
		fmt.Fprintln(out, days)
	case "months":
		fmt.Fprintln(out, months)
	case "years":
		fmt.Fprintln(out, years)
	default:
		return mdwerror.New(tr("diff.unknown_unit", "Unit", strconv.Quote(diffUnit))).
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("cmd.diff")
	}
	return nil
}
