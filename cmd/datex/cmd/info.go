package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/datex/foundation/utils/datex"
)

var infoCmd = &cobra.Command{
	Use:   "info <datum>",
	Short: "Monats- und Jahresgrenzen eines Datums",
	Long: `Zeigt Wochentag, Monats- und Jahresgrenzen und den Abstand zu heute.

Beispiele:
  datex info 15.02.2020
  datex --today 01.03.2024 info 29.02.2024
  datex --lang en info heute`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func yesNo(b bool) string {
	if b {
		return tr("common.yes")
	}
	return tr("common.no")
}

func runInfo(cmd *cobra.Command, args []string) error {
	date, err := parseDateArg(args[0])
	if err != nil {
		return err
	}

	firstOfYear, err := datex.FirstDayOfYear(date)
	if err != nil {
		return err
	}
	isFirstOfMonth, err := datex.IsFirstDayOfMonth(date)
	if err != nil {
		return err
	}
	isFirstOfYear, err := datex.IsFirstDayOfYear(date)
	if err != nil {
		return err
	}
	isLastOfYear, err := datex.IsLastDayOfYear(date)
	if err != nil {
		return err
	}
	fromToday, err := datex.DiffInDays(app.cal.Today(), date)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render(format(date)))
	fmt.Fprintln(out, labeled(tr("info.weekday"), app.msg.Item("info.weekdays", int(date.Weekday()))))
	fmt.Fprintln(out, labeled(tr("info.day_month_year"), fmt.Sprintf("%d / %d / %d", datex.DayOfMonth(date), datex.MonthOf(date), datex.YearOf(date))))
	fmt.Fprintln(out, labeled(tr("info.leap_year"), yesNo(datex.IsLeapYear(date.Year()))))
	fmt.Fprintln(out, labeled(tr("info.first_of_month"), format(datex.FirstDayOfMonth(date))))
	fmt.Fprintln(out, labeled(tr("info.last_of_month"), format(datex.LastDayOfMonth(date))))
	fmt.Fprintln(out, labeled(tr("info.next_month"), format(datex.FirstDayOfNextMonth(date))))
	fmt.Fprintln(out, labeled(tr("info.first_of_year"), format(firstOfYear)))
	fmt.Fprintln(out, labeled(tr("info.last_of_year"), format(datex.LastDayOfYear(date))))
	fmt.Fprintln(out, labeled(tr("info.next_year"), format(datex.FirstDayOfNextYear(date))))
	fmt.Fprintln(out, labeled(tr("info.is_first_of_month"), yesNo(isFirstOfMonth)))
	fmt.Fprintln(out, labeled(tr("info.is_first_of_year"), yesNo(isFirstOfYear)))
	fmt.Fprintln(out, labeled(tr("info.is_last_of_year"), yesNo(isLastOfYear)))
	fmt.Fprintln(out, labeled(tr("info.days_from_today"), strconv.Itoa(fromToday)))
	fmt.Fprintln(out, MutedStyle.Render(tr("common.today", "Date", format(app.cal.Today()))))
	return nil
}
