package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/datex/foundation/core/error"
	"github.com/msto63/datex/foundation/utils/datex"
)

var (
	parseFormat    string
	parseTimestamp bool
	parseRepair    bool
	parseISO       bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Datum oder Zeitstempel einlesen",
	Long: `Liest eine Datumseingabe ein und gibt sie im Ausgabemuster aus.

Ohne Optionen werden die bekannten Schreibweisen der Reihe nach versucht.

Beispiele:
  datex parse 31.12.2020
  datex parse --repair 0.0.2000
  datex parse --timestamp "31.12.2020 08:15"
  datex parse --format yyyy-MM-dd 2020-02-29
  datex parse --iso 20200229`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "Exaktes Eingabemuster")
	parseCmd.Flags().BoolVarP(&parseTimestamp, "timestamp", "t", false, "Als Zeitstempel (mit HH:mm) einlesen")
	parseCmd.Flags().BoolVarP(&parseRepair, "repair", "r", false, "Tag oder Monat 0 durch 1 ersetzen")
	parseCmd.Flags().BoolVar(&parseISO, "iso", false, "Als yyyyMMdd einlesen")
}

func runParse(cmd *cobra.Command, args []string) error {
	text := args[0]
	outPattern := app.pattern

	var parsed time.Time
	var err error
	switch {
	case parseFormat != "":
		parsed, err = app.cal.ParseInFormat(text, parseFormat)
	case parseTimestamp:
		parsed, err = app.cal.ParseTimestamp(text)
		outPattern += " HH:mm"
	case parseRepair:
		parsed, err = app.cal.RepairIncomplete(text)
	case parseISO:
		parsed = app.cal.ParseBasicISODate(text)
	default:
		parsed, err = app.cal.ParseDate(text)
	}
	if err != nil {
		return err
	}
	if parsed.IsZero() {
		return mdwerror.New(tr("common.unknown_notation", "Text", strconv.Quote(text))).
			WithCode(mdwerror.CodeParseFailure).
			WithOperation("cmd.parse").
			WithDetail("text", text)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ValueStyle.Render(datex.FormatDate(parsed, outPattern)))
	return nil
}
