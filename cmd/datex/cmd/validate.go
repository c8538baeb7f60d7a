package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/datex/foundation/core/error"
)

var validateFormat string

var validateCmd = &cobra.Command{
	Use:   "validate <datum>...",
	Short: "Datumseingaben prüfen",
	Long: `Prüft, ob Eingaben gültige Kalenderdaten in einer bekannten Schreibweise
sind. Mit --format wird genau gegen dieses Muster geprüft.

Beispiele:
  datex validate 29.02.2020 29.02.2021
  datex validate --format yyyy-MM-dd 2020-02-29`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "", "Muster, gegen das geprüft wird")
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	invalid := 0

	for _, text := range args {
		var valid bool
		var err error
		if validateFormat != "" {
			valid, err = app.cal.IsDateValidInFormat(text, validateFormat)
		} else {
			valid, err = app.cal.IsDateValid(text)
		}
		if err != nil {
			return err
		}

		if valid {
			fmt.Fprintf(out, "%s %s\n", markValid, text)
		} else {
			invalid++
			fmt.Fprintf(out, "%s %s\n", markInvalid, text)
		}
	}

	if invalid > 0 {
		return mdwerror.New(tr("validate.summary", "Invalid", invalid, "Total", len(args))).
			WithCode(mdwerror.CodeParseFailure).
			WithOperation("cmd.validate")
	}
	return nil
}
