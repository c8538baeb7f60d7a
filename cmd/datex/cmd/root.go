package cmd

import (
	"embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/datex/foundation/core/error"
	"github.com/msto63/datex/foundation/core/i18n"
	mdwlog "github.com/msto63/datex/foundation/core/log"
	"github.com/msto63/datex/foundation/utils/datex"
	"github.com/msto63/datex/pkg/core/config"
	"github.com/msto63/datex/pkg/core/logging"
)

var (
	cfgFile     string
	verbose     bool
	todayFlag   string
	patternFlag string
	langFlag    string
)

//go:embed locales
var localeFiles embed.FS

// appContext is built once per run before a subcommand executes
type appContext struct {
	cfg       *config.Config
	logger    *mdwlog.Logger
	cal       *datex.Calendar
	msg       *i18n.Manager
	pattern   string
	separator string
}

var app *appContext

var rootCmd = &cobra.Command{
	Use:   "datex",
	Short: "datex - Datumswerte prüfen, umwandeln und berechnen",
	Long: `datex prüft und wandelt Datumseingaben in den üblichen Schreibweisen
(31.12.2020, 31-12-2020, 1.2.2020, 31122020) und rechnet mit Kalenderdaten.

Befehle:
  validate - Datumseingaben prüfen
  parse    - Datum oder Zeitstempel einlesen
  range    - Zeitraum formatieren
  diff     - Abstand zweier Daten
  add      - Tage, Monate oder Jahre addieren
  info     - Monats- und Jahresgrenzen eines Datums
  today    - Heutiges Datum`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupApp,
}

// Execute runs the root command and prints a styled error on failure
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Fehler: "+err.Error()))
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $DATEX_CONFIG oder ./configs/datex.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVar(&todayFlag, "today", "", "Heutiges Datum festlegen (z.B. 01.03.2024)")
	rootCmd.PersistentFlags().StringVarP(&patternFlag, "pattern", "p", "", "Ausgabemuster (default: d.M.yyyy)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Sprache der Ausgabe: de, en (default aus Config)")
}

// setupApp loads the configuration and builds logger and calendar
func setupApp(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	lc := logging.FromConfig(cfg, "datex", verbose)
	lc.Output = cmd.ErrOrStderr()
	logger := logging.NewLogger(lc).
		WithCorrelationID(uuid.NewString()).
		WithField("command", cmd.Name())

	opts := []datex.Option{datex.WithLogger(logger)}

	if todayFlag != "" {
		cfg.Dates.Today = todayFlag
	}
	pinned, err := cfg.TodayDate()
	if err != nil {
		return err
	}
	if !pinned.IsZero() {
		opts = append(opts, datex.WithClock(datex.NewFixedClock(pinned)))
		logger.Debug("today pinned", mdwlog.Field("today", datex.FormatDate(pinned, datex.PatternDottedDMY)))
	}

	pattern := cfg.Dates.OutputPattern
	if patternFlag != "" {
		pattern = patternFlag
	}
	if _, err := datex.CompileLayout(pattern); err != nil {
		return err
	}

	msg, err := i18n.New(i18n.Options{DefaultLocale: "de", Files: localeFiles, Dir: "locales"})
	if err != nil {
		return err
	}
	language := cfg.General.Language
	if langFlag != "" {
		language = langFlag
	}
	if err := msg.SetLocale(language); err != nil {
		return mdwerror.Wrap(err, "unsupported language").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.setupApp").
			WithDetail("key", "general.language")
	}

	app = &appContext{
		cfg:       cfg,
		logger:    logger,
		cal:       datex.New(opts...),
		msg:       msg,
		pattern:   pattern,
		separator: cfg.Dates.RangeSeparator,
	}
	logger.Debug("configuration loaded", mdwlog.Fields{"path": cfg.Path(), "pattern": pattern, "language": msg.CurrentLocale()})
	return nil
}

// parseDateArg reads a command argument as a date. "heute" and "today"
// stand for the calendar's current date.
func parseDateArg(text string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "heute", "today":
		return app.cal.Today(), nil
	}

	parsed, err := app.cal.ParseDate(text)
	if err != nil {
		return time.Time{}, err
	}
	if parsed.IsZero() {
		app.logger.Debug("argument not recognised", mdwlog.Field("text", text))
		return time.Time{}, mdwerror.New(tr("common.invalid_date", "Text", strconv.Quote(text))).
			WithCode(mdwerror.CodeParseFailure).
			WithOperation("cmd.parseDateArg").
			WithDetail("text", text)
	}
	return parsed, nil
}

// tr translates key, with optional name/value pairs for the template
func tr(key string, pairs ...interface{}) string {
	if len(pairs) == 0 {
		return app.msg.T(key)
	}
	data := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		data[fmt.Sprint(pairs[i])] = pairs[i+1]
	}
	return app.msg.T(key, data)
}

// format renders a date with the configured output pattern
func format(date time.Time) string {
	return datex.FormatDate(date, app.pattern)
}
