package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/datex/foundation/core/error"
)

// resetFlags restores every flag of c and its subcommands to its default,
// since commands and flag variables are package-level
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command without any ambient configuration
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATEX_CONFIG", "")
	t.Setenv("DATEX_LOG_LEVEL", "")
	t.Setenv("DATEX_TODAY", "")
	t.Setenv("DATEX_LANG", "")
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	resetFlags(rootCmd)
	app = nil

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := executeCommand(t, "--help")
	require.NoError(t, err)

	for _, name := range []string{"validate", "parse", "range", "diff", "add", "info", "today", "version"} {
		assert.Contains(t, out, name)
	}
}

func TestRootCommand_InvalidToday(t *testing.T) {
	tests := []struct {
		name  string
		today string
	}{
		{"unknown shape", "gestern"},
		{"impossible date", "31.02.2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, "--today", tt.today, "today")
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
			assert.Equal(t, 4, ExitCode(err))
		})
	}
}

func TestRootCommand_InvalidPattern(t *testing.T) {
	_, err := executeCommand(t, "--pattern", "dd.MM.yyyy EEE", "today")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestRootCommand_ConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "datex.toml")
	content := "[dates]\noutput_pattern = \"yyyy-MM-dd\"\ntoday = \"01.03.2024\"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	out, err := executeCommand(t, "--config", configPath, "today")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-01")
}

func TestRootCommand_MissingConfigFile(t *testing.T) {
	_, err := executeCommand(t, "--config", "/nonexistent/datex.toml", "today")
	require.Error(t, err)
	assert.Equal(t, 4, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(assert.AnError))
	assert.Equal(t, 3, ExitCode(mdwerror.New("x").WithCode(mdwerror.CodeParseFailure)))
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "--config", "/nonexistent/datex.toml", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "datex v")
	assert.Contains(t, out, "Go Version")
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		exitCode int
	}{
		{"valid dates", []string{"validate", "29.02.2020", "31-12-2020", "31122020"}, false, 0},
		{"one invalid", []string{"validate", "29.02.2020", "29.02.2021"}, true, 3},
		{"exact format", []string{"validate", "--format", "yyyy-MM-dd", "2020-02-29"}, false, 0},
		{"exact format mismatch", []string{"validate", "--format", "yyyy-MM-dd", "29.02.2020"}, true, 3},
		{"invalid format", []string{"validate", "--format", "dd QQ", "29.02.2020"}, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.exitCode, ExitCode(err))
			} else {
				require.NoError(t, err)
			}
			if tt.exitCode != 2 {
				assert.Contains(t, out, tt.args[len(tt.args)-1])
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"catalog", []string{"parse", "31.12.2020"}, "31.12.2020"},
		{"output pattern", []string{"--pattern", "dd.MM.yyyy", "parse", "1.2.2020"}, "01.02.2020"},
		{"repair", []string{"parse", "--repair", "0.0.2000"}, "1.1.2000"},
		{"timestamp", []string{"--pattern", "dd.MM.yyyy", "parse", "--timestamp", "31.12.2020 08:15"}, "31.12.2020 08:15"},
		{"pure date as timestamp", []string{"parse", "-t", "31.12.2020"}, "31.12.2020 00:00"},
		{"exact format", []string{"parse", "--format", "yyyy-MM-dd", "2020-02-29"}, "29.2.2020"},
		{"basic iso", []string{"parse", "--iso", "20200229"}, "29.2.2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
		})
	}
}

func TestParseCommand_Failures(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown shape", []string{"parse", "2020-12-31"}},
		{"exact format mismatch", []string{"parse", "--format", "yyyy-MM-dd", "31.12.2020"}},
		{"impossible date", []string{"parse", "31.02.2020"}},
		{"basic iso", []string{"parse", "--iso", "20210229"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeParseFailure))
		})
	}
}

func TestRangeCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"default separator", []string{"--pattern", "dd.MM.yyyy", "range", "1.1.2020", "31.1.2020"}, "01.01.2020 - 31.01.2020"},
		{"custom separator", []string{"--pattern", "dd.MM.yyyy", "range", "--separator", "bis", "01012020", "31012020"}, "01.01.2020 bis 31.01.2020"},
		{"open end", []string{"--pattern", "dd.MM.yyyy", "range", "1.1.2020"}, "01.01.2020 -"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
		})
	}
}

func TestDiffCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"days", []string{"diff", "--unit", "days", "01.01.2020", "11.01.2020"}, "10"},
		{"negative days", []string{"diff", "-u", "days", "11.01.2020", "01.01.2020"}, "-10"},
		{"months", []string{"diff", "--unit", "months", "01.02.2020", "31.01.2020"}, "1"},
		{"today keyword", []string{"--today", "01.03.2024", "diff", "--unit", "days", "heute", "11.03.2024"}, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, strings.TrimSpace(out))
		})
	}
}

func TestDiffCommand_Summary(t *testing.T) {
	out, err := executeCommand(t, "diff", "01.01.2000", "01.01.2010")
	require.NoError(t, err)
	assert.Contains(t, out, "Tage")
	assert.Contains(t, out, "3653")
	assert.Contains(t, out, "120")
}

func TestDiffCommand_UnknownUnit(t *testing.T) {
	_, err := executeCommand(t, "diff", "--unit", "weeks", "01.01.2020", "11.01.2020")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidArgument))
}

func TestAddCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"days", []string{"add", "--days", "10", "01.01.2020"}, "11.1.2020"},
		{"month overflow", []string{"add", "--months", "1", "31.01.2021"}, "3.3.2021"},
		{"leap year", []string{"add", "--years", "1", "29.02.2020"}, "1.3.2021"},
		{"backwards", []string{"add", "--days=-1", "01.03.2020"}, "29.2.2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
		})
	}
}

func TestTodayCommand(t *testing.T) {
	out, err := executeCommand(t, "--today", "01.03.2024", "today", "--years", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "1.3.2024")
	assert.Contains(t, out, "2023")
	assert.Contains(t, out, "2022")
	assert.NotContains(t, out, "2021")
}

func TestInfoCommand(t *testing.T) {
	out, err := executeCommand(t, "--today", "01.03.2024", "info", "29.02.2024")
	require.NoError(t, err)

	for _, want := range []string{"Donnerstag", "29 / 2 / 2024", "1.2.2024", "1.3.2024", "1.1.2024", "31.12.2024", "1.1.2025", "-1"} {
		assert.Contains(t, out, want)
	}
}

func TestInfoCommand_English(t *testing.T) {
	out, err := executeCommand(t, "--today", "01.03.2024", "--lang", "en", "info", "29.02.2024")
	require.NoError(t, err)
	assert.Contains(t, out, "Thursday")
	assert.Contains(t, out, "Leap year")
	assert.Contains(t, out, "today: 1.3.2024")
}

func TestRootCommand_UnknownLanguage(t *testing.T) {
	_, err := executeCommand(t, "--lang", "fr", "today")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
	assert.Equal(t, 4, ExitCode(err))
}

func TestRootCommand_UnknownLanguageInConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "datex.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("general:\n  language: fr\n"), 0644))

	_, err := executeCommand(t, "--config", configPath, "today")
	require.Error(t, err)
	assert.Equal(t, 4, ExitCode(err))
}

func TestRootCommand_InvalidEnvOverride(t *testing.T) {
	_, err := executeCommand(t, "today")
	require.NoError(t, err)

	t.Setenv("DATEX_LOG_LEVEL", "bogus")
	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"today"})
	err = rootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, 4, ExitCode(err))
}

func TestParseCommand_EnglishError(t *testing.T) {
	_, err := executeCommand(t, "--lang", "en", "parse", "2020-12-31")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no known notation")
}

// chdir changes the working directory for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("os.Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("os.Chdir(%q) error = %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("os.Chdir(%q) error = %v", prev, err)
		}
	})
}
