package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/helmcode/uvmlog/pkg/analyzer"
	"github.com/helmcode/uvmlog/pkg/config"
	"github.com/helmcode/uvmlog/pkg/formatter"
)

const (
	defaultLogName    = "xsim.log"
	defaultReportName = "xsim_analysis.txt"
)

var (
	configFile   string
	buildDir     string
	saveTo       string
	noSave       bool
	outputFormat string
	stripANSI    bool
	verbose      bool
)

// NewAnalyzeCmd returns the command that analyzes one simulation log.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uvmlog [LOG_FILE]",
		Short: "Summarize a UVM simulation log",
		Long: `uvmlog extracts the test result, driven instructions, scoreboard comparisons
and UVM warnings/errors from a simulator log and prints a report.

Without LOG_FILE the log is read from <build-dir>/xsim.log, where build-dir
defaults to ../build next to the uvmlog binary. The text report is also saved
to <build-dir>/xsim_analysis.txt.

Examples:
  # Analyze build/xsim.log next to the binary
  uvmlog

  # Analyze a specific log
  uvmlog sim/run_42/xsim.log

  # Machine-readable output, without saving the text report
  uvmlog sim/xsim.log -o json --no-save`,
		Args:          maxOneLogFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAnalyze,
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML file with analyzer options")
	cmd.Flags().StringVar(&buildDir, "build-dir", defaultBuildDir(), "Directory holding xsim.log and the saved report")
	cmd.Flags().StringVar(&saveTo, "save-to", "", "Path of the saved report (default <build-dir>/xsim_analysis.txt)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not save the text report")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", formatter.FormatHuman, "Output format (human, json, yaml, table)")
	cmd.Flags().BoolVar(&stripANSI, "strip-ansi", false, "Remove ANSI escape sequences before scanning")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging on stderr")

	return cmd
}

func maxOneLogFile(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		_ = cmd.Usage()
		return fmt.Errorf("expected at most one log file, got %d arguments", len(args))
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := config.Default()
	if configFile != "" {
		if opts, err = config.Load(configFile); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("strip-ansi") {
		opts.StripANSI = stripANSI
	}

	logPath := filepath.Join(buildDir, defaultLogName)
	if len(args) == 1 {
		logPath = args[0]
	}
	reportPath := saveTo
	if reportPath == "" {
		reportPath = filepath.Join(buildDir, defaultReportName)
	}
	logger.Debug("Resolved paths", zap.String("log", logPath), zap.String("report", reportPath))

	a, err := analyzer.New(opts, logger)
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = " Analyzing " + logPath + "..."
	s.Start()

	analysis, err := a.AnalyzeFile(logPath)
	s.Stop()
	if err != nil {
		if errors.Is(err, analyzer.ErrLogNotFound) {
			return fmt.Errorf("File '%s' not found\nMake sure %s exists in the build directory", logPath, defaultLogName)
		}
		return fmt.Errorf("processing file: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := formatter.DisplayResults(out, analysis, outputFormat); err != nil {
		return fmt.Errorf("failed to display results: %w", err)
	}

	if noSave {
		return nil
	}

	// Status lines stay off stdout when it carries machine-readable output.
	status := out
	if outputFormat == formatter.FormatJSON || outputFormat == formatter.FormatYAML {
		status = cmd.ErrOrStderr()
	}

	fmt.Fprintln(status)
	if err := formatter.SaveReport(reportPath, formatter.Render(analysis)); err != nil {
		logger.Warn("Report not saved", zap.String("path", reportPath), zap.Error(err))
		printNote(status, fmt.Sprintf("Could not save analysis file: %v", err))
		return nil
	}
	printSuccess(status, "Detailed analysis saved to: "+reportPath)

	return nil
}

// defaultBuildDir is the build directory next to the directory holding the
// running binary.
func defaultBuildDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "build"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", "build")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}

func printNote(w io.Writer, msg string) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(w, "Note: %s\n", msg)
}
