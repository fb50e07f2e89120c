package analyzer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/acarl005/stripansi"
	"go.uber.org/zap"

	"github.com/helmcode/uvmlog/pkg/config"
	"github.com/helmcode/uvmlog/pkg/model"
	"github.com/helmcode/uvmlog/pkg/parser"
)

// ErrLogNotFound is returned by AnalyzeFile when the log file does not exist.
var ErrLogNotFound = errors.New("log file not found")

type Analyzer struct {
	opts   config.Options
	logger *zap.Logger
}

func New(opts config.Options, logger *zap.Logger) (*Analyzer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{opts: opts, logger: logger}, nil
}

// NewDefault returns an analyzer using config.Default().
func NewDefault() *Analyzer {
	return &Analyzer{opts: config.Default(), logger: zap.NewNop()}
}

// Analyze extracts the analysis record from raw log text. It never fails:
// anything missing from the log is left as a placeholder value.
func (a *Analyzer) Analyze(text string) *model.Analysis {
	if a.opts.StripANSI {
		text = stripansi.Strip(text)
	}
	lines := parser.SplitLines(text)

	testInfo := parser.ExtractTestInfo(lines)
	if a.opts.TestNameMatch == config.TestNameFirst && testInfo.TestName != "" {
		testInfo.TestName = parser.FirstTestName(lines)
	}

	comparisons := parser.ExtractComparisons(lines, a.opts.ComparisonWindow)

	analysis := &model.Analysis{
		SessionInfo:  parser.ExtractSessionInfo(lines, a.opts.SessionHeaderLines),
		TestInfo:     testInfo,
		Instructions: parser.ExtractInstructions(lines, a.opts.InstructionWindow),
		Comparisons:  comparisons,
		Issues:       parser.ExtractIssues(lines),
		TestResult:   parser.ExtractTestResult(lines),
		Summary:      parser.Summarize(lines, comparisons),
	}

	a.logger.Debug("Log analyzed",
		zap.Int("lines", len(lines)),
		zap.Int("session_fields", len(analysis.SessionInfo)),
		zap.Int("instructions", len(analysis.Instructions)),
		zap.Int("comparisons", len(analysis.Comparisons)),
		zap.Int("issues", analysis.Issues.Total()),
		zap.String("status", analysis.TestResult.Status))

	return analysis
}

// AnalyzeFile reads the whole file at path and analyzes it.
func (a *Analyzer) AnalyzeFile(path string) (*model.Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLogNotFound, path)
		}
		return nil, fmt.Errorf("failed to read log %s: %w", path, err)
	}
	a.logger.Debug("Log read", zap.String("path", path), zap.Int("bytes", len(data)))

	return a.Analyze(string(data)), nil
}
