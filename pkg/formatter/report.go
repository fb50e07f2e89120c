package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/helmcode/uvmlog/pkg/model"
)

const (
	reportTitle = "UVM SIMULATION LOG ANALYSIS REPORT"
	ruleWidth   = 60
)

// Render formats the analysis as the plain text report. The output has no
// trailing newline and depends only on its input.
func Render(analysis *model.Analysis) string {
	var out []string
	add := func(format string, args ...interface{}) {
		out = append(out, fmt.Sprintf(format, args...))
	}
	rule := strings.Repeat("=", ruleWidth)

	out = append(out, rule, reportTitle, rule, "")

	result := analysis.TestResult
	out = append(out, "TEST INFORMATION:")
	add("  Test Name: %s", result.TestName)
	add("  Test Class: %s", valueOrUnknown(analysis.TestInfo.TestClass))
	add("  Status: %s", result.Status)
	add("  Total Time: %s", result.TotalTime)
	out = append(out, "")

	summary := analysis.Summary
	out = append(out, "SUMMARY:")
	add("  Total Instructions: %d", summary.TotalInstructions)
	add("  Unknown Instructions: %d", summary.UnknownInstructions)
	add("  Comparisons Made: %d", summary.ComparisonsMade)
	add("  UVM Messages: INFO=%d, WARNING=%d, ERROR=%d, FATAL=%d",
		result.InfoCount, result.WarningCount, result.ErrorCount, result.FatalCount)
	out = append(out, "")

	out = append(out, "INSTRUCTIONS GENERATED:")
	if len(analysis.Instructions) > 0 {
		for i, instr := range analysis.Instructions {
			add("  %d. %s (%s) @ %sps", i+1, instr.Name, instr.HexData, instr.Timestamp)
		}
	} else {
		out = append(out, "  No instructions found")
	}
	out = append(out, "")

	out = append(out, "EXPECTED vs ACTUAL COMPARISONS:")
	if len(analysis.Comparisons) > 0 {
		for i, c := range analysis.Comparisons {
			add("  %d. @ %sps - %s", i+1, c.Timestamp, verdict(c.Match))
			add("     Instruction: %s vs %s", c.ExpectedInstr, c.ActualInstr)
			add("     Address:     %s vs %s", c.ExpectedAddr, c.ActualAddr)
			add("     Data:        %s vs %s", c.ExpectedData, c.ActualData)
			add("     Write En:    %s vs %s", c.ExpectedWriteEnable, c.ActualWriteEnable)
		}
	} else {
		out = append(out, "  No comparisons found")
	}
	out = append(out, "")

	issues := analysis.Issues
	out = append(out, "ISSUES FOUND:")
	if issues.Total() > 0 {
		if n := len(issues.UnknownInstructions); n > 0 {
			add("  Unknown Instructions (%d):", n)
			for _, u := range issues.UnknownInstructions {
				add("    @ %sps", u.Timestamp)
			}
		}
		out = appendIssueLines(out, "Warnings", issues.Warnings)
		out = appendIssueLines(out, "Errors", issues.Errors)
		out = appendIssueLines(out, "Fatal Errors", issues.Fatals)
	} else {
		out = append(out, "  No issues found")
	}

	out = append(out, "", rule)

	return strings.Join(out, "\n")
}

func appendIssueLines(out []string, title string, lines []string) []string {
	if len(lines) == 0 {
		return out
	}
	out = append(out, fmt.Sprintf("  %s (%d):", title, len(lines)))
	for _, line := range lines {
		out = append(out, "    "+line)
	}
	return out
}

func verdict(match bool) string {
	if match {
		return "✓ PASS"
	}
	return "✗ FAIL"
}

// SaveReport writes the report to path, replacing any previous content.
func SaveReport(path, report string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
