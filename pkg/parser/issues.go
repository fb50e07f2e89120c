package parser

import (
	"strings"

	"github.com/helmcode/uvmlog/pkg/model"
)

// ExtractIssues classifies problem lines. Each line lands in at most one
// category, checked in the order warning, error, fatal, unknown instruction.
func ExtractIssues(lines []string) model.Issues {
	issues := model.Issues{
		Warnings:            make([]string, 0),
		Errors:              make([]string, 0),
		Fatals:              make([]string, 0),
		UnknownInstructions: make([]model.UnknownInstruction, 0),
	}

	for _, line := range lines {
		switch {
		case strings.Contains(line, markerWarning):
			issues.Warnings = append(issues.Warnings, strings.TrimSpace(line))
		case strings.Contains(line, markerError):
			issues.Errors = append(issues.Errors, strings.TrimSpace(line))
		case strings.Contains(line, markerFatal):
			issues.Fatals = append(issues.Fatals, strings.TrimSpace(line))
		case strings.Contains(line, markerUnknownInstr):
			issues.UnknownInstructions = append(issues.UnknownInstructions, model.UnknownInstruction{
				Timestamp: timestamp(line),
				Line:      strings.TrimSpace(line),
			})
		}
	}

	return issues
}
