package parser

import (
	"strings"

	"github.com/helmcode/uvmlog/pkg/model"
)

// Summarize counts instruction, comparison and issue lines over the whole
// log. It does not depend on the windowed extraction, except for
// ComparisonsPassed which is taken from the extracted comparisons.
func Summarize(lines []string, comparisons []model.ComparisonEvent) model.Summary {
	var s model.Summary

	for _, line := range lines {
		if strings.Contains(line, markerDrivingInstr) {
			s.TotalInstructions++
			if strings.Contains(line, markerUnknown) {
				s.UnknownInstructions++
			}
		}
		if strings.Contains(line, markerExpectedInstr) {
			s.ComparisonsMade++
		}
		if strings.Contains(line, markerWarning) ||
			strings.Contains(line, markerError) ||
			strings.Contains(line, markerFatal) {
			s.TotalIssues++
		}
	}

	for _, c := range comparisons {
		if c.Match {
			s.ComparisonsPassed++
		}
	}

	return s
}
