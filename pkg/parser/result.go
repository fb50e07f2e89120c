package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/helmcode/uvmlog/pkg/model"
)

// ExtractTestResult determines the outcome of the run.
//
// The status scan stops at the first TEST CASE PASSED or TEST CASE FAILED
// line. Error and fatal lines seen before that point mark the run as ERROR,
// which a later pass/fail line still overrides.
func ExtractTestResult(lines []string) model.TestResult {
	result := model.TestResult{
		TestName:  FirstTestName(lines),
		Status:    status(lines),
		TotalTime: totalTime(lines),
	}

	for _, line := range lines {
		switch {
		case strings.Contains(line, markerInfoCount):
			setCount(&result.InfoCount, reInfoCount, line)
		case strings.Contains(line, markerWarningCount):
			setCount(&result.WarningCount, reWarningCount, line)
		case strings.Contains(line, markerErrorCount):
			setCount(&result.ErrorCount, reErrorCount, line)
		case strings.Contains(line, markerFatalCount):
			setCount(&result.FatalCount, reFatalCount, line)
		}
	}

	return result
}

func status(lines []string) string {
	s := model.StatusUnknown
	for _, line := range lines {
		switch {
		case strings.Contains(line, markerPassed):
			return model.StatusPassed
		case strings.Contains(line, markerFailed):
			return model.StatusFailed
		case strings.Contains(line, markerError), strings.Contains(line, markerFatal):
			s = model.StatusError
		}
	}
	return s
}

func totalTime(lines []string) string {
	for _, line := range lines {
		if !strings.Contains(line, markerFinish) {
			continue
		}
		if t, ok := capture(reTotalTime, line); ok {
			return t
		}
	}
	return model.Unknown
}

// setCount overwrites *dst with the counter on line, if it parses.
func setCount(dst *int, re *regexp.Regexp, line string) {
	v, ok := capture(re, line)
	if !ok {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}
