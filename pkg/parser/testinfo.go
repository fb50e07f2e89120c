package parser

import (
	"strings"

	"github.com/helmcode/uvmlog/pkg/model"
)

// ExtractTestInfo returns the test name and UVM test class. Both fields keep
// the last value found in the log.
func ExtractTestInfo(lines []string) model.TestInfo {
	var info model.TestInfo

	for _, line := range lines {
		if strings.Contains(line, markerRunningTest) {
			if name, ok := capture(reRunningTest, line); ok {
				info.TestName = name
			}
		} else if strings.Contains(line, markerTestName) {
			if class, ok := capture(reTestName, line); ok {
				info.TestClass = class
			}
		}
	}

	return info
}

// FirstTestName returns the first "Running test <name>" match, or
// model.Unknown.
func FirstTestName(lines []string) string {
	for _, line := range lines {
		if !strings.Contains(line, markerRunningTest) {
			continue
		}
		if name, ok := capture(reRunningTest, line); ok {
			return name
		}
	}
	return model.Unknown
}
