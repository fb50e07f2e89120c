package parser

import (
	"regexp"
	"strings"

	"github.com/helmcode/uvmlog/pkg/model"
)

// Line markers. Detection is always a plain substring test; the regular
// expressions below only pull values out of lines that carry a marker.
const (
	markerDrivingInstr  = "Driving instruction:"
	markerUnknownInstr  = "Driving instruction: UNKNOWN"
	markerUnknown       = "UNKNOWN"
	markerExpectedInstr = "Expected instr ="
	markerExpectedAddr  = "Expected addr ="
	markerExpectedData  = "Expected data ="
	markerExpectedWrEn  = "Expected write enable ="
	markerInstrData     = "instr_data"
	markerHexLiteral    = "'h"
	markerRequest       = "req"
	markerAt            = "@"
	markerRunningTest   = "Running test"
	markerTestName      = "UVM_TESTNAME="
	markerWarning       = "UVM_WARNING"
	markerError         = "UVM_ERROR"
	markerFatal         = "UVM_FATAL"
	markerPassed        = "TEST CASE PASSED"
	markerFailed        = "TEST CASE FAILED"
	markerFinish        = "$finish called at time"
	markerInfoCount     = "UVM_INFO :"
	markerWarningCount  = "UVM_WARNING :"
	markerErrorCount    = "UVM_ERROR :"
	markerFatalCount    = "UVM_FATAL :"
)

var (
	reTimestamp    = regexp.MustCompile(`@ (\d+):`)
	reDrivingInstr = regexp.MustCompile(`Driving instruction: (\w+)`)
	reHexData      = regexp.MustCompile(`'h([0-9a-fA-F]+)`)
	reTransaction  = regexp.MustCompile(`@(\d+)`)
	reRunningTest  = regexp.MustCompile(`Running test (\w+)`)
	reTestName     = regexp.MustCompile(`UVM_TESTNAME=(\w+)`)

	reExpectedInstr = regexp.MustCompile(`Expected instr = (0x[0-9a-fA-F]+)`)
	reActualInstr   = regexp.MustCompile(`Actual instr = (0x[0-9a-fA-F]+)`)
	reExpectedAddr  = regexp.MustCompile(`Expected addr = (0x[0-9a-fA-F]+)`)
	reActualAddr    = regexp.MustCompile(`Actual addr = (0x[0-9a-fA-F]+)`)
	reExpectedData  = regexp.MustCompile(`Expected data = (0x[0-9a-fA-F]+)`)
	reActualData    = regexp.MustCompile(`Actual data = (0x[0-9a-fA-F]+)`)
	reExpectedWrEn  = regexp.MustCompile(`Expected write enable = (\d+)`)
	reActualWrEn    = regexp.MustCompile(`Actual write enable = (\d+)`)

	reTotalTime    = regexp.MustCompile(`time : (\d+ \w+)`)
	reInfoCount    = regexp.MustCompile(`UVM_INFO :\s*(\d+)`)
	reWarningCount = regexp.MustCompile(`UVM_WARNING :\s*(\d+)`)
	reErrorCount   = regexp.MustCompile(`UVM_ERROR :\s*(\d+)`)
	reFatalCount   = regexp.MustCompile(`UVM_FATAL :\s*(\d+)`)
)

// SplitLines splits raw log text on newlines. Carriage returns are kept and
// dropped later by trimming where a whole line is stored.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// capture returns the first submatch of re in line.
func capture(re *regexp.Regexp, line string) (string, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// captureOr returns the first submatch of re in line, or model.Unknown.
func captureOr(re *regexp.Regexp, line string) string {
	if v, ok := capture(re, line); ok {
		return v
	}
	return model.Unknown
}

// timestamp extracts the "@ <ps>:" simulation time of a line.
func timestamp(line string) string {
	return captureOr(reTimestamp, line)
}

// window returns the lines following index i, at most n of them.
func window(lines []string, i, n int) []string {
	end := i + 1 + n
	if end > len(lines) {
		end = len(lines)
	}
	if i+1 >= end {
		return nil
	}
	return lines[i+1 : end]
}
