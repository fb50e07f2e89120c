package parser

import (
	"strings"

	"github.com/helmcode/uvmlog/pkg/model"
)

// ExtractComparisons returns one event per "Expected instr =" line. Address,
// data and write enable checks are read from the next lookahead lines and
// default to model.Unknown on both sides.
func ExtractComparisons(lines []string, lookahead int) []model.ComparisonEvent {
	comparisons := make([]model.ComparisonEvent, 0)

	for i, line := range lines {
		if !strings.Contains(line, markerExpectedInstr) {
			continue
		}

		c := model.ComparisonEvent{
			Timestamp:           timestamp(line),
			ExpectedInstr:       captureOr(reExpectedInstr, line),
			ActualInstr:         captureOr(reActualInstr, line),
			ExpectedAddr:        model.Unknown,
			ActualAddr:          model.Unknown,
			ExpectedData:        model.Unknown,
			ActualData:          model.Unknown,
			ExpectedWriteEnable: model.Unknown,
			ActualWriteEnable:   model.Unknown,
		}

		for _, next := range window(lines, i, lookahead) {
			switch {
			case strings.Contains(next, markerExpectedAddr):
				c.ExpectedAddr = captureOr(reExpectedAddr, next)
				c.ActualAddr = captureOr(reActualAddr, next)
			case strings.Contains(next, markerExpectedData):
				c.ExpectedData = captureOr(reExpectedData, next)
				c.ActualData = captureOr(reActualData, next)
			case strings.Contains(next, markerExpectedWrEn):
				c.ExpectedWriteEnable = captureOr(reExpectedWrEn, next)
				c.ActualWriteEnable = captureOr(reActualWrEn, next)
			}
		}

		c.Match = Matches(c)
		comparisons = append(comparisons, c)
	}

	return comparisons
}

// Matches reports whether every expected value equals its actual value.
// Values are compared as strings, so 0x0 and 0x00 differ.
func Matches(c model.ComparisonEvent) bool {
	return c.ExpectedInstr == c.ActualInstr &&
		c.ExpectedAddr == c.ActualAddr &&
		c.ExpectedData == c.ActualData &&
		c.ExpectedWriteEnable == c.ActualWriteEnable
}
