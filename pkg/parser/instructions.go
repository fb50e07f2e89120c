package parser

import (
	"strings"

	"github.com/helmcode/uvmlog/pkg/model"
)

// ExtractInstructions returns one event per "Driving instruction:" line, in
// line order. The data word and transaction id are looked up in the next
// lookahead lines; when several lines in that window match, the last wins.
// UNKNOWN instructions are included.
func ExtractInstructions(lines []string, lookahead int) []model.InstructionEvent {
	instructions := make([]model.InstructionEvent, 0)

	for i, line := range lines {
		if !strings.Contains(line, markerDrivingInstr) {
			continue
		}
		name, ok := capture(reDrivingInstr, line)
		if !ok {
			continue
		}

		event := model.InstructionEvent{
			Name:          name,
			HexData:       model.Unknown,
			Timestamp:     timestamp(line),
			TransactionID: model.Unknown,
		}

		for _, next := range window(lines, i, lookahead) {
			if strings.Contains(next, markerInstrData) && strings.Contains(next, markerHexLiteral) {
				if hex, ok := capture(reHexData, next); ok {
					event.HexData = "0x" + hex
				}
			} else if strings.Contains(next, markerAt) && strings.Contains(next, markerRequest) {
				if id, ok := capture(reTransaction, next); ok {
					event.TransactionID = id
				}
			}
		}

		instructions = append(instructions, event)
	}

	return instructions
}
