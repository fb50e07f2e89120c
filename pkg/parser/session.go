package parser

import (
	"strings"

	"github.com/helmcode/uvmlog/pkg/model"
)

// sessionLabel maps a header label to its session info key. When
// splitOnLabel is false the value is the text between the first and second
// colon of the line, which is how the simulator header has always been read.
type sessionLabel struct {
	label        string
	key          string
	splitOnLabel bool
}

// Checked in order; a line is assigned to the first label it contains.
var sessionLabels = []sessionLabel{
	{label: "Start of session at:", key: model.SessionStartTime, splitOnLabel: true},
	{label: "Process ID", key: model.SessionProcessID},
	{label: "Current directory", key: model.SessionWorkingDirectory},
	{label: "Running On", key: model.SessionHostname},
	{label: "Operating System", key: model.SessionOS},
	{label: "Processor Detail", key: model.SessionProcessor},
}

// ExtractSessionInfo reads the session header from the first headerLines
// lines. A label seen twice keeps its later value.
func ExtractSessionInfo(lines []string, headerLines int) model.SessionInfo {
	info := model.SessionInfo{}
	if headerLines < len(lines) {
		lines = lines[:headerLines]
	}

	for _, line := range lines {
		for _, l := range sessionLabels {
			if !strings.Contains(line, l.label) {
				continue
			}
			sep := ":"
			if l.splitOnLabel {
				sep = l.label
			}
			// A labelled line without a colon carries no value.
			if parts := strings.Split(line, sep); len(parts) > 1 {
				info[l.key] = strings.TrimSpace(parts[1])
			}
			break
		}
	}

	return info
}
