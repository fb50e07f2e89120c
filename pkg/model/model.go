package model

// Unknown is the placeholder stored in every string field whose value could
// not be found in the log.
const Unknown = "unknown"

// Test status values.
const (
	StatusPassed  = "PASSED"
	StatusFailed  = "FAILED"
	StatusError   = "ERROR"
	StatusUnknown = "UNKNOWN"
)

// Analysis is the full record extracted from one simulation log.
type Analysis struct {
	SessionInfo  SessionInfo        `json:"session_info" yaml:"session_info"`
	TestInfo     TestInfo           `json:"test_info" yaml:"test_info"`
	Instructions []InstructionEvent `json:"instructions" yaml:"instructions"`
	Comparisons  []ComparisonEvent  `json:"comparisons" yaml:"comparisons"`
	Issues       Issues             `json:"issues" yaml:"issues"`
	TestResult   TestResult         `json:"test_result" yaml:"test_result"`
	Summary      Summary            `json:"summary" yaml:"summary"`
}

// SessionInfo holds the simulator session header fields. Keys are only
// present when the corresponding label was seen.
type SessionInfo map[string]string

// Session info keys.
const (
	SessionStartTime        = "start_time"
	SessionProcessID        = "process_id"
	SessionWorkingDirectory = "working_directory"
	SessionHostname         = "hostname"
	SessionOS               = "os"
	SessionProcessor        = "processor"
)

// TestInfo holds the test name and UVM test class, empty when absent.
type TestInfo struct {
	TestName  string `json:"test_name,omitempty" yaml:"test_name,omitempty"`
	TestClass string `json:"test_class,omitempty" yaml:"test_class,omitempty"`
}

// InstructionEvent is one "Driving instruction:" occurrence.
type InstructionEvent struct {
	Name          string `json:"name" yaml:"name"`
	HexData       string `json:"hex_data" yaml:"hex_data"`
	Timestamp     string `json:"timestamp" yaml:"timestamp"` // picoseconds
	TransactionID string `json:"transaction_id" yaml:"transaction_id"`
}

// ComparisonEvent is one expected-vs-actual check reported by the scoreboard.
type ComparisonEvent struct {
	Timestamp           string `json:"timestamp" yaml:"timestamp"`
	ExpectedInstr       string `json:"expected_instr" yaml:"expected_instr"`
	ActualInstr         string `json:"actual_instr" yaml:"actual_instr"`
	ExpectedAddr        string `json:"expected_addr" yaml:"expected_addr"`
	ActualAddr          string `json:"actual_addr" yaml:"actual_addr"`
	ExpectedData        string `json:"expected_data" yaml:"expected_data"`
	ActualData          string `json:"actual_data" yaml:"actual_data"`
	ExpectedWriteEnable string `json:"expected_write_en" yaml:"expected_write_en"`
	ActualWriteEnable   string `json:"actual_write_en" yaml:"actual_write_en"`
	Match               bool   `json:"match" yaml:"match"`
}

// Issues groups the problem lines found in the log, each in line order.
type Issues struct {
	Warnings            []string             `json:"warnings" yaml:"warnings"`
	Errors              []string             `json:"errors" yaml:"errors"`
	Fatals              []string             `json:"fatals" yaml:"fatals"`
	UnknownInstructions []UnknownInstruction `json:"unknown_instructions" yaml:"unknown_instructions"`
}

// Total returns the number of entries across all four categories.
func (i Issues) Total() int {
	return len(i.Warnings) + len(i.Errors) + len(i.Fatals) + len(i.UnknownInstructions)
}

// UnknownInstruction records a driven instruction the generator could not decode.
type UnknownInstruction struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Line      string `json:"line" yaml:"line"`
}

// TestResult is the overall outcome of the run.
type TestResult struct {
	TestName     string `json:"test_name" yaml:"test_name"`
	Status       string `json:"status" yaml:"status"`
	TotalTime    string `json:"total_time" yaml:"total_time"`
	InfoCount    int    `json:"uvm_info_count" yaml:"uvm_info_count"`
	WarningCount int    `json:"uvm_warning_count" yaml:"uvm_warning_count"`
	ErrorCount   int    `json:"uvm_error_count" yaml:"uvm_error_count"`
	FatalCount   int    `json:"uvm_fatal_count" yaml:"uvm_fatal_count"`
}

// Summary holds whole-log counters.
type Summary struct {
	TotalInstructions   int `json:"total_instructions" yaml:"total_instructions"`
	UnknownInstructions int `json:"unknown_instructions" yaml:"unknown_instructions"`
	ComparisonsMade     int `json:"comparisons_made" yaml:"comparisons_made"`
	// ComparisonsPassed is not part of the text report.
	ComparisonsPassed int `json:"comparisons_passed" yaml:"comparisons_passed"`
	TotalIssues       int `json:"total_issues" yaml:"total_issues"`
}
