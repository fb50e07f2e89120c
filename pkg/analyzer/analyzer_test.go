package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/helmcode/uvmlog/pkg/config"
	"github.com/helmcode/uvmlog/pkg/model"
)

func TestAnalyzeFile(t *testing.T) {
	a, err := New(config.Default(), zaptest.NewLogger(t))
	require.NoError(t, err)

	got, err := a.AnalyzeFile(filepath.Join("testdata", "xsim.log"))
	require.NoError(t, err)

	want := &model.Analysis{
		SessionInfo: model.SessionInfo{
			model.SessionStartTime:        "Tue Mar  4 10:15:02 2025",
			model.SessionProcessID:        "48213",
			model.SessionWorkingDirectory: "/home/dev/riscv/build",
			model.SessionHostname:         "sim-host-01",
			model.SessionOS:               "Ubuntu 22.04",
			model.SessionProcessor:        "Intel(R) Xeon(R) Gold 6248 CPU @ 2.50GHz",
		},
		TestInfo: model.TestInfo{TestName: "riscv_alu_test", TestClass: "riscv_alu_test"},
		Instructions: []model.InstructionEvent{
			{Name: "ADD", HexData: "0x002081b3", Timestamp: "1500", TransactionID: "1502"},
			{Name: "UNKNOWN", HexData: "0xffffffff", Timestamp: "3500", TransactionID: "3502"},
		},
		Comparisons: []model.ComparisonEvent{
			{
				Timestamp:     "2500",
				ExpectedInstr: "0x002081b3", ActualInstr: "0x002081b3",
				ExpectedAddr: "0x00000004", ActualAddr: "0x00000004",
				ExpectedData: "0x0000000a", ActualData: "0x0000000a",
				ExpectedWriteEnable: "1", ActualWriteEnable: "1",
				Match: true,
			},
			{
				Timestamp:     "4500",
				ExpectedInstr: "0xffffffff", ActualInstr: "0xffffffff",
				ExpectedAddr: "0x00000008", ActualAddr: "0x0000000c",
				ExpectedData: model.Unknown, ActualData: model.Unknown,
				ExpectedWriteEnable: model.Unknown, ActualWriteEnable: model.Unknown,
				Match: false,
			},
		},
		Issues: model.Issues{
			Warnings: []string{
				"UVM_WARNING @ 4000: uvm_test_top.env.agent.mon [MON] Unrecognized opcode observed",
				"UVM_WARNING :    1",
			},
			Errors: []string{
				"UVM_ERROR @ 4500: uvm_test_top.env.scb [SCB] Address mismatch",
				"UVM_ERROR :    1",
			},
			Fatals: []string{"UVM_FATAL :    0"},
			UnknownInstructions: []model.UnknownInstruction{
				{
					Timestamp: "3500",
					Line:      "UVM_INFO @ 3500: uvm_test_top.env.agent.drv [DRV] Driving instruction: UNKNOWN",
				},
			},
		},
		TestResult: model.TestResult{
			TestName:     "riscv_alu_test",
			Status:       model.StatusPassed,
			TotalTime:    "5100 ps",
			InfoCount:    11,
			WarningCount: 1,
			ErrorCount:   1,
		},
		Summary: model.Summary{
			TotalInstructions:   2,
			UnknownInstructions: 1,
			ComparisonsMade:     2,
			ComparisonsPassed:   1,
			TotalIssues:         5,
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("analysis mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeFileNotFound(t *testing.T) {
	_, err := NewDefault().AnalyzeFile(filepath.Join(t.TempDir(), "xsim.log"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestAnalyzeFileUnreadable(t *testing.T) {
	// A directory cannot be read as a file.
	_, err := NewDefault().AnalyzeFile(t.TempDir())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLogNotFound)
}

func TestAnalyzeEmptyLog(t *testing.T) {
	got := NewDefault().Analyze("")

	assert.Empty(t, got.SessionInfo)
	assert.Equal(t, model.TestInfo{}, got.TestInfo)
	assert.Empty(t, got.Instructions)
	assert.Empty(t, got.Comparisons)
	assert.Zero(t, got.Issues.Total())
	assert.Equal(t, model.StatusUnknown, got.TestResult.Status)
	assert.Equal(t, model.Unknown, got.TestResult.TestName)
	assert.Equal(t, model.Unknown, got.TestResult.TotalTime)
	assert.Equal(t, model.Summary{}, got.Summary)
}

func TestAnalyzeDrivenInstruction(t *testing.T) {
	log := "UVM_INFO @ 100: drv Driving instruction: ADD\n" +
		"noise\n" +
		"  instr_data integral 32 'h12345678\n"

	got := NewDefault().Analyze(log)

	require.Len(t, got.Instructions, 1)
	assert.Equal(t, "0x12345678", got.Instructions[0].HexData)
	assert.Equal(t, "100", got.Instructions[0].Timestamp)
}

func TestAnalyzeTestNameMatch(t *testing.T) {
	log := "Running test first_test\nRunning test second_test\n"

	t.Run("compat", func(t *testing.T) {
		got := NewDefault().Analyze(log)

		assert.Equal(t, "second_test", got.TestInfo.TestName)
		assert.Equal(t, "first_test", got.TestResult.TestName)
	})

	t.Run("first", func(t *testing.T) {
		opts := config.Default()
		opts.TestNameMatch = config.TestNameFirst
		a, err := New(opts, nil)
		require.NoError(t, err)

		got := a.Analyze(log)

		assert.Equal(t, "first_test", got.TestInfo.TestName)
		assert.Equal(t, "first_test", got.TestResult.TestName)
	})
}

func TestAnalyzeStripANSI(t *testing.T) {
	log := "\x1b[33mUVM_WARNING\x1b[0m @ 10: slow\n" +
		"\x1b[32mDriving instruction:\x1b[0m ADD\n"

	t.Run("kept by default", func(t *testing.T) {
		got := NewDefault().Analyze(log)

		assert.Empty(t, got.Instructions)
		require.Len(t, got.Issues.Warnings, 1)
		assert.Contains(t, got.Issues.Warnings[0], "\x1b[")
	})

	t.Run("stripped", func(t *testing.T) {
		opts := config.Default()
		opts.StripANSI = true
		a, err := New(opts, nil)
		require.NoError(t, err)

		got := a.Analyze(log)

		require.Len(t, got.Instructions, 1)
		assert.Equal(t, "ADD", got.Instructions[0].Name)
		assert.Equal(t, []string{"UVM_WARNING @ 10: slow"}, got.Issues.Warnings)
	})
}

func TestNewInvalidOptions(t *testing.T) {
	opts := config.Default()
	opts.ComparisonWindow = -1

	_, err := New(opts, nil)
	assert.ErrorContains(t, err, "comparison_window")
}

func TestAnalyzeCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xsim.log")
	require.NoError(t, os.WriteFile(path, []byte("UVM_ERROR @ 5: bad\r\nTEST CASE FAILED\r\n"), 0644))

	got, err := NewDefault().AnalyzeFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"UVM_ERROR @ 5: bad"}, got.Issues.Errors)
	assert.Equal(t, model.StatusFailed, got.TestResult.Status)
}
