package formatter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/uvmlog/pkg/model"
)

// Output formats accepted by DisplayResults.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// DisplayResults writes the analysis to w in the requested format. Unknown
// formats fall back to the text report.
func DisplayResults(w io.Writer, analysis *model.Analysis, format string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, analysis)
	case FormatYAML:
		return displayYAML(w, analysis)
	case FormatTable:
		return displayTable(w, analysis)
	case FormatHuman:
		fallthrough
	default:
		_, err := fmt.Fprintln(w, Render(analysis))
		return err
	}
}

func displayJSON(w io.Writer, analysis *model.Analysis) error {
	output, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, analysis *model.Analysis) error {
	output, err := yaml.Marshal(analysis)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(output))
	return err
}

func displayTable(w io.Writer, analysis *model.Analysis) error {
	result := analysis.TestResult

	info := table.NewWriter()
	info.SetOutputMirror(w)
	info.SetTitle("%s (%s)", result.TestName, result.Status)
	info.AppendRows([]table.Row{
		{"Test Class", valueOrUnknown(analysis.TestInfo.TestClass)},
		{"Total Time", result.TotalTime},
		{"UVM Messages", fmt.Sprintf("INFO=%d WARNING=%d ERROR=%d FATAL=%d",
			result.InfoCount, result.WarningCount, result.ErrorCount, result.FatalCount)},
		{"Issues", analysis.Summary.TotalIssues},
	})
	info.SetStyle(statusStyle(result.Status))
	info.Render()

	instrs := table.NewWriter()
	instrs.SetOutputMirror(w)
	instrs.SetTitle("Instructions Generated")
	instrs.AppendHeader(table.Row{"#", "Name", "Data", "Time (ps)", "Transaction"})
	instrs.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Time (ps)", Align: text.AlignRight},
	})
	for i, instr := range analysis.Instructions {
		instrs.AppendRow(table.Row{i + 1, instr.Name, instr.HexData, instr.Timestamp, instr.TransactionID})
	}
	instrs.AppendFooter(table.Row{"", "Total", analysis.Summary.TotalInstructions, "Unknown", analysis.Summary.UnknownInstructions})
	instrs.Render()

	comps := table.NewWriter()
	comps.SetOutputMirror(w)
	comps.SetTitle("Expected vs Actual Comparisons")
	comps.AppendHeader(table.Row{"#", "Time (ps)", "Instruction", "Address", "Data", "Write En", "Result"})
	comps.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Time (ps)", Align: text.AlignRight},
	})
	for i, c := range analysis.Comparisons {
		comps.AppendRow(table.Row{
			i + 1,
			c.Timestamp,
			pair(c.ExpectedInstr, c.ActualInstr),
			pair(c.ExpectedAddr, c.ActualAddr),
			pair(c.ExpectedData, c.ActualData),
			pair(c.ExpectedWriteEnable, c.ActualWriteEnable),
			verdict(c.Match),
		})
	}
	comps.AppendFooter(table.Row{"", "", "Made", analysis.Summary.ComparisonsMade, "Passed", analysis.Summary.ComparisonsPassed, ""})
	comps.Render()

	return nil
}

func statusStyle(status string) table.Style {
	switch status {
	case model.StatusPassed:
		return table.StyleColoredBlackOnGreenWhite
	case model.StatusFailed, model.StatusError:
		return table.StyleColoredBlackOnRedWhite
	default:
		return table.StyleColoredBlackOnYellowWhite
	}
}

func pair(expected, actual string) string {
	return expected + " / " + actual
}

func valueOrUnknown(v string) string {
	if v == "" {
		return model.Unknown
	}
	return v
}
