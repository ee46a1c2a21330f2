package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/yassine-ta/credential-forge/internal/executor"
)

// TableFormatter formats output as a table (kubectl-style)
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// Format outputs a single data item as a table
func (f *TableFormatter) Format(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case map[string]interface{}:
		return f.formatMap(f.createTable(w), v)
	default:
		fmt.Fprintln(w, v)
		return nil
	}
}

// FormatResults outputs resolved generation results as a table
func (f *TableFormatter) FormatResults(w io.Writer, results []executor.Result) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results")
		return nil
	}

	colors := NewColorScheme(w, f.options.NoColor)
	table := f.createTable(w)

	headers := []string{"TYPE", "CREDENTIAL", "STATUS", "DURATION"}
	if !f.options.NoHeaders {
		if colors.Disabled {
			table.SetHeader(headers)
		} else {
			coloredHeaders := make([]string, len(headers))
			for i, h := range headers {
				coloredHeaders[i] = colors.Header(h)
			}
			table.SetHeader(coloredHeaders)
		}
	}

	for _, row := range rowsFromResults(results) {
		table.Append(f.formatResultRow(row, colors))
	}

	table.Render()
	f.printSummary(w, results, colors)

	return nil
}

// FormatStats outputs per-pool executor statistics as a table
func (f *TableFormatter) FormatStats(w io.Writer, stats []executor.Stats) error {
	colors := NewColorScheme(w, f.options.NoColor)
	table := f.createTable(w)

	headers := []string{"POOL", "WORKERS", "ACTIVE", "COMPLETED", "TOTAL TIME", "AVG TIME"}
	if !f.options.NoHeaders {
		if colors.Disabled {
			table.SetHeader(headers)
		} else {
			coloredHeaders := make([]string, len(headers))
			for i, h := range headers {
				coloredHeaders[i] = colors.Header(h)
			}
			table.SetHeader(coloredHeaders)
		}
	}

	for i, s := range stats {
		table.Append([]string{
			strconv.Itoa(i),
			strconv.Itoa(s.Workers),
			strconv.Itoa(s.ActiveTasks),
			strconv.FormatUint(s.CompletedTasks, 10),
			s.TotalExecutionTime.String(),
			s.AverageTaskTime.String(),
		})
	}

	table.Render()
	return nil
}

// formatResultRow formats a single result as a table row
func (f *TableFormatter) formatResultRow(row resultRow, colors *ColorScheme) []string {
	credType := row.Type
	if credType == "" {
		credType = "-"
	}
	if !colors.Disabled {
		credType = colors.TypeName(credType)
	}

	value := row.Value
	if row.Err != nil {
		value = row.Err.Error()
	}
	if !f.options.Wide && len(value) > 60 {
		value = value[:57] + "..."
	}

	status := row.Status
	if !colors.Disabled {
		status = colors.StatusColor(row.Status)(status)
	}

	duration := row.Duration
	if !colors.Disabled {
		duration = colors.Duration(duration)
	}

	return []string{credType, value, status, duration}
}

// formatMap formats a map as a two-column table (key-value pairs)
func (f *TableFormatter) formatMap(table *tablewriter.Table, data map[string]interface{}) error {
	if !f.options.NoHeaders {
		table.SetHeader([]string{"KEY", "VALUE"})
	}

	for k, v := range data {
		table.Append([]string{k, fmt.Sprintf("%v", v)})
	}

	table.Render()
	return nil
}

// createTable creates a new table with kubectl-style configuration
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	return table
}

// printSummary prints a summary of the results
func (f *TableFormatter) printSummary(w io.Writer, results []executor.Result, colors *ColorScheme) {
	summary := executor.Summarize(results)

	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Summary: ")

	successText := fmt.Sprintf("%d successful", summary.Successful)
	if !colors.Disabled {
		successText = colors.Success(successText)
	}

	failedText := fmt.Sprintf("%d failed", summary.Failed)
	if !colors.Disabled && summary.Failed > 0 {
		failedText = colors.Error(failedText)
	}

	fmt.Fprintf(w, "%s, %s", successText, failedText)

	if summary.Abandoned > 0 {
		abandonedText := fmt.Sprintf("%d abandoned", summary.Abandoned)
		if !colors.Disabled {
			abandonedText = colors.Warning(abandonedText)
		}
		fmt.Fprintf(w, ", %s", abandonedText)
	}

	durationText := fmt.Sprintf("avg=%s", summary.AvgDuration)
	if !colors.Disabled {
		durationText = colors.Duration(durationText)
	}
	fmt.Fprintf(w, ", %s\n", durationText)
}
