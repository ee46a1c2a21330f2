package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yassine-ta/credential-forge/internal/executor"
	"github.com/yassine-ta/credential-forge/internal/generator"
)

func TestNewTableFormatter(t *testing.T) {
	tests := []struct {
		name string
		opts *Options
	}{
		{
			name: "nil options",
			opts: nil,
		},
		{
			name: "with options",
			opts: &Options{NoColor: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewTableFormatter(tt.opts)
			if formatter == nil {
				t.Fatal("NewTableFormatter returned nil")
			}
			if formatter.options == nil {
				t.Error("formatter.options is nil")
			}
		})
	}
}

func TestTableFormatter_FormatResults(t *testing.T) {
	longValue := strings.Repeat("x", 80)

	tests := []struct {
		name        string
		results     []executor.Result
		opts        *Options
		contains    []string
		notContains []string
	}{
		{
			name: "successful results",
			results: []executor.Result{
				{
					Value:    generator.Credential{Type: "api_key", Value: "sk-one"},
					Duration: 100 * time.Millisecond,
				},
				{
					Value:    generator.Credential{Type: "jwt_token", Value: "eyJh.eyJz.sig"},
					Duration: 200 * time.Millisecond,
				},
			},
			opts:     &Options{NoColor: true},
			contains: []string{"TYPE", "CREDENTIAL", "STATUS", "DURATION", "api_key", "jwt_token", "Success", "Summary", "2 successful"},
		},
		{
			name: "mixed results",
			results: []executor.Result{
				{
					Value:    generator.Credential{Type: "api_key", Value: "sk-one"},
					Duration: 100 * time.Millisecond,
				},
				{
					Err:      errors.New("unknown credential type \"bogus\""),
					Duration: 50 * time.Millisecond,
				},
			},
			opts:     &Options{NoColor: true},
			contains: []string{"api_key", "Success", "Failed", "unknown credential type", "1 successful", "1 failed"},
		},
		{
			name: "abandoned result",
			results: []executor.Result{
				{
					Err: executor.ErrTaskAbandoned,
				},
			},
			opts:     &Options{NoColor: true},
			contains: []string{"Abandoned", "1 abandoned"},
		},
		{
			name:     "empty results",
			results:  []executor.Result{},
			opts:     &Options{NoColor: true},
			contains: []string{"No results"},
		},
		{
			name: "long values truncated",
			results: []executor.Result{
				{
					Value:    generator.Credential{Type: "api_key", Value: longValue},
					Duration: time.Millisecond,
				},
			},
			opts:        &Options{NoColor: true},
			contains:    []string{"..."},
			notContains: []string{longValue},
		},
		{
			name: "wide mode keeps full value",
			results: []executor.Result{
				{
					Value:    generator.Credential{Type: "api_key", Value: longValue},
					Duration: time.Millisecond,
				},
			},
			opts:     &Options{NoColor: true, Wide: true},
			contains: []string{longValue},
		},
		{
			name: "no headers mode",
			results: []executor.Result{
				{
					Value:    generator.Credential{Type: "api_key", Value: "sk-one"},
					Duration: time.Millisecond,
				},
			},
			opts:        &Options{NoColor: true, NoHeaders: true},
			contains:    []string{"api_key", "Success"},
			notContains: []string{"CREDENTIAL", "STATUS", "DURATION"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewTableFormatter(tt.opts)
			var buf bytes.Buffer

			if err := formatter.FormatResults(&buf, tt.results); err != nil {
				t.Fatalf("FormatResults() error = %v", err)
			}

			output := buf.String()
			for _, substr := range tt.contains {
				if !strings.Contains(output, substr) {
					t.Errorf("FormatResults() output missing %q\nGot: %s", substr, output)
				}
			}

			for _, substr := range tt.notContains {
				if strings.Contains(output, substr) {
					t.Errorf("FormatResults() output should not contain %q\nGot: %s", substr, output)
				}
			}
		})
	}
}

func TestTableFormatter_FormatStats(t *testing.T) {
	formatter := NewTableFormatter(&Options{NoColor: true})
	var buf bytes.Buffer

	stats := []executor.Stats{
		{Workers: 4, ActiveTasks: 0, CompletedTasks: 100, TotalExecutionTime: 2 * time.Second, AverageTaskTime: 20 * time.Millisecond},
		{Workers: 2, ActiveTasks: 1, CompletedTasks: 50, TotalExecutionTime: time.Second, AverageTaskTime: 20 * time.Millisecond},
	}

	if err := formatter.FormatStats(&buf, stats); err != nil {
		t.Fatalf("FormatStats() error = %v", err)
	}

	output := buf.String()
	for _, substr := range []string{"POOL", "WORKERS", "COMPLETED", "100", "50"} {
		if !strings.Contains(output, substr) {
			t.Errorf("FormatStats() output missing %q\nGot: %s", substr, output)
		}
	}
}

func TestTableFormatter_CreateTable(t *testing.T) {
	formatter := NewTableFormatter(&Options{})
	var buf bytes.Buffer

	table := formatter.createTable(&buf)

	if table == nil {
		t.Fatal("createTable returned nil")
	}

	table.SetHeader([]string{"COL1", "COL2"})
	table.Append([]string{"val1", "val2"})
	table.Render()

	output := buf.String()

	// Should not contain borders
	if strings.Contains(output, "+") || strings.Contains(output, "|") {
		t.Error("Table contains borders (should be borderless)")
	}
}

func TestTableFormatter_FormatResultRow(t *testing.T) {
	formatter := NewTableFormatter(&Options{NoColor: true})
	colors := NewColorScheme(&bytes.Buffer{}, true)

	tests := []struct {
		name           string
		row            resultRow
		wide           bool
		checkPositions map[int]string
	}{
		{
			name: "success row",
			row: resultRow{
				Type:     "api_key",
				Value:    "sk-one",
				Status:   "Success",
				Duration: "100ms",
			},
			checkPositions: map[int]string{
				0: "api_key",
				1: "sk-one",
				2: "Success",
				3: "100ms",
			},
		},
		{
			name: "failed row shows error",
			row: resultRow{
				Status:   "Failed",
				Err:      errors.New("no such type"),
				Duration: "50ms",
			},
			checkPositions: map[int]string{
				0: "-",
				1: "no such type",
				2: "Failed",
			},
		},
		{
			name: "long value truncated",
			row: resultRow{
				Type:     "api_key",
				Value:    strings.Repeat("y", 80),
				Status:   "Success",
				Duration: "1ms",
			},
			checkPositions: map[int]string{
				1: "...",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter.options.Wide = tt.wide
			row := formatter.formatResultRow(tt.row, colors)

			for pos, expected := range tt.checkPositions {
				if pos >= len(row) {
					t.Errorf("Row too short: expected at least %d elements, got %d", pos+1, len(row))
					continue
				}
				if !strings.Contains(row[pos], expected) {
					t.Errorf("Row[%d] = %q, want to contain %q", pos, row[pos], expected)
				}
			}
		})
	}
}
