package output

import (
	"fmt"
	"io"

	"github.com/yassine-ta/credential-forge/internal/executor"
	"github.com/yassine-ta/credential-forge/internal/generator"
)

// Format represents the output format type
type Format string

const (
	// FormatTable outputs data in a table format
	FormatTable Format = "table"
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	// Format outputs a single data item to the writer
	Format(w io.Writer, data interface{}) error

	// FormatResults outputs resolved generation results to the writer
	FormatResults(w io.Writer, results []executor.Result) error

	// FormatStats outputs per-pool executor statistics to the writer
	FormatStats(w io.Writer, stats []executor.Stats) error
}

// Option is a functional option for configuring formatters
type Option func(*Options)

// Options holds configuration for formatters
type Options struct {
	// NoColor disables color output
	NoColor bool

	// NoHeaders disables table headers
	NoHeaders bool

	// Wide enables wide output with untruncated values
	Wide bool
}

// WithNoColor disables color output
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithNoHeaders disables table headers
func WithNoHeaders(noHeaders bool) Option {
	return func(o *Options) {
		o.NoHeaders = noHeaders
	}
}

// WithWide enables wide output
func WithWide(wide bool) Option {
	return func(o *Options) {
		o.Wide = wide
	}
}

// NewFormatter creates a new formatter based on the specified format
func NewFormatter(format Format, opts ...Option) Formatter {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	switch format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		fallthrough
	default:
		return NewTableFormatter(options)
	}
}

// resultRow is the format-independent projection of one resolved result.
type resultRow struct {
	Type     string
	Value    string
	Status   string
	Err      error
	Duration string
}

func rowsFromResults(results []executor.Result) []resultRow {
	rows := make([]resultRow, 0, len(results))

	for _, res := range results {
		row := resultRow{Duration: res.Duration.String()}

		switch {
		case executor.IsAbandoned(res.Err):
			row.Status = "Abandoned"
			row.Err = res.Err
			row.Duration = "-"
		case res.Err != nil:
			row.Status = "Failed"
			row.Err = res.Err
		default:
			row.Status = "Success"
			if cred, ok := res.Value.(generator.Credential); ok {
				row.Type = cred.Type
				row.Value = cred.Value
			} else if res.Value != nil {
				row.Value = fmt.Sprintf("%v", res.Value)
			}
		}

		rows = append(rows, row)
	}

	return rows
}
