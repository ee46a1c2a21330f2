package output

import (
	"encoding/json"
	"io"

	"github.com/yassine-ta/credential-forge/internal/executor"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &JSONFormatter{
		options: opts,
	}
}

// Format outputs a single data item as JSON
func (f *JSONFormatter) Format(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// FormatResults outputs resolved generation results as JSON
func (f *JSONFormatter) FormatResults(w io.Writer, results []executor.Result) error {
	// Convert results to a more JSON-friendly structure
	output := make([]map[string]interface{}, len(results))

	for i, row := range rowsFromResults(results) {
		item := map[string]interface{}{
			"status":   row.Status,
			"duration": row.Duration,
		}

		if row.Err != nil {
			item["error"] = row.Err.Error()
		} else {
			item["type"] = row.Type
			item["value"] = row.Value
		}

		output[i] = item
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatStats outputs per-pool executor statistics as JSON
func (f *JSONFormatter) FormatStats(w io.Writer, stats []executor.Stats) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(stats)
}
