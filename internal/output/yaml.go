package output

import (
	"io"

	"github.com/yassine-ta/credential-forge/internal/executor"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	options *Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(opts *Options) *YAMLFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &YAMLFormatter{
		options: opts,
	}
}

// Format outputs a single data item as YAML
func (f *YAMLFormatter) Format(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(data)
}

// FormatResults outputs resolved generation results as YAML
func (f *YAMLFormatter) FormatResults(w io.Writer, results []executor.Result) error {
	// Convert results to a more YAML-friendly structure
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

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(output)
}

// FormatStats outputs per-pool executor statistics as YAML
func (f *YAMLFormatter) FormatStats(w io.Writer, stats []executor.Stats) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(stats)
}
