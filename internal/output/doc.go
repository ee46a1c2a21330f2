// Package output provides formatters for displaying generation results.
//
// The package supports multiple output formats (table, JSON, YAML) and provides
// a unified interface for formatting resolved results and executor statistics.
//
// # Features
//
//   - Multiple output formats: table (kubectl-style), JSON, and YAML
//   - Color support with automatic TTY detection
//   - Configurable options (no-color, no-headers, wide mode)
//   - Result summaries with success, failure, and abandoned counts
//   - Per-pool executor statistics
//
// # Basic Usage
//
//	// Create a table formatter
//	formatter := output.NewFormatter(output.FormatTable)
//
//	// Format single data item
//	data := map[string]interface{}{"key": "value"}
//	formatter.Format(os.Stdout, data)
//
//	// Format resolved generation results
//	results := []executor.Result{...}
//	formatter.FormatResults(os.Stdout, results)
//
// # Options
//
// Formatters can be configured with functional options:
//
//	formatter := output.NewFormatter(
//	    output.FormatTable,
//	    output.WithNoColor(true),
//	    output.WithWide(true),
//	)
//
// # Formatters
//
// Table Formatter (kubectl-style):
//   - Borderless tables with tab-separated columns
//   - Optional color highlighting for status, errors, and type names
//   - Summary line with success, failure, and abandoned counts
//   - Wide mode disables credential value truncation
//
// JSON Formatter:
//   - Clean, indented JSON output
//   - Suitable for scripting and automation
//
// YAML Formatter:
//   - Human-readable YAML output
//   - Proper indentation and formatting
//
// # Color Support
//
// Colors are automatically enabled for TTY outputs and can be disabled with:
//   - WithNoColor(true) option
//   - Non-TTY output (pipes, redirects)
//
// Color scheme:
//   - Type names: Cyan, Bold
//   - Success status: Green
//   - Failed status: Red, Bold
//   - Abandoned status: Yellow
//   - Headers: White, Bold
//   - Durations: Blue
package output
