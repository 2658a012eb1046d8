package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/hpgo/internal/domain"
)

// Formatter renders a set of estimates into a byte slice.
type Formatter interface {
	Name() string
	Format(results *domain.EstimateSet) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(results *domain.EstimateSet) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(results *domain.EstimateSet) ([]byte, error) {
	return f.F(results)
}

// WriteFormatted renders results with f and writes them to a timestamped file
// in the working directory. It returns the file name.
func WriteFormatted(f Formatter, results *domain.EstimateSet, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("heatpump_estimate_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

var formatters = map[string]Formatter{
	"console-lite": ConsoleFormatter{},
	"console":      ConsoleVerboseFormatter{},
	"csv":          CSVSummarizer{},
	"detailed-csv": DetailedCSVFormatter{},
	"json":         JSONFormatter{},
	"yaml":         YAMLFormatter{},
	"html":         HTMLFormatter{},
	"params":       ParamsFormatter{},
}

var formatAliases = map[string]string{
	"verbose":         "console",
	"console-verbose": "console",
	"table":           "console",
	"summary":         "console-lite",
	"lite":            "console-lite",
	"csv-detailed":    "detailed-csv",
	"yml":             "yaml",
	"query":           "params",
	"lead":            "params",
}

var fileExtensions = map[string]string{
	"console-lite": "txt",
	"console":      "txt",
	"csv":          "csv",
	"detailed-csv": "csv",
	"json":         "json",
	"yaml":         "yaml",
	"html":         "html",
	"params":       "txt",
}

// NormalizeFormatName lower-cases name and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := formatAliases[n]; ok {
		return canonical
	}
	return n
}

// GetFormatterByName returns the formatter registered under name or one of
// its aliases, or nil.
func GetFormatterByName(name string) Formatter {
	return formatters[NormalizeFormatName(name)]
}

// FileExtension returns the file extension used when a format is written to disk.
func FileExtension(name string) string {
	if ext, ok := fileExtensions[NormalizeFormatName(name)]; ok {
		return ext
	}
	return "txt"
}

// AvailableFormatterNames lists the canonical format names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted aliases.
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
