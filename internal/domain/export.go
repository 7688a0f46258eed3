package domain

// ExportFormat is the serialization used by the export command.
type ExportFormat string

const (
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
)

// ParseExportFormat parses s strictly.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case ExportYAML, ExportJSON:
		return f, nil
	}
	return "", ErrUnsupportedFormat
}
