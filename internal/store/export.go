package store

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/meera/gurukul/internal/course"
)

// Export serializes a course document for use outside the store.
// Supported formats are "yaml" and "json".
func Export(doc *course.Document, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(doc)
	case "json":
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
