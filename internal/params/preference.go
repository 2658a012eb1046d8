package params

import (
	"fmt"
	"net/url"
	"os"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadPreferenceFile reads a saved preference record: a flat YAML map using
// the inbound keys. Unknown keys and unusable values are ignored the same way
// Decode ignores them.
func LoadPreferenceFile(path string) (domain.PartialScenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.PartialScenario{}, fmt.Errorf("failed to read preference file: %w", err)
	}
	return ParsePreferences(data)
}

// ParsePreferences decodes preference record content.
func ParsePreferences(data []byte) (domain.PartialScenario, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.PartialScenario{}, fmt.Errorf("failed to parse preference file: %w", err)
	}

	values := url.Values{}
	for key, v := range raw {
		switch v.(type) {
		case nil, map[string]interface{}, []interface{}:
			continue
		}
		values.Set(key, fmt.Sprint(v))
	}
	return Decode(values), nil
}
