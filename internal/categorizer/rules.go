package categorizer

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"flowpay/flowpay/internal/logging"
)

// rulesFile is the YAML shape of a user rules file:
//
//	categories:
//	  - name: Software
//	    keywords: ["github", "jetbrains"]
type rulesFile struct {
	Categories []CategoryRule `yaml:"categories"`
}

// LoadRules reads user keyword rules from the given file, searching the
// working directory, ./config, and ~/.flowpay. A missing file is not an
// error: the built-in keyword groups still apply.
func LoadRules(filename string, logger logging.Logger) ([]CategoryRule, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if filename == "" {
		return nil, nil
	}

	path, found := findRulesFile(filename)
	if !found {
		logger.WithField(logging.FieldFile, filename).Debug("No category rules file found")
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read rules file %s: %w", path, err)
	}

	var parsed rulesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("could not parse rules file %s: %w", path, err)
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(parsed.Categories)},
	).Debug("Loaded category rules")
	return parsed.Categories, nil
}

func findRulesFile(filename string) (string, bool) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, true
		}
		return "", false
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".flowpay", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, true
		}
	}
	return "", false
}
