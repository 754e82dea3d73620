package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a bridge parameter file. This is the file-reading boundary
// collaborator; the engine itself never touches the filesystem. The
// loaded set is not validated here; callers run Validate before
// building any geometry.
func Load(path string) (*Bridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parameter file: %w", err)
	}
	var b Bridge
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse parameter file %s: %w", path, err)
	}
	return &b, nil
}

// LoadSurvey reads a ground survey file as a list of chainage/level rows.
// Rows are filtered through NewProfile; the skip count is returned so the
// caller can report it.
func LoadSurvey(path string) (Profile, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, 0, fmt.Errorf("read survey file: %w", err)
	}
	var rows []SurveyPoint
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return Profile{}, 0, fmt.Errorf("parse survey file %s: %w", path, err)
	}
	profile, skipped := NewProfile(rows)
	return profile, skipped, nil
}
