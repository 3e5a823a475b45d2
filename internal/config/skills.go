package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type skillsFile struct {
	Skills []string `json:"skills"`
}

// LoadSkills reads the skills vocabulary once at startup. The list is
// treated as read-only for the process lifetime; order is preserved.
func LoadSkills(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills file %s: %w", path, err)
	}

	var file skillsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse skills file %s: %w", path, err)
	}

	if len(file.Skills) == 0 {
		return nil, fmt.Errorf("skills file %s contains no skills", path)
	}

	var skills []string
	for _, skill := range file.Skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			return nil, fmt.Errorf("skills file %s contains an empty skill entry", path)
		}
		skills = append(skills, skill)
	}

	return skills, nil
}
