package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeSkillsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skills.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSkills(t *testing.T) {
	path := writeSkillsFile(t, `{"skills": ["Python", "Java", "AWS"]}`)

	skills, err := LoadSkills(path)
	if err != nil {
		t.Fatalf("LoadSkills: %v", err)
	}

	if !reflect.DeepEqual(skills, []string{"Python", "Java", "AWS"}) {
		t.Errorf("skills = %v, want configured order preserved", skills)
	}
}

func TestLoadSkillsMissingFile(t *testing.T) {
	if _, err := LoadSkills(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing skills file")
	}
}

func TestLoadSkillsMalformed(t *testing.T) {
	for name, content := range map[string]string{
		"invalid json": `{"skills": [`,
		"empty list":   `{"skills": []}`,
		"wrong shape":  `["Python"]`,
		"blank entry":  `{"skills": ["Python", "  "]}`,
	} {
		path := writeSkillsFile(t, content)
		if _, err := LoadSkills(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
