package services

import (
	"reflect"
	"testing"
)

func TestExtractSkillsPreservesVocabularyOrder(t *testing.T) {
	matcher := NewSkillMatcherService([]string{"Python", "Java", "AWS"})

	skills := matcher.ExtractSkills("Cloud engineer with AWS and Python experience")

	if !reflect.DeepEqual(skills, []string{"Python", "AWS"}) {
		t.Errorf("skills = %v, want [Python AWS]", skills)
	}
}

func TestExtractSkillsCaseInsensitive(t *testing.T) {
	matcher := NewSkillMatcherService([]string{"Python", "Docker", "Kubernetes"})

	skills := matcher.ExtractSkills("experienced with PYTHON, docker and KuBeRnEtEs")

	if !reflect.DeepEqual(skills, []string{"Python", "Docker", "Kubernetes"}) {
		t.Errorf("skills = %v, want all three in vocabulary order", skills)
	}
}

func TestExtractSkillsSubsetOfVocabulary(t *testing.T) {
	vocabulary := []string{"Python", "Java", "Go", "AWS", "Docker"}
	matcher := NewSkillMatcherService(vocabulary)

	inVocabulary := map[string]bool{}
	for _, skill := range vocabulary {
		inVocabulary[skill] = true
	}

	for _, text := range []string{
		"Python and AWS and Rust and Elixir",
		"no recognizable technology here",
		"",
	} {
		for _, skill := range matcher.ExtractSkills(text) {
			if !inVocabulary[skill] {
				t.Errorf("ExtractSkills(%q) returned %q, not in vocabulary", text, skill)
			}
		}
	}
}

func TestExtractSkillsNoMatchesReturnsEmptySlice(t *testing.T) {
	matcher := NewSkillMatcherService([]string{"Python"})

	skills := matcher.ExtractSkills("nothing relevant")

	if skills == nil || len(skills) != 0 {
		t.Errorf("skills = %v, want empty slice", skills)
	}
}

func TestMatchRequired(t *testing.T) {
	matcher := NewSkillMatcherService([]string{"Python", "Java", "AWS"})

	matched, missing, percentage := matcher.MatchRequired(
		[]string{"Python", "Java"},
		[]string{"Python", "AWS"},
	)

	if !reflect.DeepEqual(matched, []string{"Python"}) {
		t.Errorf("matched = %v, want [Python]", matched)
	}
	if !reflect.DeepEqual(missing, []string{"Java"}) {
		t.Errorf("missing = %v, want [Java]", missing)
	}
	if percentage != 50.0 {
		t.Errorf("percentage = %f, want 50.0", percentage)
	}
}

func TestMatchRequiredPartition(t *testing.T) {
	matcher := NewSkillMatcherService(nil)
	required := []string{"Go", "Python", "Kafka", "Terraform"}

	matched, missing, _ := matcher.MatchRequired(required, []string{"python", "terraform"})

	if len(matched)+len(missing) != len(required) {
		t.Fatalf("matched ∪ missing must cover required: %v + %v vs %v", matched, missing, required)
	}

	seen := map[string]bool{}
	for _, skill := range matched {
		seen[skill] = true
	}
	for _, skill := range missing {
		if seen[skill] {
			t.Errorf("%q appears in both matched and missing", skill)
		}
	}
}

func TestMatchRequiredNoRequiredSkills(t *testing.T) {
	matcher := NewSkillMatcherService(nil)

	matched, missing, percentage := matcher.MatchRequired(nil, []string{"Python"})

	if percentage != 0 {
		t.Errorf("percentage = %f, want 0 when no required skills supplied", percentage)
	}
	if len(matched) != 0 || len(missing) != 0 {
		t.Errorf("matched = %v, missing = %v, want both empty", matched, missing)
	}
}
