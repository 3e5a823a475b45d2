package services

import "strings"

// SkillMatcherService matches the configured vocabulary against free text.
// The vocabulary is loaded once at startup and read-only afterwards.
type SkillMatcherService interface {
	Vocabulary() []string
	ExtractSkills(text string) []string
	MatchRequired(requiredSkills, foundSkills []string) (matched, missing []string, percentage float64)
}

type skillMatcherService struct {
	vocabulary []string
}

func NewSkillMatcherService(vocabulary []string) SkillMatcherService {
	return &skillMatcherService{vocabulary: vocabulary}
}

func (s *skillMatcherService) Vocabulary() []string {
	return s.vocabulary
}

// ExtractSkills returns the vocabulary entries whose surface form occurs in
// the text, case-insensitively. Vocabulary order and casing are preserved.
func (s *skillMatcherService) ExtractSkills(text string) []string {
	lowerText := strings.ToLower(text)

	skills := []string{}
	for _, skill := range s.vocabulary {
		if strings.Contains(lowerText, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}

	return skills
}

// MatchRequired splits the required skills into those present among the
// found skills and those absent, preserving required order. The percentage
// is matched/required*100, or 0 when no required skills were supplied.
func (s *skillMatcherService) MatchRequired(requiredSkills, foundSkills []string) ([]string, []string, float64) {
	found := make(map[string]bool, len(foundSkills))
	for _, skill := range foundSkills {
		found[strings.ToLower(skill)] = true
	}

	matched := []string{}
	missing := []string{}
	for _, skill := range requiredSkills {
		if found[strings.ToLower(skill)] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	percentage := 0.0
	if len(requiredSkills) > 0 {
		percentage = float64(len(matched)) / float64(len(requiredSkills)) * 100
	}

	return matched, missing, percentage
}
