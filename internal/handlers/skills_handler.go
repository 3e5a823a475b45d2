package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
)

type SkillsHandler struct {
	skillMatcher services.SkillMatcherService
}

func NewSkillsHandler(skillMatcher services.SkillMatcherService) *SkillsHandler {
	return &SkillsHandler{skillMatcher: skillMatcher}
}

// HandleListSkills handles GET /skills: the configured vocabulary in
// configured order.
func (h *SkillsHandler) HandleListSkills(c *fiber.Ctx) error {
	return c.JSON(models.SkillsResponse{
		Skills: h.skillMatcher.Vocabulary(),
	})
}
