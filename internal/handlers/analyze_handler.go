package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer       services.AnalyzerService
	storageService services.StorageService
	maxFileSize    int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	storageService services.StorageService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:       analyzer,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze: full comparison of a resume against a
// job description.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumePath, err := h.saveResume(c)
	if err != nil {
		return err
	}
	defer h.cleanup(resumePath)

	jobDescription := c.FormValue("job_description")
	requiredSkills := formValues(c, "required_skills")

	result, err := h.analyzer.AnalyzeResumeAgainstJob(c.UserContext(), resumePath, jobDescription, requiredSkills)
	if err != nil {
		return h.analysisError(c, err)
	}

	return c.JSON(result)
}

// HandleAnalyzeResumeOnly handles POST /analyze-resume-only: skills and top
// terms without a job description comparison.
func (h *AnalyzeHandler) HandleAnalyzeResumeOnly(c *fiber.Ctx) error {
	resumePath, err := h.saveResume(c)
	if err != nil {
		return err
	}
	defer h.cleanup(resumePath)

	result, err := h.analyzer.AnalyzeResume(c.UserContext(), resumePath)
	if err != nil {
		return h.analysisError(c, err)
	}

	return c.JSON(result)
}

// saveResume validates the multipart upload and writes it to scratch
// storage. Failures come back as *fiber.Error so the app error handler
// shapes the response.
func (h *AnalyzeHandler) saveResume(c *fiber.Ctx) (string, error) {
	resumeFile, err := c.FormFile("resume_file")
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "resume_file is required")
	}

	if resumeFile.Size > h.maxFileSize {
		return "", fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	resumePath, err := h.storageService.SaveUpload(resumeFile)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFileType) {
			return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		log.Printf("❌ Failed to save upload: %v\n", err)
		return "", fiber.NewError(fiber.StatusInternalServerError, "failed to save uploaded file")
	}

	return resumePath, nil
}

func (h *AnalyzeHandler) analysisError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrUnreadableDocument) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Printf("❌ Analysis failed: %v\n", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "analysis failed",
	})
}

func (h *AnalyzeHandler) cleanup(resumePath string) {
	if err := h.storageService.DeleteFile(resumePath); err != nil {
		log.Printf("⚠️  Failed to remove scratch file %s: %v\n", resumePath, err)
	}
}

// formValues returns all values of a repeated multipart field.
func formValues(c *fiber.Ctx, key string) []string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return form.Value[key]
}
