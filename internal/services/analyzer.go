package services

import (
	"context"
	"log"
	"math"
	"time"

	"resume-analyzer/internal/models"
)

type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, resumePath string) (*models.ResumeOnlyResponse, error)
	AnalyzeResumeAgainstJob(ctx context.Context, resumePath, jobDescription string, requiredSkills []string) (*models.AnalysisResponse, error)
}

type analyzerService struct {
	extractor      TextExtractorService
	skillMatcher   SkillMatcherService
	vectorizer     *Vectorizer
	summarizer     SummarizerService
	summaryTimeout time.Duration
}

// NewAnalyzerService wires the per-request analysis pipeline. summarizer may
// be nil, in which case responses simply carry no llm_analysis field.
func NewAnalyzerService(
	extractor TextExtractorService,
	skillMatcher SkillMatcherService,
	vectorizer *Vectorizer,
	summarizer SummarizerService,
	summaryTimeout time.Duration,
) AnalyzerService {
	return &analyzerService{
		extractor:      extractor,
		skillMatcher:   skillMatcher,
		vectorizer:     vectorizer,
		summarizer:     summarizer,
		summaryTimeout: summaryTimeout,
	}
}

// AnalyzeResume implements AnalyzerService.
func (a *analyzerService) AnalyzeResume(ctx context.Context, resumePath string) (*models.ResumeOnlyResponse, error) {
	resumeText, err := a.extractor.ExtractText(resumePath)
	if err != nil {
		return nil, err
	}

	response := &models.ResumeOnlyResponse{
		ResumeSkills:   a.skillMatcher.ExtractSkills(resumeText),
		ResumeTopTerms: a.vectorizer.TopTerms(resumeText),
	}

	response.LLMAnalysis = a.summarize(ctx, func(sctx context.Context) (string, error) {
		return a.summarizer.SummarizeResume(sctx, resumeText)
	})

	return response, nil
}

// AnalyzeResumeAgainstJob implements AnalyzerService.
func (a *analyzerService) AnalyzeResumeAgainstJob(ctx context.Context, resumePath, jobDescription string, requiredSkills []string) (*models.AnalysisResponse, error) {
	resumeText, err := a.extractor.ExtractText(resumePath)
	if err != nil {
		return nil, err
	}

	resumeSkills := a.skillMatcher.ExtractSkills(resumeText)
	jdSkills := a.skillMatcher.ExtractSkills(jobDescription)
	matched, missing, percentage := a.skillMatcher.MatchRequired(requiredSkills, resumeSkills)

	similarity, resumeTopTerms, jdTopTerms := a.vectorizer.Compare(resumeText, jobDescription)

	response := &models.AnalysisResponse{
		ResumeSkills:          resumeSkills,
		JDSkills:              jdSkills,
		MatchedSkills:         matched,
		MissingSkills:         missing,
		SkillsMatchPercentage: round2(percentage),
		SimilarityScore:       round2(similarity),
		ResumeTopTerms:        resumeTopTerms,
		JDTopTerms:            jdTopTerms,
	}

	response.LLMAnalysis = a.summarize(ctx, func(sctx context.Context) (string, error) {
		return a.summarizer.SummarizeFit(sctx, resumeText, jobDescription)
	})

	return response, nil
}

// summarize runs the model call under a bounded timeout. Any failure is
// logged and absorbed: the summary is the one component that must never fail
// the request.
func (a *analyzerService) summarize(ctx context.Context, call func(context.Context) (string, error)) *string {
	if a.summarizer == nil {
		return nil
	}

	sctx, cancel := context.WithTimeout(ctx, a.summaryTimeout)
	defer cancel()

	summary, err := call(sctx)
	if err != nil {
		log.Printf("⚠️  Summarization unavailable, omitting llm_analysis: %v\n", err)
		return nil
	}

	return &summary
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
