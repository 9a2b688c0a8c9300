package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"

	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/prompts"
)

// MinResumeChars is the minimum resume text length accepted for analysis.
const MinResumeChars = 100

// Request carries the inputs for one analysis call.
type Request struct {
	ResumeText     string `json:"resume_text" validate:"required,min=100"`
	JobRole        string `json:"job_role" validate:"required"`
	JobDescription string `json:"job_description,omitempty"`
}

var validate = validator.New()

// Normalize trims whitespace on all fields. Call before Validate so padding
// cannot satisfy the length preconditions.
func (r *Request) Normalize() {
	r.ResumeText = strings.TrimSpace(r.ResumeText)
	r.JobRole = strings.TrimSpace(r.JobRole)
	r.JobDescription = strings.TrimSpace(r.JobDescription)
}

// Validate checks the request preconditions using the validator tags.
func (r *Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			switch first.Field() {
			case "ResumeText":
				return &InvalidInputError{
					Field:   "resume_text",
					Message: "resume text must be at least 100 characters",
				}
			case "JobRole":
				return &InvalidInputError{
					Field:   "job_role",
					Message: "job role is required",
				}
			}
		}
		return &InvalidInputError{Message: err.Error()}
	}
	return nil
}

// Analyzer invokes the external scoring service and normalizes its output.
type Analyzer struct {
	client llm.Client
	log    *zap.Logger
}

// NewAnalyzer creates an Analyzer. A nil logger disables logging.
func NewAnalyzer(client llm.Client, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{client: client, log: log}
}

// Analyze validates the request, calls the scoring service once, and returns
// the canonical analysis. No retries are performed at this layer.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*ResumeAnalysis, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if a.client == nil {
		return nil, &ServiceUnavailableError{Message: "scoring client is not configured"}
	}

	system := prompts.MustGet("analysis.json", "system")
	user := buildUserPrompt(req)

	start := time.Now()
	raw, err := a.client.GenerateJSON(ctx, system, user)
	if err != nil {
		return nil, classifyServiceError(err, time.Since(start))
	}

	payload, err := parsePayload(raw)
	if err != nil {
		return nil, err
	}

	if problems := CheckPayloadShape(raw); len(problems) > 0 {
		// Advisory only: normalization is total and absorbs shape defects.
		a.log.Warn("scoring response deviates from expected shape",
			zap.Strings("problems", problems))
	}

	return NormalizePayload(payload), nil
}

// buildUserPrompt embeds the resume and role context into the instruction
// template. A full job description takes priority over the bare role title.
func buildUserPrompt(req Request) string {
	jobContext := "Target position: " + req.JobRole
	if req.JobDescription != "" {
		jobContext = "Target position: " + req.JobRole + "\nJob description:\n" + req.JobDescription
	}

	template := prompts.MustGet("analysis.json", "analyze-resume")
	return prompts.Format(template, map[string]string{
		"JobContext": jobContext,
		"ResumeText": req.ResumeText,
	})
}

// parsePayload parses the service output into a generic map. Failure here
// means the output is not structured data at all.
func parsePayload(raw string) (map[string]any, error) {
	cleaned := llm.CleanJSONBlock(raw)

	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &MalformedResponseError{Snippet: snippet(cleaned), Cause: err}
	}
	return payload, nil
}

// classifyServiceError maps transport failures onto the error taxonomy.
func classifyServiceError(err error, elapsed time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Budget: elapsed.Round(time.Second), Cause: err}
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return &RateLimitedError{Cause: err}
		case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
			return &ServiceUnavailableError{Message: "service reported an outage", Cause: err}
		}
	}

	return &ServiceUnavailableError{Message: "call failed", Cause: err}
}

func snippet(text string) string {
	const limit = 120
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
