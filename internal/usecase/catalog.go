package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/fadilmartias/useresume-gateway/internal/model"
	"github.com/fadilmartias/useresume-gateway/internal/response"
)

const (
	ToolCreateResume              = "create_resume"
	ToolParseResume               = "parse_resume"
	ToolCreateTailoredResume      = "create_tailored_resume"
	ToolCreateCoverLetter         = "create_cover_letter"
	ToolParseCoverLetter          = "parse_cover_letter"
	ToolCreateTailoredCoverLetter = "create_tailored_cover_letter"
	ToolGetRunStatus              = "get_run_status"
)

// Handler is a bound operation facade.
type Handler func(ctx context.Context, raw json.RawMessage) response.Envelope

// Tool describes one callable operation. Cost is informational and never
// enforced locally.
type Tool struct {
	Name        string
	Description string
	Cost        int
	input       any
	bind        func(*DocumentUsecase) Handler
}

// Handler binds the tool to uc.
func (t Tool) Handler(uc *DocumentUsecase) Handler { return t.bind(uc) }

// InputSchema is the JSON Schema of the tool input, derived from the same
// Go type the validator decodes into.
func (t Tool) InputSchema() json.RawMessage {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	if raw, ok := schemaCache[t.Name]; ok {
		return raw
	}
	raw := model.InputSchemaJSON(t.input)
	schemaCache[t.Name] = raw
	return raw
}

var (
	schemaMu    sync.Mutex
	schemaCache = map[string]json.RawMessage{}
)

var catalog = []Tool{
	{
		Name:  ToolCreateResume,
		Cost:  1,
		input: &model.CreateResumeRequest{},
		bind:  func(uc *DocumentUsecase) Handler { return uc.CreateResume },
		Description: "Generate a professional PDF resume from structured content.\n\n" +
			cost(1, "generation") + pdfReturns + "\n\n" +
			vocab("TEMPLATES", model.ResumeTemplates.Strings()) + styleVocabularies(),
	},
	{
		Name:  ToolParseResume,
		Cost:  4,
		input: &model.ParseRequest{},
		bind:  func(uc *DocumentUsecase) Handler { return uc.ParseResume },
		Description: "Parse an existing resume document (PDF, DOCX) into structured JSON or markdown format.\n\n" +
			cost(4, "parse") + parseInput +
			"OUTPUT FORMATS:\n" +
			"- json: Structured data with name, employment, education, skills, etc.\n" +
			"- markdown: Human-readable markdown format",
	},
	{
		Name:  ToolCreateTailoredResume,
		Cost:  5,
		input: &model.TailoredResumeRequest{},
		bind:  func(uc *DocumentUsecase) Handler { return uc.CreateTailoredResume },
		Description: "Generate a resume optimized and tailored for a specific job posting using AI.\n\n" +
			cost(5, "generation") +
			"The AI will:\n" +
			"- Optimize keywords to match the job description\n" +
			"- Emphasize relevant experience and skills\n" +
			"- Reorder and highlight content that matches job requirements\n" +
			"- Adjust language to match the role and industry\n\n" +
			pdfReturns + "\n\n" +
			strings.TrimSuffix(vocab("TEMPLATES", model.ResumeTemplates.Strings()), "\n\n"),
	},
	{
		Name:  ToolCreateCoverLetter,
		Cost:  1,
		input: &model.CreateCoverLetterRequest{},
		bind:  func(uc *DocumentUsecase) Handler { return uc.CreateCoverLetter },
		Description: "Generate a professional PDF cover letter from structured content.\n\n" +
			cost(1, "generation") + pdfReturns + "\n\n" +
			vocab("TEMPLATES", model.CoverLetterTemplates.Strings()) + styleVocabularies(),
	},
	{
		Name:  ToolParseCoverLetter,
		Cost:  4,
		input: &model.ParseRequest{},
		bind:  func(uc *DocumentUsecase) Handler { return uc.ParseCoverLetter },
		Description: "Parse an existing cover letter document (PDF, DOCX) into structured JSON or markdown format.\n\n" +
			cost(4, "parse") + parseInput +
			"OUTPUT FORMATS:\n" +
			"- json: Structured data with name, text, hiring_manager_company, etc.\n" +
			"- markdown: Human-readable markdown format",
	},
	{
		Name:  ToolCreateTailoredCoverLetter,
		Cost:  5,
		input: &model.TailoredCoverLetterRequest{},
		bind:  func(uc *DocumentUsecase) Handler { return uc.CreateTailoredCoverLetter },
		Description: "Generate a cover letter optimized and tailored for a specific job posting using AI.\n\n" +
			cost(5, "generation") +
			"The AI will:\n" +
			"- If 'text' field is provided: enhance and rewrite it for the target job\n" +
			"- If 'text' is empty: generate a complete cover letter from scratch based on the job description\n" +
			"- Incorporate relevant keywords from the job posting\n" +
			"- Emphasize matching qualifications\n" +
			"- Adjust tone to fit the role and company culture\n\n" +
			pdfReturns + "\n\n" +
			strings.TrimSuffix(vocab("TEMPLATES", model.CoverLetterTemplates.Strings()), "\n\n"),
	},
	{
		Name:  ToolGetRunStatus,
		Cost:  0,
		input: &model.GetRunRequest{},
		bind:  func(uc *DocumentUsecase) Handler { return uc.GetRunStatus },
		Description: "Check the status of an asynchronous operation by its run ID.\n\n" +
			"COST: 0 credits (status checks are free)\n\n" +
			"Use this tool to:\n" +
			"- Poll for completion of long-running operations\n" +
			"- Check if a previous request succeeded or failed\n" +
			"- Get the file URL once processing is complete\n\n" +
			"RETURNS:\n" +
			"- status: " + quoted(model.RunStatuses.Strings(), " | ") + "\n" +
			"- file_url: Download URL (only present when status is 'success')\n" +
			"- credits_used: Credits consumed by the operation that started the run",
	},
}

const (
	pdfReturns = "RETURNS: URL to download the generated PDF (valid for 24 hours)"
	parseInput = "INPUT: Either provide a publicly accessible file_url OR base64-encoded file content (not both)\n" +
		"- file_url: Max 20MB file size\n" +
		"- file (base64): Max 4MB file size\n\n"
)

func cost(credits int, per string) string {
	unit := "credits"
	if credits == 1 {
		unit = "credit"
	}
	return fmt.Sprintf("COST: %d %s per %s\n\n", credits, unit, per)
}

func vocab(title string, values []string) string {
	return fmt.Sprintf("%s (%d): %s\n\n", title, len(values), strings.Join(values, ", "))
}

func styleVocabularies() string {
	return strings.TrimSuffix(
		vocab("COLORS", model.Colors.Strings())+
			vocab("FONTS", model.Fonts.Strings())+
			vocab("BACKGROUNDS", model.Backgrounds.Strings()), "\n\n")
}

func quoted(values []string, sep string) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = "'" + v + "'"
	}
	return strings.Join(out, sep)
}

// Tools lists the catalog in registration order.
func Tools() []Tool {
	out := make([]Tool, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(name string) (Tool, bool) {
	for _, t := range catalog {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

func Names() []string {
	names := make([]string, len(catalog))
	for i, t := range catalog {
		names[i] = t.Name
	}
	return names
}
