package model

type CreateResumeRequest struct {
	Content *ResumeContent `json:"content" validate:"required" jsonschema_description:"Resume content"`
	Style   *ResumeStyle   `json:"style,omitempty" jsonschema_description:"Configuration options for resume formatting and styling"`
}

func (r *CreateResumeRequest) ApplyDefaults() { r.Content.ApplyDefaults() }

type CreateCoverLetterRequest struct {
	Content *CoverLetterContent `json:"content" validate:"required" jsonschema_description:"Cover letter content"`
	Style   *CoverLetterStyle   `json:"style,omitempty" jsonschema_description:"Configuration options for cover letter formatting and styling"`
}

// TargetJob drives remote tailoring; both fields are required.
type TargetJob struct {
	JobTitle       string `json:"job_title" validate:"required,max=250" jsonschema_description:"Title of the job being applied for"`
	JobDescription string `json:"job_description" validate:"required,max=10000" jsonschema_description:"Full job description used to tailor the document"`
}

type TailoredResumeRequest struct {
	ResumeContent         *CreateResumeRequest `json:"resume_content" validate:"required" jsonschema_description:"The resume to tailor, with optional style"`
	TargetJob             *TargetJob           `json:"target_job" validate:"required" jsonschema_description:"The job the resume is tailored for"`
	TailoringInstructions string               `json:"tailoring_instructions,omitempty" validate:"max=2000" jsonschema_description:"Extra instructions for the tailoring, e.g. tone or emphasis"`
}

func (r *TailoredResumeRequest) ApplyDefaults() {
	if r.ResumeContent != nil {
		r.ResumeContent.ApplyDefaults()
	}
}

type TailoredCoverLetterRequest struct {
	CoverLetterContent    *CreateCoverLetterRequest `json:"cover_letter_content" validate:"required" jsonschema_description:"The cover letter to tailor, with optional style"`
	TargetJob             *TargetJob                `json:"target_job" validate:"required" jsonschema_description:"The job the cover letter is tailored for"`
	TailoringInstructions string                    `json:"tailoring_instructions,omitempty" validate:"max=2000" jsonschema_description:"Extra instructions for the tailoring, e.g. tone or emphasis"`
}

// ParseRequest is shared by resume and cover-letter parsing. Exactly one
// of FileURL and File must be set; an empty string counts as unset.
type ParseRequest struct {
	FileURL string       `json:"file_url,omitempty" label:"File URL" jsonschema_description:"Publicly accessible URL of the document (max 20MB)"`
	File    string       `json:"file,omitempty" jsonschema_description:"Base64 encoded document (max 4MB)"`
	ParseTo *ParseFormat `json:"parse_to" validate:"required,enum" label:"output format" jsonschema_description:"Format to parse the document to"`
}

const (
	ParseSourceMissing = "Either file_url or file is required"
	ParseSourceBoth    = "Either file_url or file is required, not both"
)

// SourceViolation reports the file_url/file exclusivity rule, or "" when
// exactly one source is present.
func (r ParseRequest) SourceViolation() string {
	switch hasURL, hasFile := r.FileURL != "", r.File != ""; {
	case hasURL && hasFile:
		return ParseSourceBoth
	case !hasURL && !hasFile:
		return ParseSourceMissing
	}
	return ""
}

type GetRunRequest struct {
	RunID string `json:"run_id" validate:"required,max=99" label:"Run ID" jsonschema_description:"The ID of the run to check status for"`
}
