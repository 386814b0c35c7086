package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
	"github.com/fadilmartias/useresume-gateway/internal/model"
)

func violationsOf(t *testing.T, err error) []errors.FieldViolation {
	t.Helper()
	var verr *errors.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr.Violations
}

func TestParseRequestSourceExclusivity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"url only", `{"file_url":"https://x/y.pdf","parse_to":"json"}`, ""},
		{"file only", `{"file":"aGVsbG8=","parse_to":"markdown"}`, ""},
		{"both", `{"file_url":"https://x/y.pdf","file":"aGVsbG8=","parse_to":"json"}`, model.ParseSourceBoth},
		{"neither", `{"parse_to":"json"}`, model.ParseSourceMissing},
		{"empty strings count as absent", `{"file_url":"","file":"","parse_to":"json"}`, model.ParseSourceMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Validate[model.ParseRequest]([]byte(tt.input))
			if tt.wantMsg == "" {
				require.NoError(t, err)
				require.NotNil(t, req)
				return
			}
			assert.Nil(t, req)
			vs := violationsOf(t, err)
			require.Len(t, vs, 1)
			assert.Equal(t, tt.wantMsg, vs[0].Message)
			assert.Equal(t, "file_source", vs[0].Constraint)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestParseRequestReportsFieldAndSourceViolationsTogether(t *testing.T) {
	_, err := Validate[model.ParseRequest]([]byte(`{"parse_to":"pdf"}`))
	vs := violationsOf(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, "parse_to", vs[0].Path)
	assert.Equal(t, "enum", vs[0].Constraint)
	assert.Equal(t, "Please select a valid output format. (e.g. 'markdown', 'json')", vs[0].Message)
	assert.Equal(t, model.ParseSourceMissing, vs[1].Message)
}

func styleInput(field string, value any) []byte {
	raw, _ := json.Marshal(map[string]any{
		"content": map[string]any{"name": "Ada Lovelace"},
		"style":   map[string]any{field: value},
	})
	return raw
}

func TestResumeStyleEnumsAcceptEveryMember(t *testing.T) {
	fields := map[string][]string{
		"template":               model.ResumeTemplates.Strings(),
		"template_color":         model.Colors.Strings(),
		"font":                   model.Fonts.Strings(),
		"background_color":       model.Backgrounds.Strings(),
		"page_format":            model.PageFormats.Strings(),
		"document_language":      model.DocumentLanguages.Strings(),
		"date_format":            model.DateFormats.Strings(),
		"profile_picture_radius": model.ProfilePictureRadii.Strings(),
	}
	for field, values := range fields {
		for _, value := range values {
			t.Run(field+"="+value, func(t *testing.T) {
				_, err := Validate[model.CreateResumeRequest](styleInput(field, value))
				assert.NoError(t, err)
			})
		}
	}
}

func TestResumeStyleEnumsRejectOutsiders(t *testing.T) {
	for _, field := range []string{
		"template", "template_color", "font", "background_color",
		"page_format", "document_language", "date_format", "profile_picture_radius",
	} {
		for _, value := range []string{"", "neon", "DEFAULT", "a5"} {
			t.Run(fmt.Sprintf("%s=%q", field, value), func(t *testing.T) {
				_, err := Validate[model.CreateResumeRequest](styleInput(field, value))
				vs := violationsOf(t, err)
				require.Len(t, vs, 1)
				assert.Equal(t, "style."+field, vs[0].Path)
				assert.Equal(t, "enum", vs[0].Constraint)
				assert.True(t, strings.HasPrefix(vs[0].Message, "Please select a valid "), vs[0].Message)
			})
		}
	}
}

func TestCoverLetterTemplateVocabularyIsNarrower(t *testing.T) {
	raw := []byte(`{"content":{"text":"Dear team"},"style":{"template":"harvard"}}`)
	_, err := Validate[model.CreateCoverLetterRequest](raw)
	vs := violationsOf(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "style.template", vs[0].Path)

	raw = []byte(`{"content":{"text":"Dear team"},"style":{"template":"zenith","font":"lora"}}`)
	_, err = Validate[model.CreateCoverLetterRequest](raw)
	assert.NoError(t, err)
}

func TestResumeStyleNumericBounds(t *testing.T) {
	tests := []struct {
		field   string
		value   float64
		wantErr string
	}{
		{"page_padding", 0, ""},
		{"page_padding", 2, ""},
		{"page_padding", -0.01, "Page padding cannot be negative"},
		{"page_padding", 2.01, "Page padding cannot exceed 2"},
		{"gap_multiplier", 0.5, ""},
		{"gap_multiplier", 1.5, ""},
		{"gap_multiplier", 0.49, "Gap multiplier must be at least 0.5"},
		{"gap_multiplier", 1.51, "Gap multiplier cannot exceed 1.5"},
		{"font_size_multiplier", 0.8, ""},
		{"font_size_multiplier", 1.2, ""},
		{"font_size_multiplier", 0.79, "Font size multiplier must be at least 0.8"},
		{"font_size_multiplier", 1.21, "Font size multiplier cannot exceed 1.2"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s=%v", tt.field, tt.value), func(t *testing.T) {
			req, err := Validate[model.CreateResumeRequest](styleInput(tt.field, tt.value))
			if tt.wantErr == "" {
				require.NoError(t, err)
				require.NotNil(t, req.Style)
				return
			}
			vs := violationsOf(t, err)
			require.Len(t, vs, 1)
			assert.Equal(t, "style."+tt.field, vs[0].Path)
			assert.Equal(t, tt.wantErr, vs[0].Message)
		})
	}
}

func TestCollectsEveryViolation(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"content": map[string]any{
			"name":    123,
			"summary": strings.Repeat("s", 5001),
			"email":   strings.Repeat("e", 251),
			"employment": []map[string]any{
				{"title": "Engineer"},
				{"company": strings.Repeat("c", 251), "start_date": "2020-01-01T00"},
			},
			"links": make([]map[string]any, 26),
		},
		"style": map[string]any{"font": "comic-sans", "page_padding": 3},
	})
	_, err := Validate[model.CreateResumeRequest](raw)
	vs := violationsOf(t, err)

	byPath := map[string]string{}
	for _, v := range vs {
		byPath[v.Path] = v.Message
	}
	assert.Equal(t, "Name must be a string", byPath["content.name"])
	assert.Equal(t, "Summary cannot exceed 5000 characters", byPath["content.summary"])
	assert.Equal(t, "Email cannot exceed 250 characters", byPath["content.email"])
	assert.Equal(t, "Company name cannot exceed 250 characters", byPath["content.employment[1].company"])
	assert.Equal(t, "Start date cannot exceed 10 characters", byPath["content.employment[1].start_date"])
	assert.Equal(t, "Cannot add more than 25 links", byPath["content.links"])
	assert.Contains(t, byPath, "style.font")
	assert.Equal(t, "Page padding cannot exceed 2", byPath["style.page_padding"])
	assert.Len(t, vs, 8)
}

func TestTypeMismatchKeepsOtherViolations(t *testing.T) {
	raw := []byte(`{"content":{"name":123,"summary":"` + strings.Repeat("x", 5001) + `"},"style":{"template":"neon"}}`)

	_, err := Validate[model.CreateResumeRequest](raw)
	vs := violationsOf(t, err)

	require.Len(t, vs, 3)
	assert.Equal(t, errors.FieldViolation{Path: "content.name", Constraint: "type", Message: "Name must be a string"}, vs[0])
	assert.Equal(t, "content.summary", vs[1].Path)
	assert.Equal(t, "style.template", vs[2].Path)
}

func TestCustomSectionIDsAreFreshPerRecord(t *testing.T) {
	raw := []byte(`{"content":{"custom_sections":[
		{"section_name":"Talks"},
		{"section_name":"Patents"},
		{"section_id":"keep-me","section_name":"Awards"}
	]}}`)

	first, err := Validate[model.CreateResumeRequest](raw)
	require.NoError(t, err)
	second, err := Validate[model.CreateResumeRequest](raw)
	require.NoError(t, err)

	a, b := first.Content.CustomSections, second.Content.CustomSections
	assert.NotEmpty(t, a[0].SectionID)
	assert.NotEmpty(t, a[1].SectionID)
	assert.NotEqual(t, a[0].SectionID, a[1].SectionID)
	assert.NotEqual(t, a[0].SectionID, b[0].SectionID)
	assert.Equal(t, "keep-me", a[2].SectionID)
	assert.Equal(t, "keep-me", b[2].SectionID)
}

func TestCustomSectionNeedsName(t *testing.T) {
	_, err := Validate[model.CreateResumeRequest]([]byte(`{"content":{"custom_sections":[{}]}}`))

	vs := violationsOf(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, errors.FieldViolation{
		Path:       "content.custom_sections[0].section_name",
		Constraint: "required",
		Message:    "Section name is required",
	}, vs[0])
}

func TestValidateIsIdempotent(t *testing.T) {
	raw := []byte(`{
		"content": {
			"name": "Grace Hopper",
			"employment": [{"title": "Rear Admiral", "present": true, "end_date": "1986-08-14"}],
			"skills": [{"name": "COBOL", "proficiency": "Expert", "display_proficiency": false}],
			"custom_sections": [{"section_name": "Talks", "section": [null, {"name": "Nanoseconds"}]}]
		},
		"style": {
			"template": "harvard",
			"page_padding": 0,
			"resume_structure": [{"section_id": "summary", "position_index": "0"}, {"section_id": "employment", "position_index": 1}]
		}
	}`)

	first, err := Validate[model.CreateResumeRequest](raw)
	require.NoError(t, err)

	normalized, err := json.Marshal(first)
	require.NoError(t, err)
	second, err := Validate[model.CreateResumeRequest](normalized)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.NotNil(t, second.Style.PagePadding)
	assert.Zero(t, *second.Style.PagePadding)
	assert.Equal(t, model.PositionIndex(0), *second.Style.ResumeStructure[0].PositionIndex)
	// present and end_date are both preserved.
	assert.True(t, *second.Content.Employment[0].Present)
	assert.Equal(t, "1986-08-14", second.Content.Employment[0].EndDate)
	assert.False(t, *second.Content.Skills[0].DisplayProficiency)
}

func TestResumeStructure(t *testing.T) {
	tests := []struct {
		name    string
		entries string
		wantErr string
	}{
		{"duplicates are allowed", `[{"section_id":"summary","position_index":0},{"section_id":"summary","position_index":0}]`, ""},
		{"custom id", `[{"section_id":"my-talks","position_index":25}]`, ""},
		{"index above range", `[{"section_id":"skills","position_index":26}]`, "Position index cannot exceed 25"},
		{"negative index", `[{"section_id":"skills","position_index":-1}]`, "Position index cannot be negative"},
		{"missing index", `[{"section_id":"skills"}]`, "Position index is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []byte(`{"content":{},"style":{"resume_structure":` + tt.entries + `}}`)
			_, err := Validate[model.CreateResumeRequest](raw)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			vs := violationsOf(t, err)
			require.Len(t, vs, 1)
			assert.Equal(t, "style.resume_structure[0].position_index", vs[0].Path)
			assert.Equal(t, tt.wantErr, vs[0].Message)
		})
	}

	entries := make([]string, 26)
	for i := range entries {
		entries[i] = fmt.Sprintf(`{"section_id":"s%d","position_index":%d}`, i, i%25)
	}
	_, err := Validate[model.CreateResumeRequest]([]byte(`{"content":{},"style":{"resume_structure":[` + strings.Join(entries, ",") + `]}}`))
	vs := violationsOf(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "Cannot add more than 25 sections", vs[0].Message)
}

func TestTailoredResumeJobTitleTooLong(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"resume_content": map[string]any{"content": map[string]any{"name": "Ada"}},
		"target_job": map[string]any{
			"job_title":       strings.Repeat("x", 251),
			"job_description": "Build analytical engines",
		},
	})
	_, err := Validate[model.TailoredResumeRequest](raw)
	vs := violationsOf(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "target_job.job_title", vs[0].Path)
	assert.Equal(t, "Job title cannot exceed 250 characters", vs[0].Message)
}

func TestTailoredCoverLetterRequiresTargetJob(t *testing.T) {
	_, err := Validate[model.TailoredCoverLetterRequest]([]byte(`{"cover_letter_content":{"content":{}}}`))
	vs := violationsOf(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "target_job", vs[0].Path)
	assert.Equal(t, "Target job is required", vs[0].Message)
}

func TestRunIDBounds(t *testing.T) {
	_, err := Validate[model.GetRunRequest]([]byte(`{"run_id":"run_123"}`))
	assert.NoError(t, err)

	_, err = Validate[model.GetRunRequest]([]byte(`{"run_id":"` + strings.Repeat("r", 100) + `"}`))
	vs := violationsOf(t, err)
	assert.Equal(t, "Run ID cannot exceed 99 characters", vs[0].Message)

	_, err = Validate[model.GetRunRequest](nil)
	vs = violationsOf(t, err)
	assert.Equal(t, "Run ID is required", vs[0].Message)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Validate[model.GetRunRequest]([]byte(`{"run_id":`))
	vs := violationsOf(t, err)
	assert.Equal(t, "json", vs[0].Constraint)

	_, err = Validate[model.GetRunRequest]([]byte(`{"run_id":42}`))
	vs = violationsOf(t, err)
	require.Len(t, vs, 1, "the zero value left by the mismatch is not also reported as missing")
	assert.Equal(t, "run_id", vs[0].Path)
	assert.Equal(t, "Run id must be a string", vs[0].Message)

	_, err = Validate[model.GetRunRequest]([]byte(`["run_123"]`))
	vs = violationsOf(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "Input must be a JSON object", vs[0].Message)
}

func TestPhotoURLMustBeURL(t *testing.T) {
	_, err := Validate[model.CreateResumeRequest]([]byte(`{"content":{"photo_url":"not a url"}}`))
	vs := violationsOf(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "Photo URL must be a valid URL", vs[0].Message)

	_, err = Validate[model.CreateResumeRequest]([]byte(`{"content":{"photo_url":"https://cdn.example.com/me.png"}}`))
	assert.NoError(t, err)
}
