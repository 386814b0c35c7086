package model

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/invopop/jsonschema"
)

// DocumentStyle holds the options shared by resume and cover-letter styles.
type DocumentStyle struct {
	TemplateColor      *Color            `json:"template_color,omitempty" validate:"omitempty,enum" label:"color" jsonschema_description:"Accent color of the template"`
	Font               *Font             `json:"font,omitempty" validate:"omitempty,enum" jsonschema_description:"Font family"`
	BackgroundColor    *Background       `json:"background_color,omitempty" validate:"omitempty,enum" label:"background color" jsonschema_description:"Background color of the page"`
	PagePadding        *float64          `json:"page_padding,omitempty" validate:"omitempty,min=0,max=2" jsonschema_description:"Page padding multiplier. 0 is no padding, 2 is double"`
	GapMultiplier      *float64          `json:"gap_multiplier,omitempty" validate:"omitempty,min=0.5,max=1.5" jsonschema_description:"Spacing between sections"`
	FontSizeMultiplier *float64          `json:"font_size_multiplier,omitempty" validate:"omitempty,min=0.8,max=1.2" jsonschema_description:"Font size multiplier. Controls overall text size"`
	DocumentLanguage   *DocumentLanguage `json:"document_language,omitempty" validate:"omitempty,enum" label:"document language" jsonschema_description:"Language of the static document labels"`
	PageFormat         *PageFormat       `json:"page_format,omitempty" validate:"omitempty,enum" label:"page format" jsonschema_description:"Page format. 'a4' for international, 'letter' for US"`
}

type ResumeStyle struct {
	ResumeStructure      []SectionPosition     `json:"resume_structure,omitempty" validate:"max=25,dive" label:"sections" jsonschema_description:"Order of the resume sections. Lower position_index appears first. Use predefined section ids or custom section ids from custom_sections"`
	Template             *ResumeTemplate       `json:"template,omitempty" validate:"omitempty,enum" jsonschema_description:"Resume template to use"`
	ProfilePictureRadius *ProfilePictureRadius `json:"profile_picture_radius,omitempty" validate:"omitempty,enum" label:"profile picture radius" jsonschema_description:"Corner radius of the profile picture"`
	DateFormat           *DateFormat           `json:"date_format,omitempty" validate:"omitempty,enum" label:"date format" jsonschema_description:"Display format for dates"`
	DocumentStyle
}

// SectionPosition places a section in the resume. Uniqueness and
// contiguity of positions are left to the remote service.
type SectionPosition struct {
	SectionID     ResumeSectionID `json:"section_id" validate:"required,max=250" label:"Section ID" jsonschema_description:"Predefined section id or a custom section id"`
	PositionIndex *PositionIndex  `json:"position_index" validate:"required,min=0,max=25" label:"Position index" jsonschema_description:"0-based position of the section"`
}

// PositionIndex accepts a JSON number or a numeric string.
type PositionIndex float64

func (p *PositionIndex) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	f, err := strconv.ParseFloat(string(bytes.TrimSpace(data)), 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(string(data)), Type: reflect.TypeOf(*p)}
	}
	*p = PositionIndex(f)
	return nil
}

func (PositionIndex) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{{Type: "number"}, {Type: "string", Pattern: `^\s*-?\d+(\.\d+)?\s*$`}},
	}
}
