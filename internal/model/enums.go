package model

import (
	"slices"

	"github.com/invopop/jsonschema"
)

// Vocabulary is a closed set of accepted values for a string enum.
type Vocabulary[T ~string] []T

func (v Vocabulary[T]) Contains(value T) bool {
	return slices.Contains(v, value)
}

func (v Vocabulary[T]) Strings() []string {
	out := make([]string, len(v))
	for i, value := range v {
		out[i] = string(value)
	}
	return out
}

func (v Vocabulary[T]) schema() *jsonschema.Schema {
	enum := make([]any, len(v))
	for i, value := range v {
		enum[i] = string(value)
	}
	return &jsonschema.Schema{Type: "string", Enum: enum}
}

type ResumeTemplate string

const (
	ResumeTemplateDefault   ResumeTemplate = "default"
	ResumeTemplateClean     ResumeTemplate = "clean"
	ResumeTemplateClassic   ResumeTemplate = "classic"
	ResumeTemplateExecutive ResumeTemplate = "executive"
	ResumeTemplateModernPro ResumeTemplate = "modern-pro"
	ResumeTemplateMeridian  ResumeTemplate = "meridian"
	ResumeTemplateHorizon   ResumeTemplate = "horizon"
	ResumeTemplateAtlas     ResumeTemplate = "atlas"
	ResumeTemplatePrism     ResumeTemplate = "prism"
	ResumeTemplateNova      ResumeTemplate = "nova"
	ResumeTemplateZenith    ResumeTemplate = "zenith"
	ResumeTemplateVantage   ResumeTemplate = "vantage"
	ResumeTemplateSummit    ResumeTemplate = "summit"
	ResumeTemplateQuantum   ResumeTemplate = "quantum"
	ResumeTemplateVertex    ResumeTemplate = "vertex"
	ResumeTemplateHarvard   ResumeTemplate = "harvard"
	ResumeTemplateLattice   ResumeTemplate = "lattice"
)

var ResumeTemplates = Vocabulary[ResumeTemplate]{
	ResumeTemplateDefault, ResumeTemplateClean, ResumeTemplateClassic, ResumeTemplateExecutive,
	ResumeTemplateModernPro, ResumeTemplateMeridian, ResumeTemplateHorizon, ResumeTemplateAtlas,
	ResumeTemplatePrism, ResumeTemplateNova, ResumeTemplateZenith, ResumeTemplateVantage,
	ResumeTemplateSummit, ResumeTemplateQuantum, ResumeTemplateVertex, ResumeTemplateHarvard,
	ResumeTemplateLattice,
}

func (t ResumeTemplate) IsValid() bool { return ResumeTemplates.Contains(t) }
func (ResumeTemplate) Choices() []string { return ResumeTemplates.Strings() }
func (ResumeTemplate) JSONSchema() *jsonschema.Schema { return ResumeTemplates.schema() }

type CoverLetterTemplate string

const (
	CoverLetterTemplateAtlas     CoverLetterTemplate = "atlas"
	CoverLetterTemplateClassic   CoverLetterTemplate = "classic"
	CoverLetterTemplateClean     CoverLetterTemplate = "clean"
	CoverLetterTemplateDefault   CoverLetterTemplate = "default"
	CoverLetterTemplateExecutive CoverLetterTemplate = "executive"
	CoverLetterTemplateHorizon   CoverLetterTemplate = "horizon"
	CoverLetterTemplateMeridian  CoverLetterTemplate = "meridian"
	CoverLetterTemplateModernPro CoverLetterTemplate = "modern-pro"
	CoverLetterTemplateNova      CoverLetterTemplate = "nova"
	CoverLetterTemplatePrism     CoverLetterTemplate = "prism"
	CoverLetterTemplateZenith    CoverLetterTemplate = "zenith"
)

var CoverLetterTemplates = Vocabulary[CoverLetterTemplate]{
	CoverLetterTemplateAtlas, CoverLetterTemplateClassic, CoverLetterTemplateClean,
	CoverLetterTemplateDefault, CoverLetterTemplateExecutive, CoverLetterTemplateHorizon,
	CoverLetterTemplateMeridian, CoverLetterTemplateModernPro, CoverLetterTemplateNova,
	CoverLetterTemplatePrism, CoverLetterTemplateZenith,
}

func (t CoverLetterTemplate) IsValid() bool { return CoverLetterTemplates.Contains(t) }
func (CoverLetterTemplate) Choices() []string { return CoverLetterTemplates.Strings() }
func (CoverLetterTemplate) JSONSchema() *jsonschema.Schema { return CoverLetterTemplates.schema() }

type Color string

var Colors = Vocabulary[Color]{
	"blue", "black", "emerald", "purple", "rose", "amber", "slate", "indigo",
	"teal", "burgundy", "forest", "navy", "charcoal", "plum", "olive", "maroon",
	"steel", "sapphire", "pine", "violet", "mahogany", "sienna", "moss", "midnight",
	"copper", "cobalt", "crimson", "sage", "aqua", "coral", "graphite", "turquoise",
}

func (c Color) IsValid() bool { return Colors.Contains(c) }
func (Color) Choices() []string { return Colors.Strings() }
func (Color) JSONSchema() *jsonschema.Schema { return Colors.schema() }

type Font string

var Fonts = Vocabulary[Font]{
	"geist", "inter", "merryweather", "roboto", "playfair", "lora", "jost", "manrope", "ibm-plex-sans",
}

func (f Font) IsValid() bool { return Fonts.Contains(f) }
func (Font) Choices() []string { return Fonts.Strings() }
func (Font) JSONSchema() *jsonschema.Schema { return Fonts.schema() }

type Background string

var Backgrounds = Vocabulary[Background]{
	"white", "cream", "pearl", "mist", "smoke", "ash", "frost", "sage",
	"mint", "blush", "lavender", "sky", "sand", "stone", "linen", "ivory",
}

func (b Background) IsValid() bool { return Backgrounds.Contains(b) }
func (Background) Choices() []string { return Backgrounds.Strings() }
func (Background) JSONSchema() *jsonschema.Schema { return Backgrounds.schema() }

type DocumentLanguage string

var DocumentLanguages = Vocabulary[DocumentLanguage]{"en", "es", "fr", "de", "it", "pt", "nl", "pl", "lt"}

func (l DocumentLanguage) IsValid() bool { return DocumentLanguages.Contains(l) }
func (DocumentLanguage) Choices() []string { return DocumentLanguages.Strings() }
func (DocumentLanguage) JSONSchema() *jsonschema.Schema { return DocumentLanguages.schema() }

type PageFormat string

const (
	PageFormatA4     PageFormat = "a4"
	PageFormatLetter PageFormat = "letter"
)

var PageFormats = Vocabulary[PageFormat]{PageFormatA4, PageFormatLetter}

func (p PageFormat) IsValid() bool { return PageFormats.Contains(p) }
func (PageFormat) Choices() []string { return PageFormats.Strings() }
func (PageFormat) JSONSchema() *jsonschema.Schema { return PageFormats.schema() }

// DateFormat uses Luxon-style tokens, rendered by the remote service.
type DateFormat string

var DateFormats = Vocabulary[DateFormat]{"LLL yyyy", "LL/yyyy", "dd/LL/yyyy", "LL/dd/yyyy", "dd.LL.yyyy", "yyyy"}

func (d DateFormat) IsValid() bool { return DateFormats.Contains(d) }
func (DateFormat) Choices() []string { return DateFormats.Strings() }
func (DateFormat) JSONSchema() *jsonschema.Schema { return DateFormats.schema() }

type ProfilePictureRadius string

var ProfilePictureRadii = Vocabulary[ProfilePictureRadius]{"rounded-full", "rounded-xl", "rounded-none"}

func (r ProfilePictureRadius) IsValid() bool { return ProfilePictureRadii.Contains(r) }
func (ProfilePictureRadius) Choices() []string { return ProfilePictureRadii.Strings() }
func (ProfilePictureRadius) JSONSchema() *jsonschema.Schema { return ProfilePictureRadii.schema() }

type SkillProficiency string

var SkillProficiencies = Vocabulary[SkillProficiency]{"Beginner", "Intermediate", "Advanced", "Expert"}

func (p SkillProficiency) IsValid() bool { return SkillProficiencies.Contains(p) }
func (SkillProficiency) Choices() []string { return SkillProficiencies.Strings() }
func (SkillProficiency) JSONSchema() *jsonschema.Schema { return SkillProficiencies.schema() }

type LanguageProficiency string

var LanguageProficiencies = Vocabulary[LanguageProficiency]{"Beginner", "Intermediate", "Advanced", "Fluent"}

func (p LanguageProficiency) IsValid() bool { return LanguageProficiencies.Contains(p) }
func (LanguageProficiency) Choices() []string { return LanguageProficiencies.Strings() }
func (LanguageProficiency) JSONSchema() *jsonschema.Schema { return LanguageProficiencies.schema() }

// ResumeSectionID names a predefined resume section. Custom sections use
// their own identifiers, so the resume structure accepts any string.
type ResumeSectionID string

const (
	SectionSummary        ResumeSectionID = "summary"
	SectionEmployment     ResumeSectionID = "employment"
	SectionSkills         ResumeSectionID = "skills"
	SectionEducation      ResumeSectionID = "education"
	SectionCertifications ResumeSectionID = "certifications"
	SectionLanguages      ResumeSectionID = "languages"
	SectionReferences     ResumeSectionID = "references"
	SectionProjects       ResumeSectionID = "projects"
	SectionActivities     ResumeSectionID = "activities"
)

var ResumeSections = Vocabulary[ResumeSectionID]{
	SectionSummary, SectionEmployment, SectionSkills, SectionEducation, SectionCertifications,
	SectionLanguages, SectionReferences, SectionProjects, SectionActivities,
}

func (s ResumeSectionID) IsPredefined() bool { return ResumeSections.Contains(s) }

func (ResumeSectionID) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{ResumeSections.schema(), {Type: "string"}},
	}
}

type ParseFormat string

const (
	ParseFormatMarkdown ParseFormat = "markdown"
	ParseFormatJSON     ParseFormat = "json"
)

var ParseFormats = Vocabulary[ParseFormat]{ParseFormatMarkdown, ParseFormatJSON}

func (p ParseFormat) IsValid() bool { return ParseFormats.Contains(p) }
func (ParseFormat) Choices() []string { return ParseFormats.Strings() }
func (ParseFormat) JSONSchema() *jsonschema.Schema { return ParseFormats.schema() }

type RunStatus string

const (
	RunStatusSuccess    RunStatus = "success"
	RunStatusError      RunStatus = "error"
	RunStatusInProgress RunStatus = "in_progress"
)

var RunStatuses = Vocabulary[RunStatus]{RunStatusSuccess, RunStatusError, RunStatusInProgress}

func (s RunStatus) IsValid() bool { return RunStatuses.Contains(s) }
func (s RunStatus) IsDone() bool { return s == RunStatusSuccess || s == RunStatusError }
func (RunStatus) Choices() []string { return RunStatuses.Strings() }
