package model

import "github.com/google/uuid"

// DateRange is shared by every dated resume entry. Dates are free-form
// (conventionally YYYY-MM-DD). Present and EndDate may both be set; neither
// is resolved against the other.
type DateRange struct {
	StartDate string `json:"start_date,omitempty" validate:"max=10" jsonschema_description:"Start date YYYY-MM-DD"`
	EndDate   string `json:"end_date,omitempty" validate:"max=10" jsonschema_description:"End date YYYY-MM-DD"`
	Present   *bool  `json:"present,omitempty" jsonschema_description:"Whether the item is current/ongoing"`
}

type BulletPoint struct {
	Text string `json:"text,omitempty" validate:"max=1000" label:"Bullet point" jsonschema_description:"Bullet point text"`
}

type Link struct {
	URL  string `json:"url,omitempty" validate:"max=2000" label:"Link URL" jsonschema_description:"Link URL"`
	Name string `json:"name,omitempty" validate:"max=250" label:"Link name" jsonschema_description:"Link display name"`
}

type Employment struct {
	DateRange
	Title            string        `json:"title,omitempty" validate:"max=250" jsonschema_description:"Job title"`
	Company          string        `json:"company,omitempty" validate:"max=250" label:"Company name" jsonschema_description:"Company name"`
	Location         string        `json:"location,omitempty" validate:"max=250" jsonschema_description:"Job location"`
	ShortDescription string        `json:"short_description,omitempty" validate:"max=5000" label:"Description" jsonschema_description:"Brief overview of the role"`
	Responsibilities []BulletPoint `json:"responsibilities,omitempty" validate:"max=50,dive" label:"responsibilities" jsonschema_description:"Responsibility bullet points"`
}

type Skill struct {
	Name               string            `json:"name,omitempty" validate:"max=1000" label:"Skill name" jsonschema_description:"Skill name"`
	DisplayProficiency *bool             `json:"display_proficiency,omitempty" jsonschema_description:"Whether to show the proficiency level"`
	Proficiency        *SkillProficiency `json:"proficiency,omitempty" validate:"omitempty,enum" jsonschema_description:"Skill proficiency level"`
}

type Education struct {
	DateRange
	Degree           string        `json:"degree,omitempty" validate:"max=250" jsonschema_description:"Degree name"`
	Institution      string        `json:"institution,omitempty" validate:"max=250" label:"Institution name" jsonschema_description:"Institution name"`
	Location         string        `json:"location,omitempty" validate:"max=250" jsonschema_description:"Institution location"`
	ShortDescription string        `json:"short_description,omitempty" validate:"max=5000" label:"Description" jsonschema_description:"Education description"`
	Achievements     []BulletPoint `json:"achievements,omitempty" validate:"max=50,dive" label:"achievements" jsonschema_description:"Achievement bullet points"`
}

type Certification struct {
	DateRange
	Name        string `json:"name,omitempty" validate:"max=250" label:"Certification name" jsonschema_description:"Certification name"`
	Institution string `json:"institution,omitempty" validate:"max=250" label:"Institution name" jsonschema_description:"Issuing institution"`
}

type Language struct {
	Language           string               `json:"language,omitempty" validate:"max=250" label:"Language name" jsonschema_description:"Language name"`
	DisplayProficiency *bool                `json:"display_proficiency,omitempty" jsonschema_description:"Whether to show the proficiency level"`
	Proficiency        *LanguageProficiency `json:"proficiency,omitempty" validate:"omitempty,enum" jsonschema_description:"Language proficiency level"`
}

type Reference struct {
	Name    string `json:"name,omitempty" validate:"max=250" jsonschema_description:"Reference name"`
	Title   string `json:"title,omitempty" validate:"max=250" jsonschema_description:"Reference job title"`
	Company string `json:"company,omitempty" validate:"max=250" label:"Company name" jsonschema_description:"Reference company"`
	Email   string `json:"email,omitempty" validate:"max=250" jsonschema_description:"Reference email"`
	Phone   string `json:"phone,omitempty" validate:"max=250" label:"Phone number" jsonschema_description:"Reference phone number"`
}

type Project struct {
	DateRange
	Name             string `json:"name,omitempty" validate:"max=250" jsonschema_description:"Project name"`
	ShortDescription string `json:"short_description,omitempty" validate:"max=5000" label:"Description" jsonschema_description:"Project description"`
}

type Activity struct {
	Name             string `json:"name,omitempty" validate:"max=250" jsonschema_description:"Activity name"`
	ShortDescription string `json:"short_description,omitempty" validate:"max=5000" label:"Description" jsonschema_description:"Activity description"`
}

type CustomSectionItem struct {
	DateRange
	Name             string        `json:"name,omitempty" validate:"max=250" jsonschema_description:"Item name"`
	Location         string        `json:"location,omitempty" validate:"max=250" jsonschema_description:"Item location"`
	ShortDescription string        `json:"short_description,omitempty" validate:"max=2000" label:"Description" jsonschema_description:"Item description"`
	BulletPoints     []BulletPoint `json:"bullet_points,omitempty" validate:"dive" jsonschema_description:"Item bullet points"`
}

// CustomSection is a caller-defined section. SectionID is generated when
// omitted so that resume_structure can reference it.
type CustomSection struct {
	SectionID   string               `json:"section_id,omitempty" validate:"max=50" label:"Section ID" jsonschema_description:"Unique identifier for the custom section (auto-generated if not provided). Used to reference this section in resume_structure"`
	SectionName string               `json:"section_name" validate:"required,max=250" label:"Section name" jsonschema_description:"Display name for the custom section"`
	Section     []*CustomSectionItem `json:"section,omitempty" validate:"max=25,dive" label:"items" jsonschema_description:"Items of the custom section"`
}

type ResumeContent struct {
	PhotoURL string `json:"photo_url,omitempty" validate:"omitempty,max=2000,url" label:"Photo URL" jsonschema_description:"Public URL of the profile photo"`
	Links    []Link `json:"links,omitempty" validate:"max=25,dive" label:"links" jsonschema_description:"Personal links (portfolio, LinkedIn, GitHub...)"`
	Name     string `json:"name,omitempty" validate:"max=1000" jsonschema_description:"Full name"`
	Role     string `json:"role,omitempty" validate:"max=1000" jsonschema_description:"Professional role or job title"`
	Email    string `json:"email,omitempty" validate:"max=250" jsonschema_description:"Email address"`
	Phone    string `json:"phone,omitempty" validate:"max=250" label:"Phone number" jsonschema_description:"Phone number"`
	Address  string `json:"address,omitempty" validate:"max=1000" jsonschema_description:"Physical address"`
	Summary  string `json:"summary,omitempty" validate:"max=5000" jsonschema_description:"Professional summary or career objective"`

	Employment     []Employment    `json:"employment,omitempty" validate:"max=25,dive" label:"employment items" jsonschema_description:"Employment history"`
	Skills         []Skill         `json:"skills,omitempty" validate:"max=25,dive" label:"skills" jsonschema_description:"Skills"`
	Education      []Education     `json:"education,omitempty" validate:"max=25,dive" label:"education items" jsonschema_description:"Education history"`
	Certifications []Certification `json:"certifications,omitempty" validate:"max=25,dive" label:"certifications" jsonschema_description:"Certifications"`
	Languages      []Language      `json:"languages,omitempty" validate:"max=25,dive" label:"languages" jsonschema_description:"Spoken languages"`
	References     []Reference     `json:"references,omitempty" validate:"max=25,dive" label:"references" jsonschema_description:"Professional references"`
	Projects       []Project       `json:"projects,omitempty" validate:"max=25,dive" label:"projects" jsonschema_description:"Projects"`
	Activities     []Activity      `json:"activities,omitempty" validate:"max=25,dive" label:"activities" jsonschema_description:"Activities, volunteering, interests"`

	SummarySectionName        string `json:"summary_section_name,omitempty" validate:"max=250" label:"Section name" jsonschema_description:"Custom heading for the summary section"`
	EmploymentSectionName     string `json:"employment_section_name,omitempty" validate:"max=250" label:"Section name" jsonschema_description:"Custom heading for the employment section"`
	SkillsSectionName         string `json:"skills_section_name,omitempty" validate:"max=250" label:"Section name" jsonschema_description:"Custom heading for the skills section"`
	EducationSectionName      string `json:"education_section_name,omitempty" validate:"max=250" label:"Section name" jsonschema_description:"Custom heading for the education section"`
	CertificationsSectionName string `json:"certifications_section_name,omitempty" validate:"max=250" label:"Section name" jsonschema_description:"Custom heading for the certifications section"`
	LanguagesSectionName      string `json:"languages_section_name,omitempty" validate:"max=250" label:"Section name" jsonschema_description:"Custom heading for the languages section"`
	ProjectsSectionName       string `json:"projects_section_name,omitempty" validate:"max=250" label:"Section name" jsonschema_description:"Custom heading for the projects section"`
	ActivitiesSectionName     string `json:"activities_section_name,omitempty" validate:"max=250" label:"Section name" jsonschema_description:"Custom heading for the activities section"`
	ReferencesSectionName     string `json:"references_section_name,omitempty" validate:"max=250" label:"Section name" jsonschema_description:"Custom heading for the references section"`

	CustomSections []CustomSection `json:"custom_sections,omitempty" validate:"max=10,dive" label:"custom sections" jsonschema_description:"Additional caller-defined sections"`

	DateOfBirth   string `json:"date_of_birth,omitempty" validate:"max=250" jsonschema_description:"Date of birth"`
	MaritalStatus string `json:"marital_status,omitempty" validate:"max=250" jsonschema_description:"Marital status"`
	PassportOrID  string `json:"passport_or_id,omitempty" validate:"max=250" label:"Passport or ID" jsonschema_description:"Passport or ID number"`
	Nationality   string `json:"nationality,omitempty" validate:"max=250" jsonschema_description:"Nationality"`
	VisaStatus    string `json:"visa_status,omitempty" validate:"max=250" jsonschema_description:"Visa status"`
	Pronouns      string `json:"pronouns,omitempty" validate:"max=250" jsonschema_description:"Personal pronouns"`
}

// ApplyDefaults assigns a fresh identifier to every custom section that
// has none. Existing identifiers are kept, so calling it twice is a no-op.
func (c *ResumeContent) ApplyDefaults() {
	if c == nil {
		return
	}
	for i := range c.CustomSections {
		if c.CustomSections[i].SectionID == "" {
			c.CustomSections[i].SectionID = NewSectionID()
		}
	}
}

// NewSectionID is swapped in tests that need deterministic identifiers.
var NewSectionID = func() string {
	return uuid.NewString()
}
