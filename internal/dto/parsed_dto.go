package dto

import "github.com/fadilmartias/useresume-gateway/internal/model"

// Parsed documents mirror the request content, but every field may come
// back null when the source document did not contain it.

type ParsedBulletPoint struct {
	Text *string `json:"text"`
}

type ParsedLink struct {
	URL  *string `json:"url"`
	Name *string `json:"name"`
}

type ParsedEmployment struct {
	StartDate        *string             `json:"start_date"`
	EndDate          *string             `json:"end_date"`
	Present          *bool               `json:"present"`
	Title            *string             `json:"title"`
	Company          *string             `json:"company"`
	Location         *string             `json:"location"`
	ShortDescription *string             `json:"short_description"`
	Responsibilities []ParsedBulletPoint `json:"responsibilities"`
}

type ParsedSkill struct {
	Name        *string                 `json:"name"`
	Proficiency *model.SkillProficiency `json:"proficiency"`
}

type ParsedEducation struct {
	StartDate        *string             `json:"start_date"`
	EndDate          *string             `json:"end_date"`
	Present          *bool               `json:"present"`
	Degree           *string             `json:"degree"`
	Institution      *string             `json:"institution"`
	Location         *string             `json:"location"`
	ShortDescription *string             `json:"short_description"`
	Achievements     []ParsedBulletPoint `json:"achievements"`
}

type ParsedCertification struct {
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Present     *bool   `json:"present"`
	Name        *string `json:"name"`
	Institution *string `json:"institution"`
}

type ParsedLanguage struct {
	Language    *string                    `json:"language"`
	Proficiency *model.LanguageProficiency `json:"proficiency"`
}

type ParsedReference struct {
	Name    *string `json:"name"`
	Title   *string `json:"title"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

type ParsedProject struct {
	Name             *string `json:"name"`
	ShortDescription *string `json:"short_description"`
	Present          *bool   `json:"present"`
	StartDate        *string `json:"start_date"`
	EndDate          *string `json:"end_date"`
}

type ParsedActivity struct {
	Name             *string `json:"name"`
	ShortDescription *string `json:"short_description"`
}

type ParsedResume struct {
	Links          []ParsedLink          `json:"links"`
	Name           *string               `json:"name"`
	Role           *string               `json:"role"`
	Email          *string               `json:"email"`
	Phone          *string               `json:"phone"`
	Address        *string               `json:"address"`
	Summary        *string               `json:"summary"`
	Employment     []ParsedEmployment    `json:"employment"`
	Skills         []ParsedSkill         `json:"skills"`
	Education      []ParsedEducation     `json:"education"`
	Certifications []ParsedCertification `json:"certifications"`
	Languages      []ParsedLanguage      `json:"languages"`
	References     []ParsedReference     `json:"references"`
	Projects       []ParsedProject       `json:"projects"`
	Activities     []ParsedActivity      `json:"activities"`
	DateOfBirth    *string               `json:"date_of_birth"`
	MaritalStatus  *string               `json:"marital_status"`
	PassportOrID   *string               `json:"passport_or_id"`
	Nationality    *string               `json:"nationality"`
	VisaStatus     *string               `json:"visa_status"`
	Pronouns       *string               `json:"pronouns"`
}

type ParsedCoverLetter struct {
	Name                 *string `json:"name"`
	Address              *string `json:"address"`
	Email                *string `json:"email"`
	Phone                *string `json:"phone"`
	Text                 *string `json:"text"`
	HiringManagerCompany *string `json:"hiring_manager_company"`
	HiringManagerName    *string `json:"hiring_manager_name"`
	Role                 *string `json:"role"`
}
