package model

type CoverLetterContent struct {
	Name                 string `json:"name,omitempty" validate:"max=1000" jsonschema_description:"Your full name"`
	Address              string `json:"address,omitempty" validate:"max=1000" jsonschema_description:"Your physical address"`
	Email                string `json:"email,omitempty" validate:"max=250" jsonschema_description:"Your email address"`
	Phone                string `json:"phone,omitempty" validate:"max=250" label:"Phone number" jsonschema_description:"Your phone number"`
	Text                 string `json:"text,omitempty" validate:"max=15000" label:"Cover letter text" jsonschema_description:"Main body text of the cover letter. Use line breaks to separate paragraphs"`
	HiringManagerCompany string `json:"hiring_manager_company,omitempty" validate:"max=250" label:"Company name" jsonschema_description:"Company name. Used in the letter header and salutation"`
	HiringManagerName    string `json:"hiring_manager_name,omitempty" validate:"max=250" label:"Hiring manager name" jsonschema_description:"The name of the hiring manager"`
	Role                 string `json:"role,omitempty" validate:"max=1000" jsonschema_description:"Your professional role or job title"`
}

type CoverLetterStyle struct {
	Template *CoverLetterTemplate `json:"template,omitempty" validate:"omitempty,enum" jsonschema_description:"Cover letter template to use"`
	DocumentStyle
}
