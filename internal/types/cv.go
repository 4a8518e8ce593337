// Package types provides type definitions for structured data used throughout the cv-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TemplateID identifies one of the fixed, curated CV templates.
type TemplateID string

// The closed set of template identifiers. Any identifier outside this set is
// invalid input and is repaired to TemplateModern during normalization.
const (
	TemplateModern       TemplateID = "modern"
	TemplateProfessional TemplateID = "professional"
	TemplateCreative     TemplateID = "creative"
	TemplateNigerian     TemplateID = "nigerian"
	TemplateMinimal      TemplateID = "minimal"
	TemplateExecutive    TemplateID = "executive"
	TemplateTech         TemplateID = "tech"
)

// TemplateIDs lists every valid template identifier in catalog order.
func TemplateIDs() []TemplateID {
	return []TemplateID{
		TemplateModern,
		TemplateProfessional,
		TemplateCreative,
		TemplateNigerian,
		TemplateMinimal,
		TemplateExecutive,
		TemplateTech,
	}
}

// ValidTemplateID reports whether id belongs to the fixed template set.
func ValidTemplateID(id TemplateID) bool {
	for _, t := range TemplateIDs() {
		if t == id {
			return true
		}
	}
	return false
}

// CV is the root aggregate for a single résumé. The id stays empty until the
// record is persisted; timestamps are assigned server-side on save.
// After normalization every slice field is non-nil, even when empty.
type CV struct {
	ID             string           `json:"id"`
	TemplateID     TemplateID       `json:"templateId"`
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	Experience     []WorkExperience `json:"experience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
	Certifications []Certification  `json:"certifications"`
	Languages      []Language       `json:"languages"`
	Referees       []Referee        `json:"referees"`
	Presentation   *CVPresentation  `json:"presentation,omitempty"`
	Targeting      *CVTargeting     `json:"targeting,omitempty"`
	VariantMeta    *VariantMeta     `json:"variantMeta,omitempty"`
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
}

// PersonalInfo carries contact details. Email and URLs are validated at the
// form-input boundary only; the rendering core tolerates empty or malformed
// values.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	LinkedIn  string `json:"linkedIn"`
	Portfolio string `json:"portfolio"`
}

// WorkExperience is one employment entry. When Current is true the stored
// EndDate is ignored and rendering substitutes "Present".
type WorkExperience struct {
	ID          string `json:"id"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"` // YYYY-MM
	EndDate     string `json:"endDate"`   // YYYY-MM
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one study entry, same date semantics as WorkExperience.
type Education struct {
	ID           string `json:"id"`
	Degree       string `json:"degree"`
	Institution  string `json:"institution"`
	Location     string `json:"location"`
	StartDate    string `json:"startDate"` // YYYY-MM
	EndDate      string `json:"endDate"`   // YYYY-MM
	Current      bool   `json:"current"`
	FieldOfStudy string `json:"fieldOfStudy"`
}

// SkillLevel is the 4-step ordinal proficiency scale for skills. It is
// intentionally distinct from LanguageProficiency.
type SkillLevel string

// Skill levels in ascending order.
const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// SkillCategory partitions skills into technical and soft.
type SkillCategory string

// Skill categories.
const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
)

// Skill is one named skill with an ordinal level and a category.
type Skill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Level    SkillLevel    `json:"level"`
	Category SkillCategory `json:"category"`
}

// LanguageProficiency is the 5-step ordinal scale for spoken languages.
type LanguageProficiency string

// Language proficiencies in ascending order.
const (
	LangBeginner     LanguageProficiency = "beginner"
	LangIntermediate LanguageProficiency = "intermediate"
	LangAdvanced     LanguageProficiency = "advanced"
	LangFluent       LanguageProficiency = "fluent"
	LangNative       LanguageProficiency = "native"
)

// Language is one spoken language entry.
type Language struct {
	ID          string              `json:"id"`
	Language    string              `json:"language"`
	Proficiency LanguageProficiency `json:"proficiency"`
}

// Certification is one certification entry.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"` // YYYY-MM
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
}

// Referee is one professional reference.
type Referee struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Company      string `json:"company"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship"`
}

// CVTargeting carries job-matching metadata attached by the user when a CV is
// aimed at a specific opening.
type CVTargeting struct {
	JobTitle  string   `json:"jobTitle"`
	Company   string   `json:"company"`
	JobAdText string   `json:"jobAdText"`
	Keywords  []string `json:"keywords"`
	MatchedAt string   `json:"matchedAt,omitempty"`
}

// VariantMeta records provenance when a CV was derived from another.
type VariantMeta struct {
	SourceCVID string `json:"sourceCvId"`
	Label      string `json:"label"`
	CreatedAt  string `json:"createdAt,omitempty"`
}
