package domain

// Branding is the per-company configuration injected into every generated
// document. Every field is optional; the renderer omits what is absent.
type Branding struct {
	CompanyName     string `json:"company_name,omitempty"`
	Address         string `json:"address,omitempty"`
	Postcode        string `json:"postcode,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email,omitempty"`
	Website         string `json:"website,omitempty"`
	CompanyNumber   string `json:"company_number,omitempty"`
	VatNumber       string `json:"vat_number,omitempty"`
	LogoURL         string `json:"logo_url,omitempty"`
	LogoDataURI     string `json:"logo_data_uri,omitempty"`
	PrimaryColour   string `json:"primary_colour,omitempty"`
	SecondaryColour string `json:"secondary_colour,omitempty"`
	SchemeLogoURL   string `json:"scheme_logo_url,omitempty"`
	SchemeName      string `json:"scheme_name,omitempty"`
}

// Default accent colours used when a company has not set its own.
const (
	DefaultPrimaryColour   = "#1e3a5f"
	DefaultSecondaryColour = "#f59e0b"
)

// Primary returns the primary accent colour, falling back to the default.
func (b Branding) Primary() string {
	if b.PrimaryColour != "" {
		return b.PrimaryColour
	}
	return DefaultPrimaryColour
}

// Secondary returns the secondary accent colour, falling back to the default.
func (b Branding) Secondary() string {
	if b.SecondaryColour != "" {
		return b.SecondaryColour
	}
	return DefaultSecondaryColour
}

// Logo resolves the logo source to embed: the public URL wins over an
// embedded data URI; empty means no logo is rendered.
func (b Branding) Logo() string {
	if b.LogoURL != "" {
		return b.LogoURL
	}
	return b.LogoDataURI
}
