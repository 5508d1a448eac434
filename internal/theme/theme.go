// Package theme holds the single parameterized replacement for the site's
// duplicated component trees: one component set, three sets of style tokens,
// copy strings and submission policy.
package theme

import "fmt"

type Variant string

const (
	VariantCorporate  Variant = "corporate"
	VariantConfession Variant = "confession"
	VariantGlory      Variant = "glory"
)

// Palette is the enumerated style-token set a variant exposes to the shell.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
}

// Copy is the per-variant wording of the shared components.
type Copy struct {
	SiteTitle    string `json:"site_title"`
	Tagline      string `json:"tagline"`
	FormTitle    string `json:"form_title"`
	SubmitLabel  string `json:"submit_label"`
	EmptyFeed    string `json:"empty_feed"`
	NoANNs       string `json:"no_announcements"`
	PraisePrompt string `json:"praise_prompt"`
}

// Policy is the required/optional-field matrix for the submission form. The
// variants never agreed on one matrix, so it ships as configuration.
type Policy struct {
	RequireAttachment bool `json:"require_attachment"`
	RequireAgreement  bool `json:"require_agreement"`
}

type Theme struct {
	Variant Variant
	Palette Palette
	Copy    Copy
	Policy  Policy
}

var registry = map[Variant]Theme{
	VariantCorporate: {
		Variant: VariantCorporate,
		Palette: Palette{
			Primary:    "#0d47a1",
			Secondary:  "#1976d2",
			Background: "#ffffff",
			Surface:    "#f8f9fa",
			Text:       "#212121",
		},
		Copy: Copy{
			SiteTitle:    "YIM Information Technology",
			Tagline:      "Pure IP Communication Solution Provider",
			FormTitle:    "Contact Us",
			SubmitLabel:  "Send",
			EmptyFeed:    "No entries yet.",
			NoANNs:       "No announcements have been posted.",
			PraisePrompt: "Leave us a message",
		},
		Policy: Policy{RequireAttachment: false, RequireAgreement: false},
	},
	VariantConfession: {
		Variant: VariantConfession,
		Palette: Palette{
			Primary:    "#00ff41",
			Secondary:  "#ff0055",
			Background: "#0a0a0a",
			Surface:    "#111111",
			Text:       "#ffffff",
		},
		Copy: Copy{
			SiteTitle:    "DARK_ARCHIVE",
			Tagline:      "/// permanent record protocol engaged",
			FormTitle:    "[ DATA_ENTRY_FORM ]",
			SubmitLabel:  "UPLOAD",
			EmptyFeed:    "DATA_NOT_FOUND",
			NoANNs:       "NO_DIRECTIVES_ISSUED",
			PraisePrompt: "[ PUBLIC_COMMENTS ]",
		},
		Policy: Policy{RequireAttachment: true, RequireAgreement: true},
	},
	VariantGlory: {
		Variant: VariantGlory,
		Palette: Palette{
			Primary:    "#5c9cff",
			Secondary:  "#bad0ff",
			Background: "#f4f8ff",
			Surface:    "#ffffff",
			Text:       "#032542",
		},
		Copy: Copy{
			SiteTitle:    "PYO GLORY",
			Tagline:      "A tribute archive of glorious moments",
			FormTitle:    "Share a moment",
			SubmitLabel:  "Archive it",
			EmptyFeed:    "Be the first to share a moment.",
			NoANNs:       "Awaiting the next great announcement.",
			PraisePrompt: "Leave a word of praise",
		},
		Policy: Policy{RequireAttachment: true, RequireAgreement: false},
	},
}

// ByVariant returns the theme for v.
func ByVariant(v Variant) (Theme, error) {
	t, ok := registry[v]
	if !ok {
		return Theme{}, fmt.Errorf("unknown site variant: %q", v)
	}
	return t, nil
}

// Variants lists every registered variant name.
func Variants() []Variant {
	return []Variant{VariantCorporate, VariantConfession, VariantGlory}
}
