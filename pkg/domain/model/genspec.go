package model

// NotoDescription is the common package description of every Noto font
const NotoDescription = "Noto is a collection of high-quality fonts with multiple weights and widths" +
	" in sans, serif, mono and other styles, in more than 1,000 languages" +
	" and over 150 writing systems."

// DefaultSpecEpoch is required because the former google-noto-fonts packages
// were versioned by date.
const DefaultSpecEpoch = 1

// DefaultExcludePaths are archive directories not packaged. Only the
// googlefonts flavor is used since "full" is not available for every project.
var DefaultExcludePaths = []string{"unhinted", "hinted", "full"}

// GenSpecOptions controls source preparation for the spec generator
type GenSpecOptions struct {
	OutputDir    string
	Epoch        int
	IgnoreErrors []string // Generator error kinds to downgrade to warnings

	// Progress is called with the download URL before a missing source is fetched
	Progress func(url string)
}

// GenerationPlan is the hand-off document for the external RPM spec generator,
// one per logical name of a project.
type GenerationPlan struct {
	Name         string   `json:"name"`
	Repository   string   `json:"repository"`
	Title        string   `json:"title"`
	Version      string   `json:"version"`
	URL          string   `json:"url"`
	Epoch        int      `json:"epoch"`
	Description  string   `json:"description"`
	Sources      []string `json:"sources"`
	ExcludePaths []string `json:"exclude_paths"`
	IgnoreErrors []string `json:"ignore_errors,omitempty"`
}
