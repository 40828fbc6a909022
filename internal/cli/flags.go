package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputPath string
	DBPath     string
	ListModels bool

	// Model provider flags
	Provider  string
	Model     string
	MaxTokens int

	// Vertex AI flags
	ProjectID string
	Region    string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Provider:  "vertex",
		Region:    "us-east5",
		MaxTokens: 2048,
	}
}
