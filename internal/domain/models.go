package domain

// AuthMethod identifies how a gateway surface authenticates against the
// Google generative backends.
type AuthMethod string

const (
	// AuthMethodAPIKey authenticates with a configured API key.
	AuthMethodAPIKey AuthMethod = "API_KEY"
	// AuthMethodAmbient authenticates with ambient application default credentials.
	AuthMethodAmbient AuthMethod = "AMBIENT"
	// AuthMethodNone means no usable credentials were found.
	AuthMethodNone AuthMethod = "NONE"
)

// AuthOutcome is the result of credential resolution. Absence of credentials
// is a valid outcome, not an error.
type AuthOutcome struct {
	Method    AuthMethod
	ProjectID string
}

// ModelChoice selects which provider client serves a text generation call.
type ModelChoice string

const (
	// ModelChoiceLegacy routes to the single-shot text client.
	ModelChoiceLegacy ModelChoice = "legacy"
	// ModelChoiceStreaming routes to the incremental chat client.
	ModelChoiceStreaming ModelChoice = "streaming"
)

// GenerationRequest carries the caller-supplied generation parameters.
// Pointer fields distinguish an omitted parameter from an explicit zero,
// since zero is a valid temperature and top-p value.
type GenerationRequest struct {
	Prompt          string
	Temperature     *float64
	TopP            *float64
	TopK            *int
	MaxOutputTokens *int
}

// GenerationDefaults supplies the values used for parameters the caller
// omitted. A zero TopK means the parameter is not sent to the backend.
type GenerationDefaults struct {
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

// Harm categories covered by every generation call.
const (
	HarmCategoryHateSpeech       = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategoryDangerousContent = "HARM_CATEGORY_DANGEROUS_CONTENT"
	HarmCategorySexuallyExplicit = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryHarassment       = "HARM_CATEGORY_HARASSMENT"
)

// ThresholdOff disables blocking for a harm category.
const ThresholdOff = "OFF"

// SafetySetting pairs a harm category with its blocking threshold.
type SafetySetting struct {
	Category  string
	Threshold string
}

// MediaPart is an inline binary payload attached to a generation call,
// such as an audio sample submitted for analysis.
type MediaPart struct {
	MIMEType string
	Data     []byte
}

// GenerationConfig is the backend-ready shape of a single generation call.
// It is built once per call and not mutated afterwards.
type GenerationConfig struct {
	Prompt          string
	Media           *MediaPart
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
	SafetySettings  []SafetySetting
	ThinkingBudget  int32
}

// StreamFragment is one element of an incremental generation stream.
// Channel close signals exhaustion; an Err fragment aborts the stream.
type StreamFragment struct {
	Text string
	Err  error
}

// GenerationResult is the complete output of one generation call together
// with the model that produced it, so fallback-aware callers can tell which
// provider answered.
type GenerationResult struct {
	Text  string
	Model string
}

// Status describes the externally visible state of a gateway surface.
// It is always constructible, including for surfaces that never initialized.
type Status struct {
	Initialized     bool       `json:"initialized"`
	ProjectID       string     `json:"project_id"`
	Region          string     `json:"region"`
	AuthMethod      AuthMethod `json:"auth_method"`
	AvailableModels []string   `json:"available_models"`
	Reason          string     `json:"reason,omitempty"`
}
