package metadata

type GeminiModel struct {
	ID                      string
	Label                   string
	InputPerMillion         float64
	OutputPerMillion        float64
	ReasoningBilledAsOutput bool
}

var GeminiModels = []GeminiModel{
	{
		ID:                      "gemini-3-flash-preview",
		Label:                   "Gemini 3 Flash (preview)",
		InputPerMillion:         0.50,
		OutputPerMillion:        3.00,
		ReasoningBilledAsOutput: true,
	},
	{
		ID:                      "gemini-3-pro-preview",
		Label:                   "Gemini 3 Pro (preview)",
		InputPerMillion:         2.00,
		OutputPerMillion:        12.00,
		ReasoningBilledAsOutput: true,
	},
}

// DefaultModelID is the model used when no --model flag or env override is
// given.
const DefaultModelID = "gemini-3-flash-preview"

const (
	DefaultGeminiInputPerMillion  = 2.00
	DefaultGeminiOutputPerMillion = 12.00
)

func GeminiModelIDs() []string {
	ids := make([]string, 0, len(GeminiModels))
	for _, m := range GeminiModels {
		ids = append(ids, m.ID)
	}
	return ids
}

// GeminiPricing returns the pricing entry for modelID, falling back to
// conservative defaults for ids not in the table.
func GeminiPricing(modelID string) (GeminiModel, bool) {
	for _, m := range GeminiModels {
		if m.ID == modelID {
			return m, true
		}
	}
	return GeminiModel{
		ID:                      "default",
		Label:                   "Default Gemini",
		InputPerMillion:         DefaultGeminiInputPerMillion,
		OutputPerMillion:        DefaultGeminiOutputPerMillion,
		ReasoningBilledAsOutput: true,
	}, false
}
