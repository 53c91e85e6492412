package gemini

// Result is the parsed model reply for one translation call: a flat mapping
// of language code to translated text, plus token accounting.
type Result struct {
	Translations map[string]string
	Usage        UsageMetadata
}

// UsageMetadata holds token usage information for a single call.
type UsageMetadata struct {
	PromptTokenCount     int
	CandidatesTokenCount int
	TotalTokenCount      int
}
