package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/cpTheAideveloper/geminimultilingual/internal/apperrors"
	"github.com/cpTheAideveloper/geminimultilingual/internal/gemini"
)

const (
	// MaxTextLength is the submission limit, counted in grapheme clusters
	// so that multibyte text and emoji count the way a user sees them.
	MaxTextLength = 140
	// TargetCount is the exact number of target languages per submission.
	TargetCount = 3
)

// The two messages the API returns for rejected input. They are part of the
// wire contract; tests assert them verbatim.
const (
	msgInvalidText      = "Text is required and must be up to 140 characters."
	msgInvalidLanguages = "Please select exactly 3 target languages."
)

// Request is one translation submission. It is immutable once built and
// discarded after the response is produced.
type Request struct {
	Text            string   `json:"text"`
	TargetLanguages []string `json:"targetLanguages"`
}

// Validate applies the submission rules in order and stops at the first
// violation: the text rule, then the language rule. Both the HTTP handler
// and the CLI call this; there is no second validation path.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return apperrors.New(apperrors.KindBadRequest, msgInvalidText, fmt.Errorf("text is empty"))
	}
	if n := uniseg.GraphemeClusterCount(r.Text); n > MaxTextLength {
		return apperrors.New(apperrors.KindBadRequest, msgInvalidText, fmt.Errorf("text is %d characters, limit %d", n, MaxTextLength))
	}

	if len(r.TargetLanguages) != TargetCount {
		return apperrors.New(apperrors.KindBadRequest, msgInvalidLanguages, fmt.Errorf("got %d target languages, want %d", len(r.TargetLanguages), TargetCount))
	}
	seen := make(map[string]bool, TargetCount)
	for _, code := range r.TargetLanguages {
		code = strings.TrimSpace(code)
		if code == "" {
			return apperrors.New(apperrors.KindBadRequest, msgInvalidLanguages, fmt.Errorf("blank language code"))
		}
		if seen[code] {
			return apperrors.New(apperrors.KindBadRequest, msgInvalidLanguages, fmt.Errorf("duplicate language code %q", code))
		}
		seen[code] = true
	}
	return nil
}

// Result is one completed translation: language code -> translated text,
// plus the token usage of the single model call that produced it.
type Result struct {
	Translations map[string]string
	Usage        gemini.UsageMetadata
}

// SystemPrompt is the fixed model instruction. It is set once on the client
// at construction and never varies per request.
func SystemPrompt() string {
	return `You are a professional translator.
Translate the text provided by the user into every requested target language.

1. Output Structure:
- The output MUST be a single flat JSON object.
- Each key is one of the requested language codes, exactly as given.
- Each value is the translation of the text into that language.
- Include every requested language exactly once and nothing else.
- Respond ONLY with the JSON object.

2. Rules:
- Preserve the original tone and register.
- Do not include the source text, explanations, or markdown.`
}

// UserPrompt builds the per-request instruction: the requested codes joined
// by ", " and the submission text embedded verbatim.
func UserPrompt(text string, codes []string) string {
	return fmt.Sprintf("Translate the following text into these target languages: %s.\n\nText:\n%s",
		strings.Join(codes, ", "), text)
}

// Translator turns validated requests into translation results through a
// single Gemini call. It holds no per-request state and is safe to share.
type Translator struct {
	client gemini.Translator
}

// New wires a Translator to its model client and installs the fixed system
// instruction.
func New(client gemini.Translator) *Translator {
	client.SetSystemInstruction(SystemPrompt())
	return &Translator{client: client}
}

// Translate performs one model call for a request that has already passed
// Validate. The reply must contain exactly the requested languages with
// non-empty translations; anything else is a validation failure. No
// retries: the caller decides what a failure means.
func (t *Translator) Translate(ctx context.Context, req Request) (*Result, error) {
	resp, err := t.client.Translate(ctx, UserPrompt(req.Text, req.TargetLanguages))
	if err != nil {
		return nil, err
	}

	translations, err := checkShape(req.TargetLanguages, resp.Translations)
	if err != nil {
		return nil, apperrors.Validation(err)
	}

	return &Result{
		Translations: translations,
		Usage:        resp.Usage,
	}, nil
}

// checkShape rejects hallucinated, missing, and empty entries in the model
// output. The keys must be exactly the requested codes.
func checkShape(requested []string, got map[string]string) (map[string]string, error) {
	expected := make(map[string]bool, len(requested))
	for _, code := range requested {
		expected[code] = true
	}

	for code, text := range got {
		if !expected[code] {
			return nil, fmt.Errorf("unexpected language %q (hallucination) in model output", code)
		}
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("empty translation for language %q", code)
		}
	}

	if len(got) != len(requested) {
		return nil, fmt.Errorf("translation count mismatch: expected %d, got %d", len(requested), len(got))
	}

	return got, nil
}
