package metadata

import "testing"

func TestGeminiPricing_Default(t *testing.T) {
	m, ok := GeminiPricing("unknown-model")
	if ok {
		t.Fatalf("expected default pricing for unknown model")
	}
	if m.InputPerMillion != DefaultGeminiInputPerMillion || m.OutputPerMillion != DefaultGeminiOutputPerMillion {
		t.Fatalf("unexpected default gemini pricing: %+v", m)
	}
}

func TestGeminiPricing_Known(t *testing.T) {
	m, ok := GeminiPricing(DefaultModelID)
	if !ok {
		t.Fatalf("expected pricing entry for %q", DefaultModelID)
	}
	if m.ID != DefaultModelID {
		t.Fatalf("unexpected model: %+v", m)
	}
}

func TestGeminiModelIDs(t *testing.T) {
	ids := GeminiModelIDs()
	if len(ids) != len(GeminiModels) {
		t.Fatalf("got %d ids, want %d", len(ids), len(GeminiModels))
	}
}
