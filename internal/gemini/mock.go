package gemini

import "context"

// MockClient for testing
type MockClient struct {
	Result                *Result
	Err                   error
	Calls                 int
	LastPrompt            string
	LastSystemInstruction string
}

func (m *MockClient) Translate(ctx context.Context, prompt string) (*Result, error) {
	m.Calls++
	m.LastPrompt = prompt
	return m.Result, m.Err
}

func (m *MockClient) SetSystemInstruction(prompt string) {
	m.LastSystemInstruction = prompt
}
