package llm

import "context"

// MockVisionClient permite tests sin llamar al gateway real.
type MockVisionClient struct {
	Response     string
	Err          error
	Calls        int
	LastPrompt   string
	LastImageURL string
}

func (m *MockVisionClient) AnalyzeImage(ctx context.Context, prompt, imageURL string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	m.LastImageURL = imageURL
	return m.Response, m.Err
}

// MockChatClient registra los turnos enviados para poder afirmarlos en tests.
type MockChatClient struct {
	Response     string
	Err          error
	Calls        int
	LastContents []Content
}

func (m *MockChatClient) GenerateContent(ctx context.Context, contents []Content) (string, error) {
	m.Calls++
	m.LastContents = contents
	return m.Response, m.Err
}
