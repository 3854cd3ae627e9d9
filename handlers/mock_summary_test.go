package handlers

type mockSummary struct {
	GenerateSummaryFn func(prompt string) (string, error)
	CallCount         int
	Prompts           []string
}

func newMockSummary() *mockSummary {
	return &mockSummary{
		Prompts: []string{},
	}
}

func (m *mockSummary) GenerateSummary(prompt string) (string, error) {
	m.CallCount++
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateSummaryFn != nil {
		return m.GenerateSummaryFn(prompt)
	}
	return "Everything looks on track today.", nil
}
