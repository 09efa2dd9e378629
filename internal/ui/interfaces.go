package ui

// Prompter defines interface for user interaction
type Prompter interface {
	ConfirmSubmit(target string, commentCount int) (bool, error)
}

// DefaultPrompter implements the actual prompting logic
type DefaultPrompter struct{}

// ConfirmSubmit asks before posting a review
func (p *DefaultPrompter) ConfirmSubmit(target string, commentCount int) (bool, error) {
	return ConfirmSubmit(target, commentCount)
}

// MockPrompter for testing
type MockPrompter struct {
	Confirmed         bool
	ConfirmationError error

	// Call tracking
	ConfirmSubmitCalled bool
	LastTarget          string
	LastCommentCount    int
}

// ConfirmSubmit mocks the confirmation prompt
func (m *MockPrompter) ConfirmSubmit(target string, commentCount int) (bool, error) {
	m.ConfirmSubmitCalled = true
	m.LastTarget = target
	m.LastCommentCount = commentCount
	return m.Confirmed, m.ConfirmationError
}
