package emissions

import "fmt"

// UnknownProviderError reports a provider identifier that is not registered.
type UnknownProviderError struct {
	Provider Provider
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unsupported provider %q", e.Provider)
}

// UnknownModelError reports a model identifier that is not registered under
// an otherwise valid provider.
type UnknownModelError struct {
	Provider Provider
	Model    string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("model %q is not supported by provider %q", e.Model, e.Provider)
}

// InvalidTokenCountError reports a negative token count. Negative counts are
// rejected rather than clamped: a clamped value would silently produce a
// misleading zero-impact figure.
type InvalidTokenCountError struct {
	Field string
	Value int64
}

func (e *InvalidTokenCountError) Error() string {
	return fmt.Sprintf("%s must be >= 0, got %d", e.Field, e.Value)
}
