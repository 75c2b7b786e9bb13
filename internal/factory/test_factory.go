package factory

import (
	"time"

	"github.com/imposterparty/imposterparty/internal/dependencies/mocks"
	"github.com/imposterparty/imposterparty/internal/services/wordsource"
	"github.com/imposterparty/imposterparty/internal/storage/memory"
	"github.com/imposterparty/imposterparty/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked
// dependencies. The word client stub is injected by the caller, which
// keeps generation behavior under test control.
func NewTestApp(wordClient wordsource.Completer) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, wordClient, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
