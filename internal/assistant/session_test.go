package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockReplier is a mock implementation of the Replier interface
type mockReplier struct {
	fragments  []string
	error      error
	failAfter  int // deliver this many fragments before returning error
	lastPrompt string
	started    chan struct{}
	release    chan struct{}
}

func (m *mockReplier) StreamReply(_ context.Context, prompt string, deliver func(string) error) error {
	m.lastPrompt = prompt
	if m.started != nil {
		close(m.started)
	}
	if m.release != nil {
		<-m.release
	}
	for i, fragment := range m.fragments {
		if m.error != nil && i == m.failAfter {
			return m.error
		}
		if err := deliver(fragment); err != nil {
			return err
		}
	}
	if m.error != nil {
		return m.error
	}
	return nil
}

func Test_Submit_FoldsFragmentsIntoLastMessage(t *testing.T) {
	replier := &mockReplier{fragments: []string{"The iPhone 15 Pro ", "starts at $999 ", "per unit."}}
	session := NewSession(replier)

	var seen []string
	err := session.Submit(context.Background(), "How much is the 15 Pro?", func(fragment string) error {
		seen = append(seen, fragment)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, replier.fragments, seen, "fragments must be observed in arrival order")
	assert.Equal(t, "How much is the 15 Pro?", replier.lastPrompt)

	transcript := session.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, SenderUser, transcript[0].Sender)
	assert.Equal(t, "How much is the 15 Pro?", transcript[0].Text)
	assert.Equal(t, SenderAssistant, transcript[1].Sender)
	assert.Equal(t, "The iPhone 15 Pro starts at $999 per unit.", transcript[1].Text)
}

func Test_Submit_FailureReplacesPlaceholderWithApology(t *testing.T) {
	replier := &mockReplier{
		fragments: []string{"Let me ", "check..."},
		error:     errors.New("upstream closed"),
		failAfter: 1,
	}
	session := NewSession(replier)

	err := session.Submit(context.Background(), "Compare models", nil)

	require.Error(t, err)
	transcript := session.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, apologyText, transcript[1].Text)

	// the session stays usable for further prompts
	replier.error = nil
	require.NoError(t, session.Submit(context.Background(), "Again?", nil))
	assert.Len(t, session.Transcript(), 4)
}

func Test_Submit_ImmediateFailure(t *testing.T) {
	session := NewSession(&mockReplier{error: errors.New("boom")})

	err := session.Submit(context.Background(), "hello", nil)

	require.Error(t, err)
	transcript := session.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, apologyText, transcript[1].Text)
}

func Test_Submit_RejectsConcurrentSubmission(t *testing.T) {
	replier := &mockReplier{
		fragments: []string{"slow reply"},
		started:   make(chan struct{}),
		release:   make(chan struct{}),
	}
	session := NewSession(replier)

	done := make(chan error, 1)
	go func() {
		done <- session.Submit(context.Background(), "first", nil)
	}()

	<-replier.started
	assert.True(t, session.Busy())
	err := session.Submit(context.Background(), "second", nil)
	assert.ErrorIs(t, err, ErrReplyInFlight)

	close(replier.release)
	require.NoError(t, <-done)
	assert.False(t, session.Busy())

	// only the first prompt made it into the transcript
	transcript := session.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, "first", transcript[0].Text)
}

func Test_Submit_DeliveryAbortStopsStream(t *testing.T) {
	replier := &mockReplier{fragments: []string{"one", "two", "three"}}
	session := NewSession(replier)

	calls := 0
	err := session.Submit(context.Background(), "stop early", func(string) error {
		calls++
		if calls == 2 {
			return errors.New("client went away")
		}
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, apologyText, session.Transcript()[1].Text)
}
