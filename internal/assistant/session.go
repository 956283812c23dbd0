// Package assistant maintains the chat transcript and folds streamed reply
// fragments into the last message.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// Replier is the streaming port to the external assistant. Implementations
// must call deliver once per fragment, in arrival order, and return after
// the stream ends or fails. A non-nil error from deliver aborts the stream.
type Replier interface {
	StreamReply(ctx context.Context, prompt string, deliver func(fragment string) error) error
}

// ErrReplyInFlight is returned when a prompt is submitted while an earlier
// reply is still streaming. The transcript model allows at most one
// in-flight request.
var ErrReplyInFlight = errors.New("a reply is already in flight")

const (
	placeholderText = "..."
	apologyText     = "Sorry, I encountered an error. Please try again."
)

// Session holds a linear chat transcript. The transcript is the only state
// the streamed fragments mutate; each fragment extends the text of the last
// message.
type Session struct {
	mu       sync.Mutex
	replier  Replier
	messages []Message
	inFlight bool
}

func NewSession(replier Replier) *Session {
	return &Session{replier: replier}
}

// Transcript returns a copy of the messages in order.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]Message, len(s.messages))
	copy(messages, s.messages)
	return messages
}

// Busy reports whether a reply is currently streaming.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Submit appends the prompt and a placeholder reply to the transcript, then
// streams the assistant's response into the placeholder, fragment by
// fragment. onFragment, if non-nil, observes each fragment as it is applied;
// returning an error from it aborts the stream.
//
// On failure the placeholder is replaced with a fixed apology and the
// session stays usable for further prompts. Returns ErrReplyInFlight if a
// reply is already streaming.
func (s *Session) Submit(ctx context.Context, prompt string, onFragment func(fragment string) error) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ErrReplyInFlight
	}
	s.inFlight = true
	s.messages = append(s.messages,
		Message{Sender: SenderUser, Text: prompt},
		Message{Sender: SenderAssistant, Text: placeholderText},
	)
	replyIndex := len(s.messages) - 1
	s.mu.Unlock()

	var reply strings.Builder
	err := s.replier.StreamReply(ctx, prompt, func(fragment string) error {
		reply.WriteString(fragment)
		s.mu.Lock()
		s.messages[replyIndex].Text = reply.String()
		s.mu.Unlock()
		if onFragment != nil {
			return onFragment(fragment)
		}
		return nil
	})

	s.mu.Lock()
	if err != nil {
		s.messages[replyIndex].Text = apologyText
	}
	s.inFlight = false
	s.mu.Unlock()
	return err
}
