package sim

import (
	"context"
	"strings"
	"time"

	"github.com/iwholesale/storefront/internal/assistant"
)

const defaultReply = "Thanks for your question. Our wholesale team reviews every inquiry; " +
	"for bulk pricing above 100 units the 15% tier discount applies automatically at checkout."

var _ assistant.Replier = (*Assistant)(nil)

// Assistant simulates the streaming assistant by emitting a canned reply one
// word at a time, with Delay between fragments.
type Assistant struct {
	Delay time.Duration
	Reply string
}

func NewAssistant(delay time.Duration, reply string) *Assistant {
	if reply == "" {
		reply = defaultReply
	}
	return &Assistant{Delay: delay, Reply: reply}
}

func (a *Assistant) StreamReply(ctx context.Context, _ string, deliver func(fragment string) error) error {
	words := strings.Fields(a.Reply)
	for i, word := range words {
		if err := wait(ctx, a.Delay); err != nil {
			return err
		}
		fragment := word
		if i < len(words)-1 {
			fragment += " "
		}
		if err := deliver(fragment); err != nil {
			return err
		}
	}
	return nil
}
