package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwholesale/storefront/internal/auth"
	"github.com/iwholesale/storefront/internal/payment"
)

func Test_Auth_Authenticate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "accepts any email with long enough password", password: "secret1", wantErr: nil},
		{name: "accepts six character password", password: "123456", wantErr: nil},
		{name: "rejects short password", password: "12345", wantErr: auth.ErrInvalidCredentials},
		{name: "rejects empty password", password: "", wantErr: auth.ErrInvalidCredentials},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAuth(0)
			err := a.Authenticate(context.Background(), "buyer@example.com", tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Auth_RespectsContextCancellation(t *testing.T) {
	a := NewAuth(time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := a.Authenticate(ctx, "buyer@example.com", "secret1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func Test_Payment_Charge(t *testing.T) {
	t.Run("approves by default", func(t *testing.T) {
		p := NewPayment(0)
		assert.NoError(t, p.Charge(context.Background(), 129900))
	})

	t.Run("declines when configured", func(t *testing.T) {
		p := NewPayment(0)
		p.DeclineAll = true
		assert.ErrorIs(t, p.Charge(context.Background(), 129900), payment.ErrPaymentDeclined)
	})
}

func Test_Assistant_StreamsWordFragments(t *testing.T) {
	a := NewAssistant(0, "tier pricing applies automatically")

	var fragments []string
	err := a.StreamReply(context.Background(), "how do tiers work?", func(fragment string) error {
		fragments = append(fragments, fragment)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"tier ", "pricing ", "applies ", "automatically"}, fragments)
}

func Test_Assistant_DefaultReplyWhenUnconfigured(t *testing.T) {
	a := NewAssistant(0, "")

	var reply string
	require.NoError(t, a.StreamReply(context.Background(), "hi", func(fragment string) error {
		reply += fragment
		return nil
	}))

	assert.Equal(t, defaultReply, reply)
}

func Test_Assistant_StopsOnDeliverError(t *testing.T) {
	a := NewAssistant(0, "one two three")

	calls := 0
	err := a.StreamReply(context.Background(), "hi", func(string) error {
		calls++
		return context.Canceled
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
