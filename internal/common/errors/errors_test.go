// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("boom")

	tests := []struct {
		name          string
		err           *StandardError
		wantCode      ErrorCode
		wantRetryable bool
	}{
		{
			name:     "credential load",
			err:      NewCredentialLoadError("/keys/demo.json", cause),
			wantCode: ErrCodeCredentialLoadFailed,
		},
		{
			name:     "project id missing",
			err:      NewProjectIDMissingError("/keys/demo.json"),
			wantCode: ErrCodeProjectIDMissing,
		},
		{
			name:          "token exchange",
			err:           NewTokenExchangeError(cause),
			wantCode:      ErrCodeTokenExchangeFailed,
			wantRetryable: true,
		},
		{
			name:     "payload invalid",
			err:      NewPayloadInvalidError("topic is required"),
			wantCode: ErrCodePayloadInvalid,
		},
		{
			name:          "message send",
			err:           NewMessageSendError(cause),
			wantCode:      ErrCodeMessageSendFailed,
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantRetryable, tt.err.Retryable)
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Contains(t, tt.err.Error(), string(tt.wantCode))
		})
	}
}

func TestIsCode(t *testing.T) {
	err := NewPayloadInvalidError("bad params")
	assert.True(t, IsCode(err, ErrCodePayloadInvalid))
	assert.False(t, IsCode(err, ErrCodeMessageSendFailed))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrCodePayloadInvalid))
}
