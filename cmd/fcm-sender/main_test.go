// cmd/fcm-sender/main_test.go
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"fcm-sender/internal/common/errors"
	"fcm-sender/internal/fcm"
)

func TestResolveMessage(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		wantNil  bool
		wantErr  bool
		validate func(t *testing.T, env *fcm.Envelope)
	}{
		{
			name: "common selector",
			arg:  "common-message",
			validate: func(t *testing.T, env *fcm.Envelope) {
				assert.Equal(t, "news", env.Message.Topic)
				assert.Nil(t, env.Message.Android)
			},
		},
		{
			name: "override selector",
			arg:  "override-message",
			validate: func(t *testing.T, env *fcm.Envelope) {
				assert.Equal(t, "android.intent.action.MAIN", env.Message.Android.Notification.ClickAction)
			},
		},
		{
			name: "JSON parameter object",
			arg:  `{"title":"T","body":"B","topic":"promo"}`,
			validate: func(t *testing.T, env *fcm.Envelope) {
				assert.Equal(t, "promo", env.Message.Topic)
				assert.True(t, env.Message.DeliveryReceiptRequested)
			},
		},
		{
			name:    "invalid JSON parameters",
			arg:     `{"title":"T"}`,
			wantErr: true,
		},
		{
			name:    "unrecognized selector",
			arg:     "random-message",
			wantNil: true,
		},
		{
			name:    "absent flag",
			arg:     "",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := resolveMessage(tt.arg)
			if tt.wantErr {
				assert.Nil(t, env)
				assert.True(t, errors.IsCode(err, errors.ErrCodePayloadInvalid))
				return
			}
			assert.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, env)
				return
			}
			tt.validate(t, env)
		})
	}
}

func TestPrintUsage(t *testing.T) {
	var out bytes.Buffer
	printUsage(&out)

	assert.Contains(t, out.String(), "--message=common-message")
	assert.Contains(t, out.String(), "--message=override-message")
}
