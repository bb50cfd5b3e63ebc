// internal/fcm/client.go
package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"fcm-sender/internal/common/errors"
	commonhttp "fcm-sender/internal/common/http"
	"fcm-sender/internal/common/logger"
)

// Outcome lines printed after each send attempt.
const (
	successMarker = "Message sent to FCM for delivery, response:"
	failureMarker = "Unable to send message to FCM"
)

// Sender posts one message envelope to the FCM HTTP v1 send endpoint and
// reports the outcome on its writer.
type Sender struct {
	endpoint   string
	tokens     TokenProvider
	httpClient *commonhttp.Client
	logger     logger.Logger
	out        io.Writer
}

func NewSender(endpoint string, tokens TokenProvider, httpClient *commonhttp.Client, log logger.Logger, out io.Writer) *Sender {
	return &Sender{
		endpoint:   endpoint,
		tokens:     tokens,
		httpClient: httpClient,
		logger:     log,
		out:        out,
	}
}

// SendResult carries the FCM response for one send attempt.
type SendResult struct {
	StatusCode int
	Body       string
}

func (r *SendResult) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Send exchanges a token, posts the envelope once, and prints the raw FCM
// response under a success or failure marker. A non-200 response is an
// outcome, not an error; only transport-level failures return an error.
func (s *Sender) Send(ctx context.Context, env *Envelope) (*SendResult, error) {
	requestID := uuid.New().String()
	log := s.logger.WithFields(map[string]interface{}{
		"request_id": requestID,
		"topic":      env.Message.Topic,
	})

	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		log.WithError(err).Error("token exchange failed", nil)
		return nil, err
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return nil, errors.NewPayloadInvalidError(err.Error())
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json; charset=UTF-8",
	}

	resp, err := s.httpClient.Post(ctx, s.endpoint, bytes.NewReader(payload), headers)
	if err != nil {
		log.WithError(err).Error("send request failed", nil)
		return nil, errors.NewMessageSendError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewMessageSendError(err)
	}

	result := &SendResult{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	if result.OK() {
		log.Info("message accepted by FCM", map[string]interface{}{"status": result.StatusCode})
		fmt.Fprintln(s.out, successMarker)
	} else {
		log.Warn("FCM rejected the message", map[string]interface{}{"status": result.StatusCode})
		fmt.Fprintln(s.out, failureMarker)
	}
	fmt.Fprintln(s.out, result.Body)

	return result, nil
}
