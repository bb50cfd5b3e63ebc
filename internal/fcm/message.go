// internal/fcm/message.go
package fcm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"fcm-sender/internal/common/errors"
)

// MessageKind selects one of the supported payload shapes.
type MessageKind int

const (
	KindCommon MessageKind = iota
	KindOverride
	KindCustom
)

// Fixed values used by the common and override shapes.
const (
	DefaultTopic = "news"
	DefaultTitle = "FCM Notification"
	DefaultBody  = "Notification from FCM"

	androidClickAction = "android.intent.action.MAIN"
	apnsPriorityHigh   = "10"
	apnsBadgeCount     = 1
)

// Envelope is the top-level FCM HTTP v1 request body.
type Envelope struct {
	Message *Message `json:"message"`
}

// PrettyJSON renders the envelope with two-space indentation for display.
func (e *Envelope) PrettyJSON() (string, error) {
	out, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Message mirrors the FCM v1 message resource, limited to the fields this
// sender emits. Optional fields are omitted, never serialized as null.
type Message struct {
	Topic                    string            `json:"topic"`
	Notification             *Notification     `json:"notification,omitempty"`
	Data                     map[string]string `json:"data,omitempty"`
	DeliveryReceiptRequested bool              `json:"delivery_receipt_requested,omitempty"`
	Android                  *AndroidConfig    `json:"android,omitempty"`
	APNS                     *APNSConfig       `json:"apns,omitempty"`
}

type Notification struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	ClickAction string `json:"click_action,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type AndroidConfig struct {
	Notification *AndroidNotification `json:"notification,omitempty"`
}

type AndroidNotification struct {
	ClickAction string `json:"click_action,omitempty"`
}

type APNSConfig struct {
	Headers map[string]string `json:"headers,omitempty"`
	Payload *APNSPayload      `json:"payload,omitempty"`
}

type APNSPayload struct {
	APS *APS `json:"aps,omitempty"`
}

type APS struct {
	Badge int `json:"badge,omitempty"`
}

// CustomParams carries the caller-supplied fields for a custom message.
type CustomParams struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Topic string            `json:"topic"`
	Data  map[string]string `json:"data,omitempty"`
	Link  string            `json:"link,omitempty"`
	Icon  string            `json:"icon,omitempty"`
}

// customParamsSchema rejects parameter bundles before any network call:
// title, body and topic are mandatory, data values must be strings, and
// unknown keys are not passed through to FCM.
const customParamsSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"body":  {"type": "string", "minLength": 1},
		"topic": {"type": "string", "minLength": 1},
		"data":  {"type": "object", "additionalProperties": {"type": "string"}},
		"link":  {"type": "string"},
		"icon":  {"type": "string"}
	},
	"required": ["title", "body", "topic"],
	"additionalProperties": false
}`

// ParseCustomParams validates a raw JSON parameter object against the schema
// and unmarshals it.
func ParseCustomParams(raw string) (*CustomParams, error) {
	schemaLoader := gojsonschema.NewStringLoader(customParamsSchema)
	docLoader := gojsonschema.NewStringLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, errors.NewPayloadInvalidError(err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return nil, errors.NewPayloadInvalidError(strings.Join(details, "; "))
	}

	var params CustomParams
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, errors.NewPayloadInvalidError(err.Error())
	}
	return &params, nil
}

// Build constructs the envelope for the given message kind. KindCustom
// requires parameters; the other kinds ignore them.
func Build(kind MessageKind, params *CustomParams) (*Envelope, error) {
	switch kind {
	case KindCommon:
		return buildCommon(), nil
	case KindOverride:
		return buildOverride(), nil
	case KindCustom:
		if params == nil {
			return nil, errors.NewPayloadInvalidError("custom message requires a parameter object")
		}
		return buildCustom(params), nil
	default:
		return nil, errors.NewPayloadInvalidError(fmt.Sprintf("unknown message kind: %d", kind))
	}
}

// buildCommon is the baseline notification delivered to every platform the
// same way.
func buildCommon() *Envelope {
	return &Envelope{
		Message: &Message{
			Topic: DefaultTopic,
			Notification: &Notification{
				Title: DefaultTitle,
				Body:  DefaultBody,
			},
		},
	}
}

// buildOverride adds the platform-specific blocks on top of the common shape:
// a launcher click action for Android, badge count and high priority for APNs.
func buildOverride() *Envelope {
	env := buildCommon()
	env.Message.Android = &AndroidConfig{
		Notification: &AndroidNotification{
			ClickAction: androidClickAction,
		},
	}
	env.Message.APNS = &APNSConfig{
		Headers: map[string]string{
			"apns-priority": apnsPriorityHigh,
		},
		Payload: &APNSPayload{
			APS: &APS{Badge: apnsBadgeCount},
		},
	}
	return env
}

// buildCustom maps caller parameters onto the envelope. link and icon land in
// the notification only when non-empty, and delivery receipts are always
// requested for custom sends.
func buildCustom(params *CustomParams) *Envelope {
	notification := &Notification{
		Title: params.Title,
		Body:  params.Body,
	}
	if params.Link != "" {
		notification.ClickAction = params.Link
	}
	if params.Icon != "" {
		notification.Icon = params.Icon
	}

	msg := &Message{
		Topic:                    params.Topic,
		Notification:             notification,
		DeliveryReceiptRequested: true,
	}
	if len(params.Data) > 0 {
		msg.Data = params.Data
	}

	return &Envelope{Message: msg}
}
