// internal/fcm/credentials.go
package fcm

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"fcm-sender/internal/common/errors"
)

// Credentials holds the parts of a Google service-account key the sender needs.
// The raw key bytes are kept for the OAuth2 JWT config, which reads more fields
// (private_key, client_email, token_uri) than the sender itself cares about.
type Credentials struct {
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	TokenURI    string `json:"token_uri"`

	raw []byte
}

// LoadCredentials reads a service-account key file once and validates that it
// names a project.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCredentialLoadError(path, err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, errors.NewCredentialLoadError(path, err)
	}
	if creds.ProjectID == "" {
		return nil, errors.NewProjectIDMissingError(path)
	}

	creds.raw = data
	return &creds, nil
}

// KeyJSON returns the raw key file contents.
func (c *Credentials) KeyJSON() []byte {
	return c.raw
}

// SendEndpoint derives the FCM HTTP v1 messages:send URL for this project.
func (c *Credentials) SendEndpoint(baseURL string) string {
	return fmt.Sprintf("%s/v1/projects/%s/messages:send", strings.TrimRight(baseURL, "/"), c.ProjectID)
}
