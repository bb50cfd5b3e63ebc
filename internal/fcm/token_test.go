// internal/fcm/token_test.go
package fcm

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"fcm-sender/internal/common/errors"
)

// testKeyJSON builds a syntactically valid service-account key whose
// token_uri points at the given test server.
func testKeyJSON(t *testing.T, tokenURI string) []byte {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	assert.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	raw, err := json.Marshal(map[string]string{
		"type":           "service_account",
		"project_id":     "demo-project",
		"private_key_id": "key-1",
		"private_key":    string(pemKey),
		"client_email":   "sender@demo-project.iam.gserviceaccount.com",
		"token_uri":      tokenURI,
	})
	assert.NoError(t, err)
	return raw
}

func TestGoogleTokenProvider_AccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-access-token","token_type":"Bearer","expires_in":3600}`)
	}))
	defer server.Close()

	provider := &googleTokenProvider{
		keyJSON: testKeyJSON(t, server.URL),
		scopes:  []string{"https://www.googleapis.com/auth/firebase.messaging"},
	}

	token, err := provider.AccessToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "test-access-token", token)
}

func TestGoogleTokenProvider_ExchangeRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"invalid_grant"}`)
	}))
	defer server.Close()

	provider := &googleTokenProvider{
		keyJSON: testKeyJSON(t, server.URL),
		scopes:  []string{"https://www.googleapis.com/auth/firebase.messaging"},
	}

	token, err := provider.AccessToken(context.Background())
	assert.Empty(t, token)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTokenExchangeFailed))
}

func TestGoogleTokenProvider_BadKey(t *testing.T) {
	provider := &googleTokenProvider{
		keyJSON: []byte(`{"type":"not-a-service-account"}`),
		scopes:  []string{"https://www.googleapis.com/auth/firebase.messaging"},
	}

	token, err := provider.AccessToken(context.Background())
	assert.Empty(t, token)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTokenExchangeFailed))
}
