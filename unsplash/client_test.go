package unsplash

import (
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name      string
		accessKey string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid config",
			accessKey: "test-key",
			wantErr:   false,
		},
		{
			name:      "missing access key",
			accessKey: "",
			wantErr:   true,
			errMsg:    "access key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.accessKey, logger)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
			assert.Equal(t, DefaultAPIURL+"photos/random", client.randomURL)
			assert.Equal(t, "Client-ID test-key", client.public.Authorization)
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with api url adds missing slash", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithAPIURL("http://localhost:8080"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/me", client.meURL)
		assert.Equal(t, "http://localhost:8080/photos", client.photosURL)
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		httpClient, ok := client.httpClient.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, 5*time.Second, httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("test-key", logger, WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Equal(t, custom, client.httpClient)
	})

	t.Run("timeout keeps injected transport", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}

		// The injected transport wins in either option order.
		client, err := NewClient("test-key", logger, WithHTTPClient(custom), WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, custom, client.httpClient)

		client, err = NewClient("test-key", logger, WithTimeout(5*time.Second), WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Equal(t, custom, client.httpClient)
		assert.Equal(t, 10*time.Second, custom.Timeout)
	})

	t.Run("with bearer token", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithBearerToken("tok"))
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok", client.private.Authorization)
	})
}
