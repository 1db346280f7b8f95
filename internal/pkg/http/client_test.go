package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/plutoride/vendor-app/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerClient_AuthorizationHeader(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantHeader string
	}{
		{
			name:       "token present",
			token:      "abc",
			wantHeader: "Bearer abc",
		},
		{
			name:       "token absent",
			token:      "",
			wantHeader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotHeader string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Get("Authorization")
				w.Write([]byte(`{"ok":true}`))
			}))
			defer server.Close()

			client := NewBearerClient(server.URL, 5*time.Second)
			var result map[string]bool
			err := client.GetJSON(context.Background(), "/ping", tt.token, &result)

			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, gotHeader)
			assert.True(t, result["ok"])
		})
	}
}

func TestBearerClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "401 maps to authentication error",
			statusCode: http.StatusUnauthorized,
			body:       `{"error":"token expired"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, apperr.IsAuthentication(err))
			},
		},
		{
			name:       "500 maps to remote service error with body",
			statusCode: http.StatusInternalServerError,
			body:       "boom",
			check: func(t *testing.T, err error) {
				var re *apperr.RemoteServiceError
				require.ErrorAs(t, err, &re)
				assert.Equal(t, http.StatusInternalServerError, re.StatusCode)
				assert.Equal(t, "boom", re.Body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewBearerClient(server.URL, 5*time.Second)
			err := client.GetJSON(context.Background(), "/bookings", "abc", nil)

			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestBearerClient_TransportFailure(t *testing.T) {
	// Point at a closed server to force a transport error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewBearerClient(server.URL, time.Second)
	err := client.GetJSON(context.Background(), "/bookings", "", nil)

	require.Error(t, err)
	assert.True(t, apperr.IsRemote(err))
}
