package jwt

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/plutoride/vendor-app/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecodePayload(t *testing.T) {
	tokenString := signedToken(t, gojwt.MapClaims{
		"_id":   "64f1c0ffee",
		"email": "vendor@plutoride.com",
	})

	claims, err := DecodePayload(tokenString)

	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee", claims["_id"])
	assert.Equal(t, "vendor@plutoride.com", claims["email"])
}

func TestDecodePayload_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "opaque-session-token"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePayload(tt.token)
			require.Error(t, err)
			assert.True(t, apperr.IsAuthentication(err))
		})
	}
}

func TestProfileID(t *testing.T) {
	tests := []struct {
		name    string
		claims  gojwt.MapClaims
		want    string
		wantErr bool
	}{
		{
			name:   "login token uses _id",
			claims: gojwt.MapClaims{"_id": "abc123"},
			want:   "abc123",
		},
		{
			name:   "signup token uses id",
			claims: gojwt.MapClaims{"id": "def456"},
			want:   "def456",
		},
		{
			name:    "no id claim",
			claims:  gojwt.MapClaims{"email": "vendor@plutoride.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ProfileID(signedToken(t, tt.claims))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsAuthentication(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
