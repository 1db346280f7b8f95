package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/plutoride/vendor-app/internal/pkg/apperr"
)

// DecodePayload decodes the claims of a bearer token without verifying its
// signature. The client never holds the signing secret; the token is only
// inspected locally to recover identity fields the server put in it.
func DecodePayload(tokenString string) (map[string]interface{}, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	_, _, err := parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, &apperr.AuthenticationError{Reason: "malformed token", Err: err}
	}

	return claims, nil
}

// ProfileID extracts the user document ID from a bearer token payload.
// The server stores it under "_id" on login tokens and "id" on signup tokens.
func ProfileID(tokenString string) (string, error) {
	claims, err := DecodePayload(tokenString)
	if err != nil {
		return "", err
	}

	for _, key := range []string{"_id", "id", "user_id"} {
		if v, ok := claims[key]; ok {
			return fmt.Sprintf("%v", v), nil
		}
	}

	return "", apperr.NewAuthentication("token payload carries no user id")
}
