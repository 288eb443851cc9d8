package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-secret")

func TestActorJWT(t *testing.T) {
	token, err := GenerateActorJWT(42, "editor", time.Hour, testKey)
	require.NoError(t, err)

	claims, err := ValidateActorJWT(token, testKey)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "editor", claims.Role)
}

func TestValidateActorJWT_Errors(t *testing.T) {
	expired, err := GenerateActorJWT(1, "editor", -time.Minute, testKey)
	require.NoError(t, err)

	foreign, err := GenerateActorJWT(1, "editor", time.Hour, []byte("other-secret"))
	require.NoError(t, err)

	anonymous, err := GenerateActorJWT(0, "editor", time.Hour, testKey)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, ActorClaims{UserID: 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired, wantErr: ErrTokenExpired},
		{name: "wrong key", token: foreign},
		{name: "no user", token: anonymous, wantErr: ErrInvalidClaims},
		{name: "none alg", token: none},
		{name: "garbage", token: "not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, vErr := ValidateActorJWT(tt.token, testKey)
			require.Error(t, vErr)
			if tt.wantErr != nil {
				require.ErrorIs(t, vErr, tt.wantErr)
			}
		})
	}
}
