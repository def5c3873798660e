package tokens

import (
	"testing"

	"github.com/markethub/markethub.go/db/models"
	"github.com/stretchr/testify/assert"
)

func TestRefreshTokenRoundTrip(t *testing.T) {
	secret := []byte("SECRET")
	user := &models.User{ID: 42}

	token, err := GenerateRefreshToken(secret, 3600, user)
	assert.NoError(t, err)

	userId, err := GetUserIdFromRefreshToken(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userId)
}

func TestAccessTokenIsNotARefreshToken(t *testing.T) {
	secret := []byte("SECRET")
	user := &models.User{ID: 42}

	token, err := GenerateAccessToken(secret, 3600, user)
	assert.NoError(t, err)

	_, err = GetUserIdFromRefreshToken(secret, token)
	assert.Error(t, err)
}

func TestWrongSecretIsRejected(t *testing.T) {
	user := &models.User{ID: 42}
	token, err := GenerateRefreshToken([]byte("SECRET"), 3600, user)
	assert.NoError(t, err)

	_, err = GetUserIdFromRefreshToken([]byte("OTHER"), token)
	assert.Error(t, err)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	user := &models.User{ID: 42}
	token, err := GenerateRefreshToken([]byte("SECRET"), -1, user)
	assert.NoError(t, err)

	_, err = GetUserIdFromRefreshToken([]byte("SECRET"), token)
	assert.Error(t, err)
}
