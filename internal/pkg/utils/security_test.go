package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("Hash And Verify", func(t *testing.T) {
		hashed, err := HashPassword("Secret123!")

		assert.NoError(t, err)
		assert.NotEqual(t, "Secret123!", hashed, "stored password must never be the plaintext")
		assert.True(t, CheckPasswordHash("Secret123!", hashed))
		assert.False(t, CheckPasswordHash("wrong", hashed))
	})
}

func TestSessionJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateSessionJWT("sess-123", secret, 1)
		assert.NoError(t, err)

		sessionID, err := ParseSessionJWT(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, "sess-123", sessionID, "the only claim the token carries is the session id")
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		token, err := GenerateSessionJWT("sess-123", secret, 1)
		assert.NoError(t, err)

		_, err = ParseSessionJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Garbage Token Rejected", func(t *testing.T) {
		_, err := ParseSessionJWT("not-a-token", secret)
		assert.Error(t, err)
	})
}

func TestGenerateOTP(t *testing.T) {
	t.Run("Length And Digits", func(t *testing.T) {
		otp, err := GenerateOTP(6)

		assert.NoError(t, err)
		assert.Len(t, otp, 6)
		for _, char := range otp {
			assert.True(t, char >= '0' && char <= '9', "OTP should contain digits only")
		}
	})
}
