package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidate(t *testing.T) {
	s := New("secret", time.Hour)

	signed, err := s.Generate("session-1")
	assert.NoError(t, err)

	id, err := s.Validate(signed)
	assert.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signed, err := New("secret-a", time.Hour).Generate("session-1")
	assert.NoError(t, err)

	_, err = New("secret-b", time.Hour).Validate(signed)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	s := New("secret", -time.Minute)

	signed, err := s.Generate("session-1")
	assert.NoError(t, err)

	_, err = s.Validate(signed)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := New("secret", time.Hour).Validate("not-a-token")
	assert.Error(t, err)
}
