package services

import (
	"strings"
	"testing"
	"time"

	"github.com/mirkashi/Grazieoutfits/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToken_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")
	admin := &models.Admin{
		ID:       primitive.NewObjectID(),
		Username: "owner",
		Role:     "admin",
	}

	token, err := svc.Generate(admin)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.Hex(), claims["id"])
	assert.Equal(t, "owner", claims["username"])
	assert.Equal(t, "admin", claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Add(6*24*time.Hour).Unix())
}

func TestToken_RejectsTampering(t *testing.T) {
	svc := NewTokenService("test-secret")
	token, err := svc.Generate(&models.Admin{ID: primitive.NewObjectID(), Username: "owner"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = svc.Validate(tampered)
	assert.Error(t, err)
}

func TestToken_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Generate(&models.Admin{ID: primitive.NewObjectID(), Username: "owner"})
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestToken_RejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret")
	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(input)
		assert.Error(t, err, "input %q", input)
	}
}
