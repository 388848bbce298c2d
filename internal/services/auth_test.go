package services

import (
	"context"
	"encoding/json"
	"testing"

	"istanfix/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig(), testLogger())
	ctx := context.Background()

	user, err := svc.Signup(ctx, SignupInput{
		Name:     "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEmpty(t, user.HashedPassword)
	assert.NotEqual(t, "secret123", user.HashedPassword, "plaintext must never be persisted")
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig(), testLogger())
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Name: "First", Email: "dup@example.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupInput{Name: "Second", Email: "dup@example.com", Password: "pw123456"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Email already registered.", ve.Message)

	count, err := db.NewSelect().Model((*models.User)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "failed signup must not add a row")
}

func TestSignupValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig(), testLogger())
	ctx := context.Background()

	var ve *ValidationError

	_, err := svc.Signup(ctx, SignupInput{Email: "a@b.c", Password: "pw"})
	require.ErrorAs(t, err, &ve)

	_, err = svc.Signup(ctx, SignupInput{Name: "A", Email: "not-an-email", Password: "pw"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid email format.", ve.Message)
}

func TestSignupGovernmentRequiresCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig(), testLogger())
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{
		Name:     "Clerk",
		Email:    "clerk@gov.example.com",
		Password: "pw123456",
		Role:     models.RoleGovernment,
	})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Signup(ctx, SignupInput{
		Name:            "Clerk",
		Email:           "clerk@gov.example.com",
		Password:        "pw123456",
		Role:            models.RoleGovernment,
		GovVerification: "GOV2024",
	})
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig(), testLogger())
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Name: "Ali", Email: "ali@example.com", Password: "correct-pw"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, "ali@example.com", "correct-pw")
	require.NoError(t, err)
	assert.Equal(t, "Ali", user.Name)
}

func TestLoginGenericErrorForBothFailureModes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig(), testLogger())
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Name: "Ali", Email: "ali@example.com", Password: "correct-pw"})
	require.NoError(t, err)

	var ve *ValidationError

	_, unknownErr := svc.Login(ctx, "nobody@example.com", "whatever")
	require.ErrorAs(t, unknownErr, &ve)

	_, wrongErr := svc.Login(ctx, "ali@example.com", "wrong-pw")
	require.ErrorAs(t, wrongErr, &ve)

	assert.Equal(t, unknownErr.Error(), wrongErr.Error(), "unknown email and wrong password must be indistinguishable")
}

func TestUserJSONNeverExposesHash(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig(), testLogger())
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Name: "Ali", Email: "ali@example.com", Password: "correct-pw"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, "ali@example.com", "correct-pw")
	require.NoError(t, err)

	payload, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "hashed_password")
	assert.NotContains(t, string(payload), user.HashedPassword)
}
