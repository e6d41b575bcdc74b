package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"blogapi/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	user := ts.createUser(t, "Test User", "user@test.com", "password")

	resp := ts.request(t, http.MethodPost, "/api/v1/auth", fiber.Map{
		"email":    "user@test.com",
		"password": "password",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)
	assert.Equal(t, "Login successful", env.Message)
	assert.NotEmpty(t, env.Timestamp)

	var data struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expiresIn"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 86400, data.ExpiresIn)
	require.NotEmpty(t, data.Token)

	decoded, err := ts.srv.tokens.Decode(data.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, decoded)
}

func TestLogin_FailuresShareOneMessage(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	ts.createUser(t, "Test User", "user@test.com", "password")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "user@test.com", "wrong"},
		{"unknown email", "nobody@test.com", "password"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			resp := ts.request(t, http.MethodPost, "/api/v1/auth", fiber.Map{
				"email":    tc.email,
				"password": tc.password,
			}, "")
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			env := decodeEnvelope(t, resp)
			assert.False(t, env.Success)
			assert.Equal(t, "Incorrect email or password.", env.Message)
		})
	}
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	for _, body := range []fiber.Map{
		{},
		{"email": "user@test.com"},
		{"password": "password"},
	} {
		resp := ts.request(t, http.MethodPost, "/api/v1/auth", body, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	}
}

func TestAuthRequired_RejectsBadTokens(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "not-a-token"},
		{"wrong secret", func() string {
			token, _, err := auth.NewTokenCodec("other_secret").Issue(uuid.New())
			require.NoError(t, err)
			return token
		}()},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			resp := ts.request(t, http.MethodGet, "/api/v1/posts/drafts", nil, tc.token)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			resp.Body.Close()
		})
	}
}
