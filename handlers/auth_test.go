package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	reg := RegisterInput{
		Email:    "test@example.com",
		FullName: "Test User",
		Password: "testpass",
	}
	w := doJSON(t, router, "POST", "/register", "", reg)
	assert.Equal(t, 200, w.Code)

	// Registering the same email again fails.
	w = doJSON(t, router, "POST", "/register", "", reg)
	assert.Equal(t, 400, w.Code)

	login := LoginInput{Email: "test@example.com", Password: "testpass"}
	w = doJSON(t, router, "POST", "/login", "", login)
	require.Equal(t, 200, w.Code)

	var response struct {
		Token string   `json:"token"`
		Email string   `json:"email"`
		Roles []string `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "test@example.com", response.Email)
	assert.Contains(t, response.Roles, "buyer")

	// Wrong password is rejected.
	login.Password = "wrongpass"
	w = doJSON(t, router, "POST", "/login", "", login)
	assert.Equal(t, 401, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/api/cart", "", nil)
	assert.Equal(t, 401, w.Code)

	w = doJSON(t, router, "GET", "/api/cart", "not-a-real-token", nil)
	assert.Equal(t, 401, w.Code)
}
