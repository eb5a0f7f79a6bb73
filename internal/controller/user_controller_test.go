package controller_test

import (
	"testing"

	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupCompletesOnce(t *testing.T) {
	store := repotest.NewStore()
	store.SeedUser(&entity.User{Id: "u1", FirstName: "Meera"})
	store.SeedMemory("u1", "Plays sitar")
	h := newHarness(t, store, nil)
	token := h.login(t, "u1")

	for i := 0; i < 2; i++ {
		resp := h.do(t, call{method: "POST", path: "/api/user/setup", token: token})
		require.Equal(t, 200, resp.StatusCode)
		assert.True(t, decode[dto.SuccessResponse](t, resp).Success)
	}

	resp := h.do(t, call{method: "GET", path: "/api/auth/profile", token: token})
	require.Equal(t, 200, resp.StatusCode)
	profile := decode[dto.ProfileResponse](t, resp)
	assert.True(t, profile.User.SetupCompleted)
	assert.Equal(t, "Meera", profile.User.FirstName)
	assert.EqualValues(t, 1, profile.MemoriesCount)
}

func TestSessionForDeletedUserIsAnonymous(t *testing.T) {
	store := repotest.NewStore()
	store.SeedUser(&entity.User{Id: "u1"})
	h := newHarness(t, store, nil)
	token := h.login(t, "u1")

	store.DeleteUser("u1")

	resp := h.do(t, call{method: "GET", path: "/api/auth/user", token: token})
	assert.Equal(t, 401, resp.StatusCode)
}
