package controller_test

import (
	"errors"
	"testing"

	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoriesRequireAuthentication(t *testing.T) {
	h := newHarness(t, repotest.NewForbidden(t), nil)

	for _, c := range []call{
		{method: "GET", path: "/api/memories"},
		{method: "GET", path: "/api/memories", guest: true},
		{method: "GET", path: "/api/memories", token: "not-a-token"},
		{method: "POST", path: "/api/memories", body: `{"content":"x"}`},
	} {
		resp := h.do(t, c)
		assert.Equal(t, 401, resp.StatusCode, "%s %s", c.method, c.path)
		assert.Equal(t, "Unauthorized", errorMessage(t, resp))
	}
}

func TestMemoryLifecycle(t *testing.T) {
	store := repotest.NewStore()
	store.SeedUser(&entity.User{Id: "u1"})
	h := newHarness(t, store, nil)
	token := h.login(t, "u1")

	resp := h.do(t, call{method: "POST", path: "/api/memories", token: token,
		body: `{"content":"Allergic to peanuts","category":"health","isPinned":true}`})
	require.Equal(t, 200, resp.StatusCode)
	created := decode[dto.MemoryResponse](t, resp)
	assert.Equal(t, "u1", created.UserId)
	assert.Equal(t, "health", created.Category)
	assert.True(t, created.IsPinned)

	resp = h.do(t, call{method: "PATCH", path: "/api/memories/" + created.Id.String(), token: token,
		body: `{"content":"Allergic to peanuts and cashews"}`})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Allergic to peanuts and cashews", decode[dto.MemoryResponse](t, resp).Content)

	resp = h.do(t, call{method: "GET", path: "/api/memories?category=health", token: token})
	require.Equal(t, 200, resp.StatusCode)
	list := decode[[]dto.MemoryResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, created.Id, list[0].Id)

	resp = h.do(t, call{method: "DELETE", path: "/api/memories/" + created.Id.String(), token: token})
	require.Equal(t, 200, resp.StatusCode)
	assert.True(t, decode[dto.SuccessResponse](t, resp).Success)

	_, ok := store.Memory(created.Id)
	assert.False(t, ok)
}

func TestForeignMemoryIsNotFound(t *testing.T) {
	store := repotest.NewStore()
	store.SeedUser(&entity.User{Id: "u1"})
	store.SeedUser(&entity.User{Id: "u2"})
	theirs := store.SeedMemory("u2", "Lives in Pune")
	h := newHarness(t, store, nil)
	token := h.login(t, "u1")

	resp := h.do(t, call{method: "DELETE", path: "/api/memories/" + theirs.Id.String(), token: token})
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Memory not found", errorMessage(t, resp))

	resp = h.do(t, call{method: "PATCH", path: "/api/memories/" + theirs.Id.String(), token: token, body: `{"content":"hijacked"}`})
	assert.Equal(t, 404, resp.StatusCode)

	got, ok := store.Memory(theirs.Id)
	require.True(t, ok)
	assert.Equal(t, "Lives in Pune", got.Content)

	resp = h.do(t, call{method: "DELETE", path: "/api/memories/not-a-uuid", token: token})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCreateMemoryValidation(t *testing.T) {
	store := repotest.NewStore()
	store.SeedUser(&entity.User{Id: "u1"})
	h := newHarness(t, store, nil)
	token := h.login(t, "u1")

	resp := h.do(t, call{method: "POST", path: "/api/memories", token: token, body: `{"content":""}`})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, errorMessage(t, resp), "content")

	resp = h.do(t, call{method: "POST", path: "/api/memories", token: token, body: `{"content":"x","category":"secret"}`})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestMemoriesStorageFailure(t *testing.T) {
	store := repotest.NewStore()
	store.SeedUser(&entity.User{Id: "u1"})
	h := newHarness(t, store, nil)
	token := h.login(t, "u1")

	store.Err = errors.New("connection refused")

	// Identity resolution cannot confirm the user, so the caller is anonymous.
	resp := h.do(t, call{method: "GET", path: "/api/memories", token: token})
	assert.Equal(t, 401, resp.StatusCode)
}
