package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJsonOK(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "All good", fiber.Map{"answer": 42})
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["error"])
	assert.Equal(t, "All good", body["message"])
	assert.Equal(t, float64(42), body["data"].(map[string]any)["answer"])
}

func TestJsonOKOmitsEmptyMessage(t *testing.T) {
	_, body := perform(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "", fiber.Map{"x": 1})
	})
	_, hasMessage := body["message"]
	assert.False(t, hasMessage)
}

func TestJsonError(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusConflict, "Already exists")
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "Already exists", body["message"])
}

func TestJsonListWithPaginationAndNote(t *testing.T) {
	_, body := perform(t, func(c *fiber.Ctx) error {
		return JsonList(c, "courses", []string{"a", "b"}, BuildPagination(12, 2, 5), "degraded")
	})

	data := body["data"].(map[string]any)
	assert.Len(t, data["courses"], 2)
	assert.Equal(t, "degraded", data["note"])

	pagination := data["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(12), pagination["total"])
	assert.Equal(t, float64(3), pagination["total_pages"])
	assert.Equal(t, true, pagination["has_next"])
	assert.Equal(t, true, pagination["has_prev"])
}

func TestJsonListWithoutPagination(t *testing.T) {
	_, body := perform(t, func(c *fiber.Ctx) error {
		return JsonList(c, "items", []int{}, nil, "")
	})
	data := body["data"].(map[string]any)
	_, hasPagination := data["pagination"]
	assert.False(t, hasPagination)
	_, hasNote := data["note"]
	assert.False(t, hasNote)
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages, "empty sets still report one page")
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = BuildPagination(41, 3, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}
