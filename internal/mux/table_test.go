package mux

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPostTable(t *testing.T) {
	ts := testServer(t)

	var resp tableResponse
	assertPost(t, ts, "/table", &resp, http.StatusCreated)

	parsed, err := uuid.Parse(resp.UUID)
	assert.NoError(t, err)
	assert.Equal(t, resp.UUID, parsed.String())
}

func TestGetTableUUID(t *testing.T) {
	a := assert.New(t)
	ts := testServer(t)

	var created tableResponse
	assertPost(t, ts, "/table", &created, http.StatusCreated)

	var state map[string]interface{}
	assertGet(t, ts, "/table/"+created.UUID, &state, http.StatusOK)
	a.Equal(float64(0), state["pot"])
	a.Equal([]interface{}{}, state["players"])

	var errResp errorResponse
	assertGet(t, ts, "/table/"+uuid.New().String(), &errResp, http.StatusNotFound)
	assert.Equal(t, "table not found", errResp.Message)
}
