package http_test

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gloor0717/a4c-backlog/internal/application/dto"
)

func strPtr(s string) *string { return &s }

func createIdea(t *testing.T, env *testEnv, story string) dto.IdeaResponse {
	t.Helper()
	resp := env.do(t, http.MethodPost, "/ideas", dto.CreateIdeaRequest{Story: story}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.IdeaResponse](t, resp)
}

func ideaPath(id int64, suffix string) string {
	return fmt.Sprintf("/ideas/%d%s", id, suffix)
}

func TestCreateYList_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	first := createIdea(t, env, "Como dev quiero CI")
	second := createIdea(t, env, "Como PO quiero exportar el backlog")

	assert.Equal(t, "US-001", first.USNumber)
	assert.Equal(t, "US-002", second.USNumber)
	assert.Equal(t, "to-validate", second.State)
	assert.Zero(t, second.Votes)
	assert.Nil(t, second.Priority)
	assert.Nil(t, second.Epic)

	resp := env.do(t, http.MethodGet, "/ideas", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.IdeaResponse](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0], "la más reciente primero y con los mismos valores")
	assert.Equal(t, first, list[1])
}

// story vuelve exactamente como se envió, espacios y saltos de línea incluidos.
func TestCreate_StoryConEspaciosSeConserva(t *testing.T) {
	env := newTestEnv(t)
	sent := "  As a user\nI want CI  \n"
	created := createIdea(t, env, sent)
	assert.Equal(t, sent, created.Story)

	list := decode[[]dto.IdeaResponse](t, env.do(t, http.MethodGet, "/ideas", nil, ""))
	require.Len(t, list, 1)
	assert.Equal(t, sent, list[0].Story)

	resp := env.do(t, http.MethodPut, ideaPath(created.ID, ""), dto.UpdateIdeaRequest{Story: strPtr(" editada ")}, tokenForRole(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, " editada ", decode[dto.IdeaResponse](t, resp).Story)
}

func TestList_VacioDevuelveArray(t *testing.T) {
	resp := newTestEnv(t).do(t, http.MethodGet, "/ideas", nil, "")
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestList_FiltroPorTexto(t *testing.T) {
	env := newTestEnv(t)
	createIdea(t, env, "Exportar backlog en PDF")
	createIdea(t, env, "Login con SSO")

	list := decode[[]dto.IdeaResponse](t, env.do(t, http.MethodGet, "/ideas?q=pdf", nil, ""))
	require.Len(t, list, 1)
	assert.Equal(t, "Exportar backlog en PDF", list[0].Story)
}

func TestCreate_StoryVacia(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPost, "/ideas", dto.CreateIdeaRequest{Story: "  "}, "")
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestGetByID(t *testing.T) {
	env := newTestEnv(t)
	created := createIdea(t, env, "una")

	got := decode[dto.IdeaResponse](t, env.do(t, http.MethodGet, ideaPath(created.ID, ""), nil, ""))
	assert.Equal(t, created, got)

	resp := env.do(t, http.MethodGet, ideaPath(999, ""), nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/ideas/abc", nil, "")
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", body.Code)
}

func TestFullUpdate_AdminParcial(t *testing.T) {
	env := newTestEnv(t)
	created := createIdea(t, env, "original")
	admin := tokenForRole(t, "admin")

	resp := env.do(t, http.MethodPut, ideaPath(created.ID, ""), dto.UpdateIdeaRequest{Priority: strPtr("High")}, admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.IdeaResponse](t, resp)
	require.NotNil(t, updated.Priority)
	assert.Equal(t, "High", *updated.Priority)
	assert.Equal(t, "original", updated.Story, "los demás campos no cambian")
	assert.Equal(t, created.USNumber, updated.USNumber)

	resp = env.do(t, http.MethodPut, ideaPath(created.ID, ""), map[string]string{"epic": "Auth", "state": "done", "moscow": "Won't-have"}, admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated = decode[dto.IdeaResponse](t, resp)
	assert.Equal(t, "done", updated.State)
	assert.Equal(t, "Auth", *updated.Epic)
	assert.Equal(t, "Won't-have", *updated.MoSCoW)
	assert.Equal(t, "High", *updated.Priority)
}

func TestFullUpdate_Errores(t *testing.T) {
	env := newTestEnv(t)
	created := createIdea(t, env, "x")
	admin := tokenForRole(t, "admin")

	cases := []struct {
		name   string
		path   string
		body   any
		auth   string
		status int
		code   string
	}{
		{"patch vacío", ideaPath(created.ID, ""), map[string]string{}, admin, http.StatusBadRequest, "EMPTY_PATCH"},
		{"valor inválido", ideaPath(created.ID, ""), map[string]string{"state": "archived"}, admin, http.StatusBadRequest, "VALIDATION"},
		{"developer", ideaPath(created.ID, ""), map[string]string{"epic": "x"}, tokenForRole(t, "developer"), http.StatusForbidden, "FORBIDDEN"},
		{"po", ideaPath(created.ID, ""), map[string]string{"epic": "x"}, tokenForRole(t, "po"), http.StatusForbidden, "FORBIDDEN"},
		{"sin token", ideaPath(created.ID, ""), map[string]string{"epic": "x"}, "", http.StatusUnauthorized, "MISSING_TOKEN"},
		{"inexistente", ideaPath(999, ""), map[string]string{"epic": "x"}, admin, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := env.do(t, http.MethodPut, tc.path, tc.body, tc.auth)
			body := decode[dto.ErrorResponse](t, resp)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestUpdatePriority(t *testing.T) {
	env := newTestEnv(t)
	created := createIdea(t, env, "priorizable")

	resp := env.do(t, http.MethodPut, ideaPath(created.ID, "/priority"), dto.UpdatePriorityRequest{Priority: strPtr("Low")}, tokenForRole(t, "po"))
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	list := decode[[]dto.IdeaResponse](t, env.do(t, http.MethodGet, "/ideas", nil, ""))
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Priority)
	assert.Equal(t, "Low", *list[0].Priority)

	resp = env.do(t, http.MethodPut, ideaPath(created.ID, "/priority"), dto.UpdatePriorityRequest{Priority: strPtr("Low")}, tokenForRole(t, "developer"))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodPut, ideaPath(created.ID, "/priority"), dto.UpdatePriorityRequest{Priority: strPtr("Urgent")}, tokenForRole(t, "admin"))
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPut, ideaPath(999, "/priority"), dto.UpdatePriorityRequest{Priority: strPtr("High")}, tokenForRole(t, "admin"))
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVote_UnaVezPorIdentidad(t *testing.T) {
	env := newTestEnv(t)
	created := createIdea(t, env, "votable")
	alice := tokenFor(t, "alice-id", "developer")
	bob := tokenFor(t, "bob-id", "po")

	resp := env.do(t, http.MethodPost, ideaPath(created.ID, "/vote"), nil, alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.IdeaResponse](t, resp).Votes)

	resp = env.do(t, http.MethodPost, ideaPath(created.ID, "/vote"), nil, alice)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ALREADY_VOTED", body.Code)

	resp = env.do(t, http.MethodPost, ideaPath(created.ID, "/vote"), nil, bob)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[dto.IdeaResponse](t, resp).Votes)
}

func TestVote_SinIdentidad(t *testing.T) {
	env := newTestEnv(t)
	created := createIdea(t, env, "votable")

	resp := env.do(t, http.MethodPost, ideaPath(created.ID, "/vote"), nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestVote_IdeaInexistente(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPost, ideaPath(42, "/vote"), nil, tokenForRole(t, "developer"))
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Votos simultáneos de la misma identidad: exactamente un 200, el resto 409.
func TestVote_ConcurrenteMismaIdentidad(t *testing.T) {
	env := newTestEnv(t)
	created := createIdea(t, env, "carrera")
	tok := tokenFor(t, "racer", "developer")

	const n = 10
	statuses := make([]int, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := env.send(http.MethodPost, ideaPath(created.ID, "/vote"), nil, tok)
			if err != nil {
				errs[i] = err
				return
			}
			resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	ok, conflict := 0, 0
	for _, s := range statuses {
		switch s {
		case http.StatusOK:
			ok++
		case http.StatusConflict:
			conflict++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflict)

	got := decode[dto.IdeaResponse](t, env.do(t, http.MethodGet, ideaPath(created.ID, ""), nil, ""))
	assert.Equal(t, 1, got.Votes)
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	created := createIdea(t, env, "borrable")

	resp := env.do(t, http.MethodDelete, ideaPath(created.ID, ""), nil, tokenForRole(t, "po"))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, ideaPath(created.ID, ""), nil, tokenForRole(t, "admin"))
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, ideaPath(created.ID, ""), nil, tokenForRole(t, "admin"))
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	list := decode[[]dto.IdeaResponse](t, env.do(t, http.MethodGet, "/ideas", nil, ""))
	assert.Empty(t, list)
}

func TestExportPDF(t *testing.T) {
	env := newTestEnv(t)
	createIdea(t, env, "exportable")

	resp := env.do(t, http.MethodGet, "/ideas/export.pdf", nil, tokenForRole(t, "po"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "backlog-")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, len(raw) > 4 && string(raw[:4]) == "%PDF")

	resp2 := env.do(t, http.MethodGet, "/ideas/export.pdf", nil, tokenForRole(t, "developer"))
	resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
}
