package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serverhttp "github.com/aretw0/strategos/pkg/adapters/http"
	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/observability"
)

const domainYAML = `
name: corridor
types:
  - name: robot
  - name: cell
predicates:
  - name: at
    args: [robot, cell]
  - name: adjacent
    args: [cell, cell]
actions:
  - name: move
    parameters:
      - {name: r, type: robot}
      - {name: from, type: cell}
      - {name: to, type: cell}
    precondition:
      and:
        - atom: {pred: at, args: ["?r", "?from"]}
        - atom: {pred: adjacent, args: ["?from", "?to"]}
    effect:
      add:
        - {pred: at, args: ["?r", "?to"]}
      del:
        - {pred: at, args: ["?r", "?from"]}
`

const problemYAML = `
name: walk
domain: corridor
objects:
  - {name: r1, type: robot}
  - {name: c1, type: cell}
  - {name: c2, type: cell}
  - {name: c3, type: cell}
init:
  - {pred: at, args: [r1, c1]}
  - {pred: adjacent, args: [c1, c2]}
  - {pred: adjacent, args: [c2, c3]}
goal:
  atom: {pred: at, args: [r1, c3]}
`

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func TestSolveEndpoint(t *testing.T) {
	srv := httptest.NewServer(serverhttp.NewHandler())
	defer srv.Close()

	resp := postJSON(t, srv, "/solve", serverhttp.SolveRequest{
		Domain:  domainYAML,
		Problem: problemYAML,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out serverhttp.SolveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, domain.OutcomeSolved, out.Outcome)
	require.Len(t, out.Plan, 2)
	assert.Equal(t, "move", out.Plan[0].Action)
	assert.Equal(t, []string{"r1", "c1", "c2"}, out.Plan[0].Args)
	assert.Positive(t, out.NodesExpanded)
}

func TestSolveEndpointAStar(t *testing.T) {
	srv := httptest.NewServer(serverhttp.NewHandler())
	defer srv.Close()

	resp := postJSON(t, srv, "/solve", serverhttp.SolveRequest{
		Domain:   domainYAML,
		Problem:  problemYAML,
		Strategy: "astar",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out serverhttp.SolveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, domain.OutcomeSolved, out.Outcome)
	assert.Len(t, out.Plan, 2)
}

func TestSolveEndpointBadInput(t *testing.T) {
	srv := httptest.NewServer(serverhttp.NewHandler())
	defer srv.Close()

	t.Run("malformed json", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/solve", "application/json", bytes.NewReader([]byte("{")))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed domain yaml", func(t *testing.T) {
		resp := postJSON(t, srv, "/solve", serverhttp.SolveRequest{Domain: ":::", Problem: problemYAML})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		resp := postJSON(t, srv, "/solve", serverhttp.SolveRequest{
			Domain: domainYAML, Problem: problemYAML, Strategy: "dfs",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("undeclared predicate in init", func(t *testing.T) {
		badProblem := `
name: broken
domain: corridor
objects:
  - {name: r1, type: robot}
  - {name: c1, type: cell}
init:
  - {pred: flying, args: [r1]}
goal:
  atom: {pred: at, args: [r1, c1]}
`
		resp := postJSON(t, srv, "/solve", serverhttp.SolveRequest{
			Domain: domainYAML, Problem: badProblem,
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestValidateEndpoint(t *testing.T) {
	srv := httptest.NewServer(serverhttp.NewHandler())
	defer srv.Close()

	good := []domain.Step{
		{Action: "move", Args: []string{"r1", "c1", "c2"}},
		{Action: "move", Args: []string{"r1", "c2", "c3"}},
	}
	resp := postJSON(t, srv, "/validate", serverhttp.ValidateRequest{
		Domain: domainYAML, Problem: problemYAML, Plan: good,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out serverhttp.ValidateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Valid)

	bad := []domain.Step{{Action: "move", Args: []string{"r1", "c2", "c3"}}}
	resp2 := postJSON(t, srv, "/validate", serverhttp.ValidateRequest{
		Domain: domainYAML, Problem: problemYAML, Plan: bad,
	})
	defer resp2.Body.Close()
	var out2 serverhttp.ValidateResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&out2))
	assert.False(t, out2.Valid)
	assert.Contains(t, out2.Reason, "precondition")
}

func TestHealthAndInfo(t *testing.T) {
	srv := httptest.NewServer(serverhttp.NewHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/info")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var info map[string]string
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&info))
	assert.Equal(t, "strategos-http", info["app"])
	assert.NotEmpty(t, info["version"])
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	srv := httptest.NewServer(serverhttp.NewHandler(
		serverhttp.WithMetrics(reg, metrics.Hooks()),
	))
	defer srv.Close()

	resp := postJSON(t, srv, "/solve", serverhttp.SolveRequest{
		Domain:  domainYAML,
		Problem: problemYAML,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	mresp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer mresp.Body.Close()
	require.Equal(t, http.StatusOK, mresp.StatusCode)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(mresp.Body)
	require.NoError(t, err)
	body := buf.String()
	assert.Contains(t, body, "strategos_nodes_expanded_total")
	assert.Contains(t, body, `strategos_solve_outcomes_total{outcome="solved"} 1`)
}
