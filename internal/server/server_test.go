// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leftstim/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:  "test",
		ReadTimeout:  5,
		WriteTimeout: 5,
		CanvasSize:   500,
		FrameSize:    300,
		ExtraLines:   5,
	}
}

func do(t *testing.T, target string) (*http.Response, string) {
	t.Helper()
	app := New(testConfig())
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestFigures(t *testing.T) {
	resp, body := do(t, "/figures")
	require.Equal(t, 200, resp.StatusCode)

	var got struct {
		Figures []string `json:"figures"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Len(t, got.Figures, 16)
}

func TestStimulus_Variants(t *testing.T) {
	for _, v := range []string{"onlyfigure", "embeddedfigure", "nofigure"} {
		t.Run(v, func(t *testing.T) {
			resp, body := do(t, "/stimulus/A2?seed=7&variant="+v)
			require.Equal(t, 200, resp.StatusCode, body)
			require.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
			require.Equal(t, "7", resp.Header.Get("X-Stimulus-Seed"))
			_, err := uuid.Parse(resp.Header.Get("X-Stimulus-Id"))
			require.NoError(t, err)
			require.Contains(t, body, "<svg")
			require.True(t, strings.HasSuffix(strings.TrimSpace(body), "</svg>"))
		})
	}
}

func TestStimulus_Deterministic(t *testing.T) {
	_, a := do(t, "/stimulus/random?seed=99&lines=3")
	_, b := do(t, "/stimulus/random?seed=99&lines=3")
	require.Equal(t, a, b)
}

func TestStimulus_BadRequests(t *testing.T) {
	cases := []struct {
		target string
		status int
	}{
		{"/stimulus/A2?variant=upside", 400},
		{"/stimulus/A2?seed=abc", 400},
		{"/stimulus/A2?lines=-1", 400},
		{"/stimulus/A1?variant=nofigure&lines=0", 400},
		{"/stimulus/Z9", 404},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			resp, body := do(t, tc.target)
			require.Equal(t, tc.status, resp.StatusCode, body)
			require.Contains(t, body, "error")
		})
	}
}
