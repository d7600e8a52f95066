package confirm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/storenav/confirm"
)

var png = []byte("\x89PNG\r\n\x1a\n0000")

// fakeUpstream answers every chat-completions call with status and content.
func fakeUpstream(t *testing.T, status int, content string, seen func(r *http.Request, body map[string]any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if seen != nil {
			seen(r, body)
		}
		w.WriteHeader(status)
		if status/100 == 2 {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []any{map[string]any{"message": map[string]any{"content": content}}},
			})
			return
		}
		_, _ = w.Write([]byte("upstream says no"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newVision(t *testing.T, url string) *confirm.Vision {
	t.Helper()
	v, err := confirm.NewVision(confirm.VisionOptions{BaseURL: url, APIKey: "k"})
	require.NoError(t, err)
	return v
}

func TestVision_Found(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, `{"found": true, "guidance": " Top shelf "}`,
		func(r *http.Request, body map[string]any) {
			require.Equal(t, "/chat/completions", r.URL.Path)
			require.Equal(t, "Bearer k", r.Header.Get("Authorization"))
			require.Equal(t, "gpt-4.1-mini", body["model"])

			msgs := body["messages"].([]any)
			require.Len(t, msgs, 2)
			parts := msgs[1].(map[string]any)["content"].([]any)
			text := parts[0].(map[string]any)["text"].(string)
			require.Contains(t, text, `"Oat Milk"`)
			url := parts[1].(map[string]any)["image_url"].(map[string]any)["url"].(string)
			require.True(t, strings.HasPrefix(url, "data:image/png;base64,"), url)
		})

	got, err := newVision(t, srv.URL).Confirm(context.Background(), png, "Oat Milk")
	require.NoError(t, err)
	require.Equal(t, confirm.Verdict{Found: true, Guidance: "Top shelf"}, got)
}

func TestVision_FencedAnswer(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, "```json\n{\"found\": false, \"guidance\": \"Pan left\"}\n```", nil)

	got, err := newVision(t, srv.URL).Confirm(context.Background(), png, "Tea")
	require.NoError(t, err)
	require.False(t, got.Found)
	require.Equal(t, "Pan left", got.Guidance)
}

func TestVision_ErrorClassification(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		content string
		want    error
	}{
		{"rate limited", http.StatusTooManyRequests, "", confirm.ErrRateLimited},
		{"server error", http.StatusBadGateway, "", confirm.ErrUnavailable},
		{"timeout", http.StatusRequestTimeout, "", confirm.ErrUnavailable},
		{"bad request", http.StatusBadRequest, "", confirm.ErrInvalidInput},
		{"not json", http.StatusOK, "yes it is there", confirm.ErrResponseInvalid},
		{"missing found", http.StatusOK, `{"guidance": "?"}`, confirm.ErrResponseInvalid},
		{"empty content", http.StatusOK, "", confirm.ErrResponseInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := fakeUpstream(t, tc.status, tc.content, nil)
			_, err := newVision(t, srv.URL).Confirm(context.Background(), png, "Tea")
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVision_InvalidInput(t *testing.T) {
	t.Setenv("STORENAV_TEST_NO_KEY", "")
	_, err := confirm.NewVision(confirm.VisionOptions{APIKeyEnv: "STORENAV_TEST_NO_KEY"})
	require.ErrorIs(t, err, confirm.ErrInvalidInput)

	t.Setenv("STORENAV_TEST_KEY", "from-env")
	v, err := confirm.NewVision(confirm.VisionOptions{APIKeyEnv: "STORENAV_TEST_KEY", BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)

	_, err = v.Confirm(context.Background(), nil, "Tea")
	require.ErrorIs(t, err, confirm.ErrInvalidInput)
	_, err = v.Confirm(context.Background(), png, "  ")
	require.ErrorIs(t, err, confirm.ErrInvalidInput)
}

func TestVision_FullEndpointURL(t *testing.T) {
	var path string
	srv := fakeUpstream(t, http.StatusOK, `{"found": true, "guidance": ""}`,
		func(r *http.Request, _ map[string]any) { path = r.URL.Path })

	v, err := confirm.NewVision(confirm.VisionOptions{
		APIKey:       "k",
		EndpointPath: srv.URL + "/openai/deployments/x/chat",
		ExtraHeaders: map[string]string{"api-key": "k"},
	})
	require.NoError(t, err)
	_, err = v.Confirm(context.Background(), png, "Tea")
	require.NoError(t, err)
	require.Equal(t, "/openai/deployments/x/chat", path)
}

func TestVision_Cancelled(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, `{"found": true}`, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newVision(t, srv.URL).Confirm(ctx, png, "Tea")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStaticAndFunc(t *testing.T) {
	s := confirm.Static{Verdict: confirm.Verdict{Found: true}}
	got, err := s.Confirm(context.Background(), nil, "x")
	require.NoError(t, err)
	require.True(t, got.Found)

	_, err = confirm.Unavailable.Confirm(context.Background(), png, "x")
	require.ErrorIs(t, err, confirm.ErrUnavailable)

	boom := errors.New("boom")
	f := confirm.Func(func(_ context.Context, img []byte, item string) (confirm.Verdict, error) {
		require.Equal(t, "Tea", item)
		return confirm.Verdict{}, boom
	})
	_, err = f.Confirm(context.Background(), png, "Tea")
	require.ErrorIs(t, err, boom)
}
