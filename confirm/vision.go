package confirm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// VisionOptions configures an OpenAI-compatible vision client.
type VisionOptions struct {
	BaseURL        string            `yaml:"base_url" json:"base_url"`                     // e.g. https://api.openai.com/v1
	Model          string            `yaml:"model" json:"model"`                           // empty = default
	APIKeyEnv      string            `yaml:"api_key_env" json:"api_key_env"`               // read first
	APIKey         string            `yaml:"-" json:"-"`                                   // never persisted; tests only
	TimeoutSeconds int               `yaml:"timeout_seconds" json:"timeout_seconds"`       // client timeout
	EndpointPath   string            `yaml:"endpoint_path" json:"endpoint_path"`           // may be a full URL
	ExtraHeaders   map[string]string `yaml:"extra_headers,omitempty" json:"extra_headers"` // override or add
}

func (o *VisionOptions) defaults() {
	if o.BaseURL == "" {
		o.BaseURL = "https://api.openai.com/v1"
	}
	if o.Model == "" {
		o.Model = "gpt-4.1-mini"
	}
	if o.APIKeyEnv == "" {
		o.APIKeyEnv = "OPENAI_API_KEY"
	}
	if o.EndpointPath == "" {
		o.EndpointPath = "/chat/completions"
	}
	if o.TimeoutSeconds <= 0 {
		o.TimeoutSeconds = 30
	}
}

// Vision asks a vision-language model whether an item is on the shelf.
type Vision struct {
	hc     *http.Client
	url    string
	apiKey string
	model  string
	extraH map[string]string
}

// NewVision builds a client. It fails with ErrInvalidInput when no API key
// is available.
func NewVision(opts VisionOptions) (*Vision, error) {
	opts.defaults()
	key := opts.APIKey
	if key == "" {
		key = os.Getenv(opts.APIKeyEnv)
	}
	if key == "" {
		return nil, fmt.Errorf("%w: missing api key (%s)", ErrInvalidInput, opts.APIKeyEnv)
	}

	fullURL := opts.EndpointPath
	if !(strings.HasPrefix(fullURL, "http://") || strings.HasPrefix(fullURL, "https://")) {
		fullURL = strings.TrimRight(opts.BaseURL, "/") + "/" + strings.TrimLeft(opts.EndpointPath, "/")
	}

	return &Vision{
		hc:     &http.Client{Timeout: time.Duration(opts.TimeoutSeconds) * time.Second},
		url:    fullURL,
		apiKey: key,
		model:  opts.Model,
		extraH: opts.ExtraHeaders,
	}, nil
}

const systemPrompt = `You check photos of supermarket shelves. ` +
	`Answer only with JSON {"found": boolean, "guidance": string}. ` +
	`If the item is not visible, guidance tells the shopper where to point the camera.`

type oaPart struct {
	Type     string      `json:"type"`
	Text     string      `json:"text,omitempty"`
	ImageURL *oaImageURL `json:"image_url,omitempty"`
}

type oaImageURL struct {
	URL string `json:"url"`
}

type oaMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type oaResponseFormat struct {
	Type string `json:"type"`
}

type oaReq struct {
	Model          string            `json:"model"`
	Messages       []oaMessage       `json:"messages"`
	ResponseFormat *oaResponseFormat `json:"response_format,omitempty"`
}

type oaResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Confirm sends image and the item name and decodes the model's verdict.
func (v *Vision) Confirm(ctx context.Context, image []byte, item string) (Verdict, error) {
	if len(image) == 0 {
		return Verdict{}, fmt.Errorf("%w: empty image", ErrInvalidInput)
	}
	if strings.TrimSpace(item) == "" {
		return Verdict{}, fmt.Errorf("%w: empty item name", ErrInvalidInput)
	}

	dataURL := "data:" + http.DetectContentType(image) + ";base64," + base64.StdEncoding.EncodeToString(image)
	body, err := json.Marshal(&oaReq{
		Model: v.model,
		Messages: []oaMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []oaPart{
				{Type: "text", Text: fmt.Sprintf("Is %q visible on this shelf?", item)},
				{Type: "image_url", ImageURL: &oaImageURL{URL: dataURL}},
			}},
		},
		ResponseFormat: &oaResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("encode: %v: %w", err, ErrInvalidInput)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, bytes.NewReader(body))
	if err != nil {
		return Verdict{}, fmt.Errorf("new request: %v: %w", err, ErrInvalidInput)
	}
	req.Header.Set("Authorization", "Bearer "+v.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, val := range v.extraH {
		if k != "" {
			req.Header.Set(k, val)
		}
	}

	resp, err := v.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Verdict{}, ctx.Err()
		}
		return Verdict{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return Verdict{}, ErrRateLimited
	case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode/100 == 5:
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return Verdict{}, fmt.Errorf("%w: upstream %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(slurp)))
	case resp.StatusCode/100 != 2:
		return Verdict{}, fmt.Errorf("upstream %d: %w", resp.StatusCode, ErrInvalidInput)
	}

	var or oaResp
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return Verdict{}, fmt.Errorf("decode: %w", ErrResponseInvalid)
	}
	if len(or.Choices) == 0 || or.Choices[0].Message.Content == "" {
		return Verdict{}, ErrResponseInvalid
	}

	return parseVerdict(or.Choices[0].Message.Content)
}

// parseVerdict decodes the model's JSON answer, tolerating a fenced block.
func parseVerdict(content string) (Verdict, error) {
	s := strings.TrimSpace(content)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	var out struct {
		Found    *bool  `json:"found"`
		Guidance string `json:"guidance"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &out); err != nil || out.Found == nil {
		return Verdict{}, fmt.Errorf("%w: %q", ErrResponseInvalid, content)
	}

	return Verdict{Found: *out.Found, Guidance: strings.TrimSpace(out.Guidance)}, nil
}
