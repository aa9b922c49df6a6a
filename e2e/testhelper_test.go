package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/draftpost/api/internal/client"
	"github.com/draftpost/api/internal/config"
	"github.com/draftpost/api/internal/server"
	"github.com/draftpost/api/internal/service"
)

// testApp holds all components needed for testing
type testApp struct {
	app *fiber.App
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:      "0",
			Env:       "test",
			LogLevel:  "info",
			BodyLimit: 64 * 1024,
		},
		CORS: config.CORSConfig{AllowOrigins: "*"},
	}
}

// setupApp creates the app with an unconfigured completion client, so every
// request is answered by the template generator.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	openaiClient := client.NewOpenAIClient(&config.OpenAIConfig{}) // no API key → fallback
	postService := service.NewPostService(openaiClient, time.Second)

	return &testApp{app: server.NewApp(testConfig(), postService, validator.New())}
}

// setupProviderApp creates the app against a fake OpenAI-compatible provider.
func setupProviderApp(t *testing.T, handler http.HandlerFunc) *testApp {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	openaiClient := client.NewOpenAIClient(&config.OpenAIConfig{
		APIKey:      "sk-test",
		BaseURL:     srv.URL + "/v1",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		Timeout:     5,
	})
	postService := service.NewPostService(openaiClient, 5*time.Second)

	return &testApp{app: server.NewApp(testConfig(), postService, validator.New())}
}

// completionJSON renders a chat completion response with one choice per content.
func completionJSON(contents ...string) string {
	choices := make([]string, 0, len(contents))
	for i, c := range contents {
		content, _ := json.Marshal(c)
		choices = append(choices, fmt.Sprintf(
			`{"index":%d,"finish_reason":"stop","logprobs":null,"message":{"role":"assistant","content":%s,"refusal":null}}`,
			i, content))
	}
	return `{"id":"chatcmpl-e2e","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[` +
		strings.Join(choices, ",") + `]}`
}

// doRequest is a helper to perform HTTP requests against the test app.
func doRequest(app *fiber.App, method, path string, body string, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	if err != nil {
		return nil, err
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.Test(req, -1)
}

// readBody reads and returns the response body as a string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(b)
}

// parseJSON parses response body into a map.
func parseJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body := readBody(t, resp)
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, body)
	}
	return result
}

// variantsOf extracts the variants array as strings.
func variantsOf(t *testing.T, result map[string]interface{}) []string {
	t.Helper()
	raw, ok := result["variants"].([]interface{})
	if !ok {
		t.Fatalf("expected 'variants' to be an array, got %T", result["variants"])
	}
	out := make([]string, 0, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			t.Fatalf("variants[%d] is not a string", i)
		}
		out = append(out, s)
	}
	return out
}

// assertStatus checks the HTTP status code.
func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

// assertErrorCode checks the error envelope code.
func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatal("expected error object in response")
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %s, got %v", code, errObj["code"])
	}
}
