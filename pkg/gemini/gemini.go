package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

// Unknown is the sentinel returned by CompleteOrUnknown when the completion
// call fails for any reason. Free-text consumers treat it as "no match".
const Unknown = "unknown"

type IGemini interface {
	Complete(ctx context.Context, template string, params map[string]interface{}) (string, error)
	CompleteOrUnknown(ctx context.Context, template string, params map[string]interface{}) string
}

type geminiClient struct {
	apiKey    string
	modelName string
	client    *genai.Client
	limiter   *rate.Limiter
}

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		client:    client,
		limiter:   rate.NewLimiter(rate.Limit(2), 5),
	}, nil
}

// Complete renders the {name}-style template with params and issues a single
// completion call. No retries here; retrying is the caller's concern.
func (g *geminiClient) Complete(ctx context.Context, template string, params map[string]interface{}) (string, error) {
	prompt := RenderTemplate(template, params)

	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	model := g.client.GenerativeModel(g.modelName)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return CleanCompletion(string(text)), nil
}

func (g *geminiClient) CompleteOrUnknown(ctx context.Context, template string, params map[string]interface{}) string {
	text, err := g.Complete(ctx, template, params)
	if err != nil {
		return Unknown
	}
	return text
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// RenderTemplate substitutes {name} placeholders. String slices are joined
// with ", "; everything else is stringified with fmt.
func RenderTemplate(template string, params map[string]interface{}) string {
	rendered := template
	for name, value := range params {
		var repl string
		switch v := value.(type) {
		case string:
			repl = v
		case []string:
			repl = strings.Join(v, ", ")
		default:
			repl = fmt.Sprint(v)
		}
		rendered = strings.ReplaceAll(rendered, "{"+name+"}", repl)
	}
	return rendered
}

// CleanCompletion trims the completion and strips wrapping code fences so
// JSON consumers can parse the payload directly.
func CleanCompletion(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
