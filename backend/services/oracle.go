package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"skillcompass/backend/config"
)

// GeneratedResource and GeneratedSkill mirror the JSON document the
// generation model is instructed to return.
type GeneratedResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

type GeneratedSkill struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Level       string              `json:"level"`
	Resources   []GeneratedResource `json:"resources"`
}

// Oracle produces the skill list for a roadmap. The production
// implementation calls an external generative model; tests substitute a
// deterministic fake.
type Oracle interface {
	GenerateSkills(role, goal, currentLevel string) ([]GeneratedSkill, error)
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string                  `json:"model"`
	Messages       []chatCompletionMessage `json:"messages"`
	ResponseFormat *responseFormat         `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

type skillDocument struct {
	Skills []GeneratedSkill `json:"skills"`
}

// ChatOracle calls an OpenAI-compatible chat-completions endpoint.
// No retry and no timeout beyond the HTTP client's own; a transport or
// API failure is surfaced to the caller as a generation failure.
type ChatOracle struct {
	Endpoint string
	APIKey   string
	Model    string
	Client   *http.Client
	Logger   *log.Logger
}

func NewChatOracle(cfg *config.Config, logger *log.Logger) *ChatOracle {
	return &ChatOracle{
		Endpoint: cfg.AIEndpoint,
		APIKey:   cfg.AIAPIKey,
		Model:    cfg.AIModel,
		Client:   &http.Client{},
		Logger:   logger,
	}
}

func (o *ChatOracle) GenerateSkills(role, goal, currentLevel string) ([]GeneratedSkill, error) {
	requestData := chatCompletionRequest{
		Model: o.Model,
		Messages: []chatCompletionMessage{
			{Role: "user", Content: buildPrompt(role, goal, currentLevel)},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(requestData)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize request: %w", err)
	}

	req, err := http.NewRequest("POST", o.Endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.APIKey)

	resp, err := o.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var completionResp chatCompletionResponse
	if err := json.Unmarshal(body, &completionResp); err != nil {
		return nil, fmt.Errorf("failed to decode API response: %w", err)
	}
	if len(completionResp.Choices) == 0 {
		return nil, fmt.Errorf("no completion returned by the API")
	}

	return o.parseSkillDocument(completionResp.Choices[0].Message.Content), nil
}

// parseSkillDocument applies the permissive-parsing policy: a document the
// model mangled, or one without a skills key, degrades to an empty skill
// list instead of failing the whole request. The fallback is always logged.
func (o *ChatOracle) parseSkillDocument(content string) []GeneratedSkill {
	var doc skillDocument
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		o.Logger.Printf("oracle returned unparseable skill document, falling back to empty list: %v", err)
		return []GeneratedSkill{}
	}
	if doc.Skills == nil {
		o.Logger.Print("oracle document has no skills key, falling back to empty list")
		return []GeneratedSkill{}
	}
	return doc.Skills
}

func buildPrompt(role, goal, currentLevel string) string {
	return fmt.Sprintf(`Create a detailed career roadmap for a %s aiming to become a %s.
The user's specific goal is: %q.

Return a JSON object with this structure:
{
  "skills": [
    {
      "name": "Skill Name",
      "description": "Short description",
      "category": "Technical" | "Soft Skill" | "Tools",
      "level": "Beginner" | "Intermediate" | "Advanced",
      "resources": [
        { "title": "Resource Title", "url": "https://example.com", "type": "article" | "course" | "video" }
      ]
    }
  ]
}
Provide at least 5-8 key skills with 1-2 high-quality resources each.`, currentLevel, role, goal)
}
