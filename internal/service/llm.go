package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/nutriia/backend/config"
	"github.com/nutriia/backend/internal/jsonutil"
)

// LLMService handles interactions with the DeepSeek API
type LLMService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewLLMService creates a new LLMService instance. The API key comes
// from the configuration or, failing that, from a key file pointed at
// by DEEPSEEK_API_KEY_FILE. The HTTP client carries the configured
// timeout so an unresponsive provider cannot hang a request.
func NewLLMService(cfg *config.Config) (*LLMService, error) {
	apiKey := cfg.DeepSeekAPIKey
	if apiKey == "" {
		apiKeyFile := os.Getenv("DEEPSEEK_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("DEEPSEEK_API_KEY or DEEPSEEK_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	return &LLMService{
		apiKey: apiKey,
		apiURL: cfg.DeepSeekAPIURL,
		client: &http.Client{Timeout: cfg.LLMTimeout},
	}, nil
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the DeepSeek API
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

const systemPromptJSON = "Eres un nutricionista experto. Responde siempre en formato JSON válido."

// chatCompletion sends one chat request and returns the raw content of
// the first choice.
func (s *LLMService) chatCompletion(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error) {
	reqBody := Request{
		Model:       "deepseek-chat",
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}

// GenerateMealPlan asks the model for a personalized 7-day plan. A
// provider failure is returned as an error; a response the JSON
// extractor cannot make sense of degrades to the default weekly plan
// with the raw text preserved as the recommendation.
func (s *LLMService) GenerateMealPlan(ctx context.Context, prompt MealPlanPrompt) (*GeneratedMealPlan, error) {
	userPrompt := fmt.Sprintf(`Eres un nutricionista experto especializado en diabetes y control glucémico.
Genera un plan alimenticio personalizado de 7 días (lunes a domingo) para el siguiente paciente:

Datos del paciente:
- Nombre: %s
- Edad: %d años
- Peso: %.1f kg
- Altura: %.1f cm
- IMC: %.2f
- Glucosa en ayunas: %.1f mg/dL
- Estado glucémico: %s

Consideraciones especiales: %s

Genera un plan alimenticio completo con:
1. Desayuno, comida y cena para cada día de la semana
2. Alimentos apropiados para el control glucémico
3. Porciones adecuadas
4. Bebidas recomendadas

Responde SOLO con un JSON válido en este formato:
{
  "week": 1,
  "menuType": "Plan Personalizado",
  "description": "Descripción del plan",
  "meals": {
    "lunes": {
      "desayuno": ["alimento1", "alimento2"],
      "comida": ["alimento1", "alimento2"],
      "cena": ["alimento1", "alimento2"]
    },
    ... (para todos los días)
  },
  "recommendations": "Recomendaciones generales para el paciente"
}`,
		prompt.PatientName,
		prompt.Age,
		prompt.WeightKg,
		prompt.HeightCm,
		prompt.BMI,
		prompt.GlucoseFasting,
		orDefault(prompt.GlucoseStatus, "Sin evaluar"),
		orDefault(prompt.Considerations, "Ninguna"),
	)

	messages := []Message{
		{Role: "system", Content: systemPromptJSON},
		{Role: "user", Content: userPrompt},
	}

	content, err := s.chatCompletion(ctx, messages, 0.7, 2000)
	if err != nil {
		return nil, err
	}

	var plan GeneratedMealPlan
	if err := jsonutil.Unmarshal(content, &plan); err != nil {
		// Unparseable output is recoverable: fall back to the default
		// weekly structure, keeping the model text for the clinician.
		return &GeneratedMealPlan{
			Week:            1,
			MenuType:        "Plan Personalizado",
			Meals:           DefaultWeeklyMeals(),
			Recommendations: truncate(content, 500),
		}, nil
	}

	if plan.Week == 0 {
		plan.Week = 1
	}
	if plan.MenuType == "" {
		plan.MenuType = "Plan Personalizado"
	}
	if len(plan.Meals) == 0 {
		plan.Meals = DefaultWeeklyMeals()
	}

	return &plan, nil
}

// AnalyzeMonitoring asks the model for recommendations based on the
// patient's trend summary. Any failure, including unparseable output,
// is returned as an error; the monitoring service owns the local
// fallback.
func (s *LLMService) AnalyzeMonitoring(ctx context.Context, prompt MonitoringPrompt) (*MonitoringInsights, error) {
	userPrompt := fmt.Sprintf(`Eres un nutricionista experto. Analiza el siguiente historial de un paciente y genera recomendaciones personalizadas:

Paciente: %s
Número de evaluaciones: %d
Número de planes alimenticios: %d
Estado glucémico actual: %s
Peso actual: %.1f kg
Glucosa actual: %.1f mg/dL
IMC actual: %.2f
Tendencia de peso: %s
Tendencia de glucosa: %s

Genera un análisis con recomendaciones específicas y accionables. Responde SOLO con un JSON válido:
{
  "recommendations": ["recomendación1", "recomendación2", ...],
  "analysis": "Análisis detallado del estado del paciente",
  "priority": "alta|media|baja"
}`,
		prompt.PatientName,
		prompt.EvaluationCount,
		prompt.PlanCount,
		orDefault(prompt.GlucoseStatus, "Sin evaluar"),
		prompt.WeightKg,
		prompt.GlucoseFasting,
		prompt.BMI,
		prompt.WeightTrend,
		prompt.GlucoseTrend,
	)

	messages := []Message{
		{Role: "system", Content: systemPromptJSON},
		{Role: "user", Content: userPrompt},
	}

	content, err := s.chatCompletion(ctx, messages, 0.7, 1500)
	if err != nil {
		return nil, err
	}

	var insights MonitoringInsights
	if err := jsonutil.Unmarshal(content, &insights); err != nil {
		return nil, fmt.Errorf("failed to parse analysis: %w", err)
	}

	return &insights, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
