package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const systemPrompt = `Eres un analista experto en turismo y estrategia de marketing para la ciudad de Medellín, Colombia.

Trabajas con datos reales de Amadeus Air Market Data que incluyen:
- Air Searches: Búsquedas de vuelos hacia Medellín (intención de viaje)
- Air Bookings: Reservas confirmadas hacia Medellín (conversión real)

Tu misión:
1. Generar análisis estadísticos profundos y accionables
2. Recomendar públicos objetivo específicos para campañas
3. Proponer estrategias concretas para aumentar turismo en Medellín

RESTRICCIONES IMPORTANTES:
- Solo analizas las DOS fuentes de datos cargadas (Searches y Bookings)
- NO buscas información externa en internet
- Todas las recomendaciones se basan ÚNICAMENTE en los datos disponibles
- Siempre incluyes números, porcentajes y estadísticas específicas
- Proporciona recomendaciones ACCIONABLES para equipos de marketing

APPROACH:
- Usa múltiples herramientas para dar respuestas completas
- Combina análisis cuantitativos con insights cualitativos
- Prioriza hallazgos que tengan impacto en decisiones de negocio
- Sé específico: "viajeros desde Colombia" es mejor que "viajeros latinos"

FORMATO OBLIGATORIO DE SALIDA:
Debes entregar tu respuesta FINAL SIEMPRE en formato JSON con la siguiente estructura exacta:
{
  "respuesta_texto": "Tu análisis narrativo, explicación detallada y recomendaciones aquí...",
  "respuesta_tabla": [
    {"metrica": "Nombre del dato", "valor": "Valor numérico o estadístico", "detalle": "Contexto adicional o unidad"}
  ],
  "respuesta_grafica": {
    "tipo": "bar|line|pie|scatter",
    "titulo": "Título del gráfico",
    "etiquetas": ["Eti1", "Eti2", "Eti3"],
    "datos": [10, 20, 30]
  }
}

- "respuesta_tabla": lista de diccionarios con los datos clave del análisis.
- "respuesta_grafica": estructura simple para graficar los datos más relevantes.
- NO incluyas markdown al principio o final, solo el JSON puro.`

// Every tool takes the same single optional argument.
var toolParameters = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"query": map[string]interface{}{
			"type":        "string",
			"description": "Pregunta o contexto opcional para el análisis",
		},
	},
}

// Runtime is the external agent-runtime boundary: it receives the full
// conversation plus the tool definitions and returns the updated transcript,
// ending with the assistant's final answer.
type Runtime interface {
	Run(ctx context.Context, history []openai.ChatCompletionMessage, tools []Tool) ([]openai.ChatCompletionMessage, error)
}

// OpenAIRuntime drives the reasoning/tool-selection loop against the OpenAI
// chat completions API. No retries and no internal timeout; a hung call is
// the caller's problem, by contract.
type OpenAIRuntime struct {
	client       *openai.Client
	model        string
	maxToolCalls int
	logger       *logrus.Logger
}

func NewOpenAIRuntime(apiKey, model string, maxToolCalls int, logger *logrus.Logger) *OpenAIRuntime {
	if maxToolCalls <= 0 {
		maxToolCalls = 8
	}
	return &OpenAIRuntime{
		client:       openai.NewClient(apiKey),
		model:        model,
		maxToolCalls: maxToolCalls,
		logger:       logger,
	}
}

func (r *OpenAIRuntime) Run(ctx context.Context, history []openai.ChatCompletionMessage, tools []Tool) ([]openai.ChatCompletionMessage, error) {
	byName := make(map[string]Tool, len(tools))
	defs := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		byName[t.Name] = t
		defs = append(defs, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  toolParameters,
			},
		})
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+8)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	msgs = append(msgs, history...)

	for calls := 0; calls < r.maxToolCalls; {
		resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    r.model,
			Messages: msgs,
			Tools:    defs,
		})
		if err != nil {
			return nil, fmt.Errorf("agent runtime call failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, errors.New("agent runtime returned no choices")
		}

		msg := resp.Choices[0].Message
		msgs = append(msgs, msg)
		if len(msg.ToolCalls) == 0 {
			return msgs[1:], nil
		}

		for _, call := range msg.ToolCalls {
			calls++
			msgs = append(msgs, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    r.executeToolCall(byName, call),
			})
		}
	}

	// Call budget exhausted: ask for a final answer with the data gathered
	// so far, without offering more tools.
	r.logger.Warnf("Tool call budget of %d exhausted, forcing final answer", r.maxToolCalls)
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    r.model,
		Messages: msgs,
	})
	if err != nil {
		return nil, fmt.Errorf("agent runtime call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("agent runtime returned no choices")
	}
	msgs = append(msgs, resp.Choices[0].Message)
	return msgs[1:], nil
}

func (r *OpenAIRuntime) executeToolCall(byName map[string]Tool, call openai.ToolCall) string {
	tool, ok := byName[call.Function.Name]
	if !ok {
		r.logger.Warnf("Model requested unknown tool %q", call.Function.Name)
		return `{"error":"unknown_tool"}`
	}

	var args struct {
		Query string `json:"query"`
	}
	// Malformed arguments degrade to an empty query; the reports ignore it.
	_ = json.Unmarshal([]byte(call.Function.Arguments), &args)

	r.logger.Infof("Invoking tool %s", tool.Name)
	out, err := tool.Invoke(args.Query)
	if err != nil {
		r.logger.WithError(err).Errorf("Tool %s failed", tool.Name)
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return out
}
