package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"medellin/server/internal/agent"
	"medellin/server/internal/dataset"
	"medellin/server/internal/models"
)

// scriptedRuntime answers every question with a fixed reply or error.
type scriptedRuntime struct {
	reply string
	err   error
}

func (r scriptedRuntime) Run(ctx context.Context, history []openai.ChatCompletionMessage, tools []agent.Tool) ([]openai.ChatCompletionMessage, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append(history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: r.reply,
	}), nil
}

func testRouter(t *testing.T, runtime agent.Runtime) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	store := &dataset.Store{
		Searches: make([]models.SearchRecord, 3),
		Bookings: make([]models.BookingRecord, 2),
	}
	handler := NewHandler(agent.New(runtime, nil), store, logger)

	router := gin.New()
	SetupRoutes(router, handler)
	return router
}

func TestQueryReturnsNormalizedReport(t *testing.T) {
	router := testRouter(t, scriptedRuntime{reply: `{"respuesta_texto": "análisis listo"}`})

	req := httptest.NewRequest(http.MethodPost, "/api/query",
		strings.NewReader(`{"question": "¿De dónde vienen los viajeros?"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var report models.AgentReport
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "análisis listo", report.RespuestaTexto)
}

func TestQueryWrapsPlainTextAnswer(t *testing.T) {
	router := testRouter(t, scriptedRuntime{reply: "Respuesta en prosa, sin JSON."})

	req := httptest.NewRequest(http.MethodPost, "/api/query",
		strings.NewReader(`{"question": "hola"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var report models.AgentReport
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "Respuesta en prosa, sin JSON.", report.RespuestaTexto)
}

func TestQueryRejectsMissingQuestion(t *testing.T) {
	router := testRouter(t, scriptedRuntime{reply: "unused"})

	req := httptest.NewRequest(http.MethodPost, "/api/query", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Missing question"}`, w.Body.String())
}

func TestQueryReportsRuntimeFailure(t *testing.T) {
	router := testRouter(t, scriptedRuntime{err: errors.New("model unavailable")})

	req := httptest.NewRequest(http.MethodPost, "/api/query",
		strings.NewReader(`{"question": "hola"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "model unavailable")
}

func TestReset(t *testing.T) {
	router := testRouter(t, scriptedRuntime{reply: "ok"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reset", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Historial reiniciado correctamente"}`, w.Body.String())
}

func TestHealthCountsRecords(t *testing.T) {
	router := testRouter(t, scriptedRuntime{reply: "ok"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "searches": 3, "bookings": 2}`, w.Body.String())
}
