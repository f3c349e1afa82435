package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"medellin/server/internal/agent"
	"medellin/server/internal/dataset"
)

type Handler struct {
	agent  *agent.Agent
	store  *dataset.Store
	logger *logrus.Logger
}

type QueryRequest struct {
	Question string `json:"question" binding:"required"`
}

func NewHandler(a *agent.Agent, store *dataset.Store, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		agent:  a,
		store:  store,
		logger: logger,
	}
}

// Query forwards a question to the conversation agent and returns the
// normalized report. Agent runtime failures surface as plain errors; a
// malformed agent answer never does, the normalizer always recovers.
func (h *Handler) Query(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid query request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing question"})
		return
	}

	h.logger.Infof("Question received: %s", req.Question)
	raw, err := h.agent.Ask(c.Request.Context(), req.Question)
	if err != nil {
		h.logger.WithError(err).Error("Agent query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	report, outcome := Normalize(raw)
	if outcome != ParseDirect {
		h.logger.Warnf("Agent answer normalized via %s path", outcome)
	}
	c.JSON(http.StatusOK, report)
}

// Reset clears the conversation history.
func (h *Handler) Reset(c *gin.Context) {
	h.agent.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "Historial reiniciado correctamente"})
}

// Health reports how many records each dataset holds.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"searches": len(h.store.Searches),
		"bookings": len(h.store.Bookings),
	})
}
