package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"standupdash/pkg/llm"

	"github.com/gin-gonic/gin"
)

type SummaryGenerator interface {
	Summarize(ctx context.Context, input llm.SummaryInput) (string, error)
}

type SummaryHandler struct {
	summarizer SummaryGenerator
}

func NewSummaryHandler(summarizer SummaryGenerator) *SummaryHandler {
	return &SummaryHandler{summarizer: summarizer}
}

func (h *SummaryHandler) CreateSummary(c *gin.Context) {
	var req SummaryRequest
	// An empty body is treated like a request without messages.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Warn("invalid summary request", "error", err, "request_id", requestID(c))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	input := llm.SummaryInput{
		Messages:    make([]llm.StandupMessage, len(req.Messages)),
		Date:        req.Date,
		ChannelName: req.ChannelName,
	}
	for i, m := range req.Messages {
		input.Messages[i] = llm.StandupMessage{
			UserName:    m.UserName,
			Content:     m.Content,
			Timestamp:   m.Timestamp,
			Attachments: m.Attachments,
		}
	}

	summary, err := h.summarizer.Summarize(c.Request.Context(), input)
	if err != nil {
		slog.Error("error generating summary", "error", err, "channel", req.ChannelName, "date", req.Date, "request_id", requestID(c))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Summary: summary})
}
