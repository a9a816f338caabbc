package handler

import (
	"context"
	"log/slog"
	"net/http"
	"standupdash/internal/model"
	"time"

	"github.com/gin-gonic/gin"
)

type StandupStore interface {
	ListChannelsForDate(ctx context.Context, date string) ([]model.Channel, error)
	ListTeamChannelsForDate(ctx context.Context, teamID, date string) ([]model.Channel, error)
	ListMessagesForChannelDate(ctx context.Context, channelID, date string) ([]model.Message, error)
	Ping(ctx context.Context) error
	Close() error
}

// StoreOpener returns a fresh store handle. Handlers open one per request and
// close it once the response is written.
type StoreOpener func() (StandupStore, error)

type StandupHandler struct {
	open  StoreOpener
	today func() string
}

func NewStandupHandler(open StoreOpener) *StandupHandler {
	return &StandupHandler{open: open, today: today}
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func (h *StandupHandler) GetChannels(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = h.today()
	}
	teamID := c.Query("team_id")

	store, ok := h.openStore(c)
	if !ok {
		return
	}
	defer store.Close()

	var channels []model.Channel
	var err error
	if teamID != "" {
		channels, err = store.ListTeamChannelsForDate(c.Request.Context(), teamID, date)
	} else {
		channels, err = store.ListChannelsForDate(c.Request.Context(), date)
	}
	if err != nil {
		slog.Error("error fetching channels", "error", err, "date", date, "team_id", teamID, "request_id", requestID(c))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	res := make([]ChannelResponse, 0, len(channels))
	for _, ch := range channels {
		res = append(res, ChannelResponse{
			ChannelID:    ch.ChannelID,
			ChannelName:  ch.ChannelName,
			TeamID:       ch.TeamID,
			MessageCount: ch.MessageCount,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *StandupHandler) GetMessages(c *gin.Context) {
	channelID := c.Param("channelId")
	date := c.Query("date")

	store, ok := h.openStore(c)
	if !ok {
		return
	}
	defer store.Close()

	messages, err := store.ListMessagesForChannelDate(c.Request.Context(), channelID, date)
	if err != nil {
		slog.Error("error fetching messages", "error", err, "channel_id", channelID, "date", date, "request_id", requestID(c))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	res := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, MessageResponse{
			UserName:    m.UserName,
			Content:     m.Content,
			Timestamp:   m.Timestamp,
			Attachments: m.Attachments,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *StandupHandler) GetHealth(c *gin.Context) {
	store, err := h.open()
	if err == nil {
		defer store.Close()
		err = store.Ping(c.Request.Context())
	}

	if err != nil {
		slog.Warn("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func (h *StandupHandler) openStore(c *gin.Context) (StandupStore, bool) {
	store, err := h.open()
	if err != nil {
		slog.Error("error opening store", "error", err, "request_id", requestID(c))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return nil, false
	}
	return store, true
}
