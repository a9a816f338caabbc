package handler

type ChannelResponse struct {
	ChannelID    string `json:"channel_id"`
	ChannelName  string `json:"channel_name"`
	TeamID       string `json:"team_id"`
	MessageCount int    `json:"message_count"`
}

type MessageResponse struct {
	UserName    string `json:"user_name"`
	Content     string `json:"content"`
	Timestamp   string `json:"timestamp"`
	Attachments int    `json:"attachments"`
}

type SummaryRequest struct {
	Messages    []MessageResponse `json:"messages"`
	Date        string            `json:"date"`
	ChannelName string            `json:"channelName"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
