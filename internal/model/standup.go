package model

const (
	StatusHealthy  = "healthy"
	StatusWarning  = "warning"
	StatusCritical = "critical"
)

type Channel struct {
	ChannelID    string
	ChannelName  string
	TeamID       string
	MessageCount int
}

type Message struct {
	UserName    string
	Content     string
	Timestamp   string
	Attachments int
}
