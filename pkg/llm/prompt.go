package llm

import (
	"fmt"
	"strings"
	"time"
)

const summaryPrompt = `Analyze the following standup messages from %s on %s and provide a brief executive summary in 2-3 sentences.

Focus ONLY on:
- Key progress and accomplishments
- Critical blockers or issues
- Important decisions made

Keep it concise and manager-friendly. Avoid formatting like bold text, bullet points, or section headers.

Messages:
%s
`

const messageTimeLayout = "3:04:05 PM"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
}

// BuildPrompt renders the summary request sent to the backend.
func BuildPrompt(input SummaryInput, loc *time.Location) string {
	lines := make([]string, len(input.Messages))
	for i, m := range input.Messages {
		lines[i] = formatMessage(m, loc)
	}
	return fmt.Sprintf(summaryPrompt, input.ChannelName, input.Date, strings.Join(lines, "\n"))
}

func formatMessage(m StandupMessage, loc *time.Location) string {
	line := fmt.Sprintf("**%s:** [%s] %s", m.UserName, localTime(m.Timestamp, loc), m.Content)
	if m.Attachments > 0 {
		line += fmt.Sprintf(" (%d attachments)", m.Attachments)
	}
	return line
}

// localTime renders a stored timestamp as a wall-clock time in loc. Values
// without a zone are read as already being in loc. Unparseable values pass
// through unchanged.
func localTime(ts string, loc *time.Location) string {
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, ts, loc)
		if err == nil {
			return t.In(loc).Format(messageTimeLayout)
		}
	}
	return ts
}
