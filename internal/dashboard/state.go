package dashboard

import (
	"standupdash/internal/model"
	"time"
)

// HealthStatus grades a channel by how many messages it received that day.
func HealthStatus(messageCount int) string {
	switch {
	case messageCount > 10:
		return model.StatusHealthy
	case messageCount > 5:
		return model.StatusWarning
	default:
		return model.StatusCritical
	}
}

type ChannelView struct {
	ID           string `json:"id"`
	ChannelID    string `json:"channel_id"`
	ChannelName  string `json:"channel_name"`
	TeamID       string `json:"team_id,omitempty"`
	MessageCount int    `json:"message_count"`
	MemberCount  int    `json:"member_count"`
	Status       string `json:"status"`
	Summary      string `json:"summary"`
	LastActivity string `json:"last_activity"`
}

type State struct {
	SelectedDate   string          `json:"selected_date"`
	Channels       []ChannelView   `json:"channels"`
	Loading        bool            `json:"loading"`
	LastUpdated    time.Time       `json:"last_updated"`
	UseMockData    bool            `json:"use_mock_data"`
	Error          string          `json:"error,omitempty"`
	SummaryLoading map[string]bool `json:"summary_loading"`

	// Generation identifies the current load. Results tagged with an older
	// generation are discarded.
	Generation int `json:"generation"`
}

// NewState is the state of a freshly opened dashboard: mock data, about to load.
func NewState(date string, now time.Time) State {
	return State{
		SelectedDate:   date,
		Channels:       []ChannelView{},
		Loading:        true,
		LastUpdated:    now,
		UseMockData:    true,
		SummaryLoading: map[string]bool{},
	}
}

type Stats struct {
	TotalChannels int
	Healthy       int
	Warning       int
	TotalMessages int
}

func (s State) Stats() Stats {
	stats := Stats{TotalChannels: len(s.Channels)}
	for _, c := range s.Channels {
		switch c.Status {
		case model.StatusHealthy:
			stats.Healthy++
		case model.StatusWarning:
			stats.Warning++
		}
		stats.TotalMessages += c.MessageCount
	}
	return stats
}

// SummaryInFlight reports whether a summary request for the channel is outstanding.
func (s State) SummaryInFlight(channelID string) bool {
	return s.SummaryLoading[channelID]
}

type Action interface {
	isAction()
}

type DateSelected struct{ Date string }

type DataSourceSet struct{ UseMockData bool }

type LoadStarted struct{}

type SummaryStarted struct {
	Generation int
	ChannelID  string
}

type SummaryFinished struct {
	Generation int
	ChannelID  string
}

type LoadSucceeded struct {
	Generation int
	Channels   []ChannelView
	At         time.Time
}

type LoadFailed struct {
	Generation int
	Err        string
	At         time.Time
}

func (DateSelected) isAction()    {}
func (DataSourceSet) isAction()   {}
func (LoadStarted) isAction()     {}
func (SummaryStarted) isAction()  {}
func (SummaryFinished) isAction() {}
func (LoadSucceeded) isAction()   {}
func (LoadFailed) isAction()      {}

// Reduce returns the state after applying a. It never mutates s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case DateSelected:
		s.SelectedDate = a.Date
	case DataSourceSet:
		s.UseMockData = a.UseMockData
	case LoadStarted:
		s.Generation++
		s.Loading = true
		s.Error = ""
		s.SummaryLoading = map[string]bool{}
	case SummaryStarted:
		if a.Generation == s.Generation {
			s.SummaryLoading = withFlag(s.SummaryLoading, a.ChannelID, true)
		}
	case SummaryFinished:
		if a.Generation == s.Generation {
			s.SummaryLoading = withFlag(s.SummaryLoading, a.ChannelID, false)
		}
	case LoadSucceeded:
		if a.Generation == s.Generation {
			s.Channels = a.Channels
			if s.Channels == nil {
				s.Channels = []ChannelView{}
			}
			s.Loading = false
			s.LastUpdated = a.At
		}
	case LoadFailed:
		if a.Generation == s.Generation {
			s.Channels = []ChannelView{}
			s.Error = a.Err
			s.Loading = false
			s.LastUpdated = a.At
		}
	}
	return s
}

func withFlag(flags map[string]bool, key string, on bool) map[string]bool {
	next := make(map[string]bool, len(flags)+1)
	for k, v := range flags {
		next[k] = v
	}
	if on {
		next[key] = true
	} else {
		delete(next, key)
	}
	return next
}
