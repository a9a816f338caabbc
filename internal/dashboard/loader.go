package dashboard

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"standupdash/pkg/llm"
	"standupdash/pkg/standupapi"
	"time"

	"golang.org/x/sync/errgroup"
)

// SummaryUnavailable replaces the summary of any channel whose messages or
// summary could not be fetched.
const SummaryUnavailable = "Unable to generate summary. Please check your API configuration and try again."

type API interface {
	ListChannels(ctx context.Context, date string) ([]standupapi.Channel, error)
	ListMessages(ctx context.Context, channelID, date string) ([]standupapi.Message, error)
	Summarize(ctx context.Context, in standupapi.SummaryRequest) (string, error)
}

type Options struct {
	MockDelay time.Duration
	Now       func() time.Time
	Intn      func(int) int
}

// Dashboard drives loads against either the canned dataset or the API and
// records every step in its Store.
type Dashboard struct {
	store     *Store
	api       API
	mockDelay time.Duration
	now       func() time.Time
	intn      func(int) int
}

func New(store *Store, api API, opts Options) *Dashboard {
	d := &Dashboard{
		store:     store,
		api:       api,
		mockDelay: opts.MockDelay,
		now:       opts.Now,
		intn:      opts.Intn,
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.intn == nil {
		d.intn = rand.IntN
	}
	return d
}

func (d *Dashboard) State() State {
	return d.store.State()
}

// SelectDate switches the date and reloads.
func (d *Dashboard) SelectDate(ctx context.Context, date string) State {
	d.store.Dispatch(DateSelected{Date: date})
	return d.Load(ctx)
}

// SetMockData switches the data source and reloads.
func (d *Dashboard) SetMockData(ctx context.Context, useMock bool) State {
	d.store.Dispatch(DataSourceSet{UseMockData: useMock})
	return d.Load(ctx)
}

// Load starts a new generation and fills the dashboard for the selected
// date. A newer Load started meanwhile wins; this one's results are dropped.
func (d *Dashboard) Load(ctx context.Context) State {
	st := d.store.Dispatch(LoadStarted{})
	gen := st.Generation

	if st.UseMockData {
		timer := time.NewTimer(d.mockDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return d.store.Dispatch(LoadFailed{Generation: gen, Err: ctx.Err().Error(), At: d.now()})
		}
		return d.store.Dispatch(LoadSucceeded{Generation: gen, Channels: MockChannels(d.intn, d.now()), At: d.now()})
	}

	channels, err := d.fetchRealData(ctx, gen, st.SelectedDate)
	if err != nil {
		slog.Error("Error fetching real data", "date", st.SelectedDate, "error", err)
		return d.store.Dispatch(LoadFailed{Generation: gen, Err: err.Error(), At: d.now()})
	}
	return d.store.Dispatch(LoadSucceeded{Generation: gen, Channels: channels, At: d.now()})
}

func (d *Dashboard) fetchRealData(ctx context.Context, gen int, date string) ([]ChannelView, error) {
	channels, err := d.api.ListChannels(ctx, date)
	if err != nil {
		return nil, err
	}

	summaries := make([]string, len(channels))
	var g errgroup.Group
	for i, ch := range channels {
		g.Go(func() error {
			summaries[i] = d.channelSummary(ctx, gen, date, ch)
			return nil
		})
	}
	g.Wait()

	now := d.now()
	views := make([]ChannelView, 0, len(channels))
	for i, ch := range channels {
		views = append(views, ChannelView{
			ID:           ch.ChannelID,
			ChannelID:    ch.ChannelID,
			ChannelName:  ch.ChannelName,
			TeamID:       ch.TeamID,
			MessageCount: ch.MessageCount,
			MemberCount:  memberCount(d.intn),
			Status:       HealthStatus(ch.MessageCount),
			Summary:      summaries[i],
			LastActivity: lastActivity(d.intn, now),
		})
	}
	return views, nil
}

// channelSummary never fails: errors collapse into SummaryUnavailable so one
// channel cannot sink the others.
func (d *Dashboard) channelSummary(ctx context.Context, gen int, date string, ch standupapi.Channel) string {
	d.store.Dispatch(SummaryStarted{Generation: gen, ChannelID: ch.ChannelID})
	defer d.store.Dispatch(SummaryFinished{Generation: gen, ChannelID: ch.ChannelID})

	messages, err := d.api.ListMessages(ctx, ch.ChannelID, date)
	if err != nil {
		slog.Error("Error generating summary", "channel_id", ch.ChannelID, "error", err)
		return SummaryUnavailable
	}
	if len(messages) == 0 {
		return llm.NoMessagesSummary
	}

	summary, err := d.api.Summarize(ctx, standupapi.SummaryRequest{
		Messages:    messages,
		Date:        date,
		ChannelName: ch.ChannelName,
	})
	if err != nil {
		slog.Error("Error generating summary", "channel_id", ch.ChannelID, "error", err)
		return SummaryUnavailable
	}
	return summary
}
