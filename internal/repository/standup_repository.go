package repository

import (
	"context"
	"database/sql"
	"standupdash/db"
	"standupdash/internal/model"
	"strconv"
	"strings"
)

type StandupRepository struct {
	db     *sql.DB
	driver string
}

func NewStandupRepository(conn *sql.DB, driver string) *StandupRepository {
	return &StandupRepository{db: conn, driver: driver}
}

// Open gives a repository its own handle on dsn. Close releases it.
func Open(dsn string) (*StandupRepository, error) {
	conn, err := db.Open(dsn)
	if err != nil {
		return nil, err
	}
	return NewStandupRepository(conn, db.Driver(dsn)), nil
}

func (r *StandupRepository) Close() error {
	return r.db.Close()
}

func (r *StandupRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// ListChannelsForDate returns every registered channel with its message count
// on date. Channels without messages that day are included with a count of 0.
func (r *StandupRepository) ListChannelsForDate(ctx context.Context, date string) ([]model.Channel, error) {
	return r.listChannels(ctx, `
		SELECT DISTINCT sc.channel_id, sc.channel_name, sc.team_id,
			COUNT(m.id) AS message_count
		FROM standup_channels sc
		LEFT JOIN messages m ON sc.channel_id = m.channel_id
			AND m.date = ?
		GROUP BY sc.channel_id, sc.channel_name, sc.team_id
	`, date)
}

func (r *StandupRepository) ListTeamChannelsForDate(ctx context.Context, teamID, date string) ([]model.Channel, error) {
	return r.listChannels(ctx, `
		SELECT DISTINCT sc.channel_id, sc.channel_name, sc.team_id,
			COUNT(m.id) AS message_count
		FROM standup_channels sc
		LEFT JOIN messages m ON sc.channel_id = m.channel_id
			AND m.date = ?
		WHERE sc.team_id = ?
		GROUP BY sc.channel_id, sc.channel_name, sc.team_id
	`, date, teamID)
}

func (r *StandupRepository) listChannels(ctx context.Context, query string, args ...any) ([]model.Channel, error) {
	rows, err := r.db.QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	channels := []model.Channel{}
	for rows.Next() {
		var c model.Channel
		err := rows.Scan(&c.ChannelID, &c.ChannelName, &c.TeamID, &c.MessageCount)
		if err != nil {
			return nil, err
		}
		channels = append(channels, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return channels, nil
}

// ListMessagesForChannelDate returns the messages of one channel on one day,
// oldest first. An unknown channel or date yields an empty slice.
func (r *StandupRepository) ListMessagesForChannelDate(ctx context.Context, channelID, date string) ([]model.Message, error) {
	rows, err := r.db.QueryContext(ctx, r.rebind(`
		SELECT user_name, content, CAST(timestamp AS TEXT) AS timestamp, attachments
		FROM messages
		WHERE channel_id = ? AND date = ?
		ORDER BY timestamp ASC
	`), channelID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var m model.Message
		err := rows.Scan(&m.UserName, &m.Content, &m.Timestamp, &m.Attachments)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// rebind rewrites ? placeholders into $n for Postgres.
func (r *StandupRepository) rebind(query string) string {
	if r.driver != db.DriverPostgres {
		return query
	}

	var sb strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			sb.WriteString("$" + strconv.Itoa(n))
			continue
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}
