package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"standupdash/internal/config"
	"standupdash/internal/model"
	"standupdash/internal/repository"
	"standupdash/pkg/llm"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentSummaries = 4

var errInvalidDate = errors.New("Invalid date format. Please use YYYY-MM-DD")

type messageStore interface {
	ListChannelsForDate(ctx context.Context, date string) ([]model.Channel, error)
	ListMessagesForChannelDate(ctx context.Context, channelID, date string) ([]model.Message, error)
}

type summarizer interface {
	Summarize(ctx context.Context, input llm.SummaryInput) (string, error)
}

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		date      string
		channelID string
	)

	cmd := &cobra.Command{
		Use:   "summarizer",
		Short: "Print an AI summary of every standup channel for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().UTC().Format(time.DateOnly)
			}
			if err := validateDate(date); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			repo, err := repository.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("error opening message store: %w", err)
			}
			defer repo.Close()

			backend, err := llm.NewBackend(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cmd.OutOrStdout(), repo, llm.NewSummarizer(backend), date, channelID)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date to summarize (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVarP(&channelID, "channel", "c", "", "Only summarize this channel id")

	return cmd
}

func validateDate(date string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return errInvalidDate
	}
	return nil
}

type digest struct {
	channel  model.Channel
	messages int
	summary  string
}

func run(ctx context.Context, w io.Writer, store messageStore, sum summarizer, date, channelID string) error {
	channels, err := store.ListChannelsForDate(ctx, date)
	if err != nil {
		return fmt.Errorf("error listing channels: %w", err)
	}

	if channelID != "" {
		filtered := channels[:0:0]
		for _, ch := range channels {
			if ch.ChannelID == channelID {
				filtered = append(filtered, ch)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("channel %s is not a standup channel", channelID)
		}
		channels = filtered
	}

	if len(channels) == 0 {
		fmt.Fprintf(w, "No standup channels configured.\n")
		return nil
	}

	slog.Info("summarizing channels", "date", date, "count", len(channels))

	digests := make([]digest, len(channels))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSummaries)
	for i, ch := range channels {
		g.Go(func() error {
			messages, err := store.ListMessagesForChannelDate(gctx, ch.ChannelID, date)
			if err != nil {
				return fmt.Errorf("error reading messages for %s: %w", ch.ChannelID, err)
			}

			input := llm.SummaryInput{Date: date, ChannelName: ch.ChannelName}
			for _, m := range messages {
				input.Messages = append(input.Messages, llm.StandupMessage(m))
			}

			summary, err := sum.Summarize(gctx, input)
			if err != nil {
				slog.Error("error generating summary", "channel_id", ch.ChannelID, "error", err)
				summary = err.Error()
			}

			digests[i] = digest{channel: ch, messages: len(messages), summary: summary}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, d := range digests {
		fmt.Fprintf(w, "Date: %s\nChannel: #%s\nMessages analyzed: %d\n\n%s\n\n", date, d.channel.ChannelName, d.messages, d.summary)
	}
	return nil
}
