package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

type WatchEventsCommand struct{}

func (c *WatchEventsCommand) Name() string {
	return "watch-events"
}

func (c *WatchEventsCommand) Description() string {
	return "Stream session events from a running daemon (optional: types, duration)"
}

// Run connects to the SSE stream and prints each event. The optional first
// argument is a comma separated type filter, the second a duration limit.
func (c *WatchEventsCommand) Run(args []string) error {
	url := apiURL() + "/api/v1/events"
	if len(args) > 0 && args[0] != "" {
		url += "?types=" + args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(args) > 1 {
		d, err := time.ParseDuration(args[1])
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", args[1], err)
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	if apiKey := os.Getenv("API_KEY"); apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	PrintHeader("Watching " + url)

	var eventType string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			printEvent(eventType, strings.TrimPrefix(line, "data: "))
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return err
	}
	PrintInfo("Stream closed")
	return nil
}

func printEvent(eventType, data string) {
	var evt struct {
		Timestamp int64           `json:"timestamp"`
		Payload   json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal([]byte(data), &evt); err != nil {
		PrintWarning("%s: %s", eventType, data)
		return
	}
	at := time.Unix(evt.Timestamp, 0).Format(time.TimeOnly)
	PrintInfo("[%s] %s %s", at, eventType, string(evt.Payload))
}
