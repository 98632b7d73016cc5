package main

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const slowResponseThreshold = time.Second

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running daemon"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := apiURL()
	if len(args) > 0 {
		base = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	for _, path := range []string{"/healthz", "/readyz"} {
		duration, err := checkEndpoint(base + path)
		if err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		if duration > slowResponseThreshold {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}
	return nil
}

func checkEndpoint(url string) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	duration := time.Since(start)

	if resp.StatusCode != http.StatusOK {
		return duration, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return duration, nil
}
