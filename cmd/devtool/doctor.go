package main

import "fmt"

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (db + daemon)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false

	if err := pingOnce(databaseURL()); err != nil {
		PrintError("Database check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Database OK")
	}

	// A stopped daemon is not an environment problem
	healthCmd := &HealthCheckCommand{}
	if err := healthCmd.Run(nil); err != nil {
		PrintWarning("Daemon not reachable at %s", apiURL())
	} else {
		PrintSuccess("Daemon OK")
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
