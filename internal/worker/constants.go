package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Wheel Reset Worker
// ============================================================================

// Log messages for wheel reset worker operations
const (
	LogMsgWheelResetStandby   = "Wheel reset standby"
	LogMsgWheelResetApproach  = "Wheel reset approaching"
	LogMsgWheelResetAnnounced = "Wheel reset announced"
	LogMsgWheelResetFailed    = "Wheel reset announcement failed"
)

// Two-stage scheduling windows for the wheel reset worker
const (
	wheelResetStandbyThreshold = 1 * time.Hour
	wheelResetWakeBefore       = 45 * time.Minute
	wheelResetJitterTolerance  = 10 * time.Second
)

// DefaultJobTimeout bounds one scheduled job
const DefaultJobTimeout = 30 * time.Second

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
