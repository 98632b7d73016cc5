package economy

// Transfer limits
const (
	MinTransferAmount = 1
	MaxUsernameLength = 50
	MaxReferralLength = 16
)

// lockKeyAccount serializes balance-changing commands with the game service
const lockKeyAccount = "account"

// Formatted error messages for validation
const (
	ErrMsgInvalidAmountFmt    = "amount must be at least %d, got %d: %w"
	ErrMsgInvalidUsernameFmt  = "recipient username must be 1-%d characters: %w"
	ErrMsgInvalidReferralFmt  = "referral code must be 1-%d characters: %w"
	ErrMsgGetProfileFailedFmt = "failed to get profile: %w"
)

// Log messages
const (
	LogMsgSendSuperCash    = "SendSuperCash called"
	LogMsgApplyReferral    = "ApplyReferralCode called"
	LogMsgCommandRejected  = "Economy command rejected"
	LogMsgCommandSucceeded = "Economy command succeeded"
	LogMsgPublishFailed    = "Failed to publish economy event"
)
