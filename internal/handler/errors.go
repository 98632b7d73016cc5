package handler

// Generic HTTP error messages for client responses.
// These do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError   = "Game server is temporarily unavailable. Please try again later."

	ErrMsgInstanceNotFoundError = "Hero instance not found"
	ErrMsgHeroNotFoundError     = "You do not own that hero"
	ErrMsgAlreadyClaimedError   = "Starter hero already claimed"
	ErrMsgNoStarterHeroesError  = "No starter heroes are available"
	ErrMsgNoEligibleHeroesError = "No heroes can drop from mystery boxes right now"

	ErrMsgInsufficientBalanceError = "Not enough SuperCash"
	ErrMsgRecipientNotFoundError   = "Recipient not found"
	ErrMsgSelfTransferError        = "You cannot send SuperCash to yourself"
	ErrMsgInvalidReferralError     = "Invalid referral code"
	ErrMsgReferralUsedError        = "A referral code is already applied"

	ErrMsgAlreadySpunError   = "The wheel was already spun today"
	ErrMsgNoWheelPrizesError = "The prize wheel is not configured"

	ErrMsgProfileNotFoundError  = "Profile not found"
	ErrMsgCommandInFlightError  = "Another command is still in progress"
	ErrMsgCatalogNotLoadedError = "Hero catalog is not available yet"
)

// Success messages for API responses
const (
	MsgStoreRefreshed = "Hero collection refreshed"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgServiceError    = "Service call failed"
	LogMsgCommandRejected = "Command rejected"
	LogMsgReadinessFailed = "Readiness check failed"
)
