package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Hero errors
	ErrMsgInstanceNotFound = "hero instance not found"
	ErrMsgHeroNotFound     = "hero not found"
	ErrMsgAlreadyClaimed   = "starter hero already claimed"
	ErrMsgNoStarterHeroes  = "no starter heroes available"
	ErrMsgNoEligibleHeroes = "no heroes eligible for mystery box"

	// Economy errors
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgRecipientNotFound   = "recipient not found"
	ErrMsgSelfTransfer        = "cannot send supercash to yourself"
	ErrMsgInvalidReferral     = "invalid referral code"
	ErrMsgReferralUsed        = "referral code already applied"

	// Wheel errors
	ErrMsgAlreadySpun   = "wheel already spun today"
	ErrMsgNoWheelPrizes = "no wheel prizes configured"

	// Session errors
	ErrMsgProfileNotFound  = "profile not found"
	ErrMsgCommandInFlight  = "command already in progress"
	ErrMsgCatalogNotLoaded = "catalog not loaded"

	// Database/System errors
	ErrMsgBackendUnavailable = "backend unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInstanceNotFound = errors.New(ErrMsgInstanceNotFound)
	ErrHeroNotFound     = errors.New(ErrMsgHeroNotFound)
	ErrAlreadyClaimed   = errors.New(ErrMsgAlreadyClaimed)
	ErrNoStarterHeroes  = errors.New(ErrMsgNoStarterHeroes)
	ErrNoEligibleHeroes = errors.New(ErrMsgNoEligibleHeroes)

	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrRecipientNotFound   = errors.New(ErrMsgRecipientNotFound)
	ErrSelfTransfer        = errors.New(ErrMsgSelfTransfer)
	ErrInvalidReferral     = errors.New(ErrMsgInvalidReferral)
	ErrReferralUsed        = errors.New(ErrMsgReferralUsed)

	ErrAlreadySpun   = errors.New(ErrMsgAlreadySpun)
	ErrNoWheelPrizes = errors.New(ErrMsgNoWheelPrizes)

	ErrProfileNotFound  = errors.New(ErrMsgProfileNotFound)
	ErrCommandInFlight  = errors.New(ErrMsgCommandInFlight)
	ErrCatalogNotLoaded = errors.New(ErrMsgCatalogNotLoaded)

	ErrBackendUnavailable = errors.New(ErrMsgBackendUnavailable)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
