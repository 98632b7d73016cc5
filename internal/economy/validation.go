package economy

import (
	"fmt"
	"strings"

	"github.com/osse101/HeroVerse_Go/internal/domain"
)

// validateTransfer checks a send before it reaches the backend
func validateTransfer(toUsername string, amount int64) (string, error) {
	toUsername = strings.TrimSpace(toUsername)
	if toUsername == "" || len(toUsername) > MaxUsernameLength {
		return "", fmt.Errorf(ErrMsgInvalidUsernameFmt, MaxUsernameLength, domain.ErrInvalidInput)
	}
	if amount < MinTransferAmount {
		return "", fmt.Errorf(ErrMsgInvalidAmountFmt, MinTransferAmount, amount, domain.ErrInvalidInput)
	}
	return toUsername, nil
}

// normalizeReferralCode trims and upper-cases a code
func normalizeReferralCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || len(code) > MaxReferralLength {
		return "", fmt.Errorf(ErrMsgInvalidReferralFmt, MaxReferralLength, domain.ErrInvalidInput)
	}
	return code, nil
}
