package leaderboard

import (
	"context"

	"github.com/osse101/HeroVerse_Go/internal/domain"
	"github.com/osse101/HeroVerse_Go/internal/event"
)

// balanceCommands move SuperCash and make cached pages stale
var balanceCommands = map[string]bool{
	domain.CommandCollect:       true,
	domain.CommandMysteryBox:    true,
	domain.CommandSendSuperCash: true,
	domain.CommandApplyReferral: true,
	domain.CommandSpinWheel:     true,
}

// RegisterInvalidation purges svc whenever a balance-changing command succeeds
func RegisterInvalidation(bus event.Bus, svc Service) {
	bus.Subscribe(event.CommandCompleted, func(_ context.Context, evt event.Event) error {
		p, err := event.DecodePayload[event.CommandCompletedPayloadV1](evt.Payload)
		if err != nil {
			return nil
		}
		if p.Success && balanceCommands[p.Command] {
			svc.Invalidate()
		}
		return nil
	})
}
