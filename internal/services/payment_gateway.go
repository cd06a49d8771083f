package services

import (
	"context"
	"time"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentGateway charges a payment reference. Implementations must honor
// context cancellation; a charge abandoned by the caller must not settle
// later as a side effect.
type PaymentGateway interface {
	Charge(ctx context.Context, reference string, amount float64) (PaymentStatus, error)
}

// SimulatedGateway stands in for a real provider. It waits Delay and then
// confirms every charge. Unlike the fire-and-forget timer it replaces, the
// wait aborts when the context is cancelled.
type SimulatedGateway struct {
	Delay time.Duration
}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{Delay: 2 * time.Second}
}

func (g *SimulatedGateway) Charge(ctx context.Context, _ string, _ float64) (PaymentStatus, error) {
	timer := time.NewTimer(g.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return PaymentFailed, ctx.Err()
	case <-timer.C:
		return PaymentConfirmed, nil
	}
}
