package gateway

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// SandboxGateway simulates a charge provider for development. Charges
// succeed or fail at random so both result paths stay exercised, and it
// never returns a transport error.
type SandboxGateway struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *SandboxGateway) Name() string { return "sandbox" }

func (g *SandboxGateway) Charge(req ChargeRequest) (*ChargeResult, error) {
	g.mu.Lock()
	success := g.rng.Intn(2) == 0
	g.mu.Unlock()

	return &ChargeResult{
		Success:   success,
		Reference: fmt.Sprintf("SBX-%s", req.OrderID),
		RawDetail: map[string]any{
			"provider":  "sandbox",
			"simulated": true,
			"order_id":  req.OrderID,
			"amount":    req.Amount,
			"currency":  req.Currency,
			"outcome":   outcome(success),
		},
	}, nil
}

func outcome(success bool) string {
	if success {
		return "settlement"
	}
	return "deny"
}
