package gateway

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// MidtransGateway charges through the Midtrans Snap API.
type MidtransGateway struct {
	client snap.Client
}

func NewMidtransGateway(serverKey string) *MidtransGateway {
	g := &MidtransGateway{}
	g.client.New(serverKey, midtrans.Sandbox)
	return g
}

func (g *MidtransGateway) Name() string { return "midtrans" }

func (g *MidtransGateway) Charge(req ChargeRequest) (*ChargeResult, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.Email,
		},
	}

	resp, err := g.client.CreateTransaction(snapReq)
	if err != nil {
		return nil, err
	}

	return &ChargeResult{
		Success:   true,
		Reference: resp.Token,
		RawDetail: map[string]any{
			"provider":     "midtrans",
			"snap_token":   resp.Token,
			"redirect_url": resp.RedirectURL,
		},
	}, nil
}
