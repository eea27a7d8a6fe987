package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/restoservice/repair-admin/internal/models"
)

// Provider creates a checkout link for an approved budget.
type Provider interface {
	BudgetPaymentLink(ctx context.Context, o *models.RepairOrder) (string, error)
}

type MercadoPago struct {
	client preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{client: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) BudgetPaymentLink(
	ctx context.Context,
	o *models.RepairOrder,
) (string, error) {

	if o.Budget == nil {
		return "", fmt.Errorf("order %s has no budget", o.OrderNumber)
	}

	req := preference.Request{
		ExternalReference: o.OrderNumber,
		Items: []preference.ItemRequest{
			{
				Title:       fmt.Sprintf("Repair %s - %s %s", o.OrderNumber, o.Brand, o.Model),
				Description: o.Budget.Details,
				Quantity:    1,
				UnitPrice:   o.Budget.Amount,
			},
		},
	}

	res, err := m.client.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("mercadopago preference: %w", err)
	}

	return res.InitPoint, nil
}

var _ Provider = (*MercadoPago)(nil)
