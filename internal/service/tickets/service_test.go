package tickets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EVP-GatewayService/internal/domain"
	"github.com/m04kA/EVP-GatewayService/internal/integrations/platformapi"
	"github.com/m04kA/EVP-GatewayService/internal/service/tickets/models"
)

type fakePlatform struct {
	created   []*platformapi.CreateTicketOrderRequest
	idemKeys  []string
	nextOrder *domain.TicketOrder
	createErr error
	getErr    error
}

func (f *fakePlatform) CreateTicketOrder(_ context.Context, req *platformapi.CreateTicketOrderRequest, idempotencyKey string) (*domain.TicketOrder, error) {
	f.created = append(f.created, req)
	f.idemKeys = append(f.idemKeys, idempotencyKey)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.nextOrder, nil
}

func (f *fakePlatform) GetTicketOrder(_ context.Context, _ string) (*domain.TicketOrder, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.nextOrder, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testOrder() *domain.TicketOrder {
	return &domain.TicketOrder{
		ID:           "ord-1",
		UserID:       7,
		EventID:      3,
		TicketTypeID: 2,
		Quantity:     2,
		AmountCents:  15000,
		Currency:     "EUR",
		Status:       domain.OrderStatusPending,
		PaymentURL:   "https://pay.example.com/ord-1",
		CreatedAt:    time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func validPurchase() *models.PurchaseTicketRequest {
	return &models.PurchaseTicketRequest{
		UserID:       7,
		EventID:      3,
		TicketTypeID: 2,
		Quantity:     2,
	}
}

func TestPurchase(t *testing.T) {
	platform := &fakePlatform{nextOrder: testOrder()}
	svc := NewService(platform, nopLogger{})

	resp, err := svc.Purchase(context.Background(), validPurchase())
	require.NoError(t, err)

	assert.Equal(t, "ord-1", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "https://pay.example.com/ord-1", resp.PaymentURL)

	// Каждая покупка несет свой ключ идемпотентности
	require.Len(t, platform.idemKeys, 1)
	assert.NotEmpty(t, platform.idemKeys[0])
}

func TestPurchase_QuantityLimits(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantErr  bool
	}{
		{"zero", 0, true},
		{"negative", -1, true},
		{"one", 1, false},
		{"max", domain.MaxTicketQuantity, false},
		{"above max", domain.MaxTicketQuantity + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform := &fakePlatform{nextOrder: testOrder()}
			svc := NewService(platform, nopLogger{})

			req := validPurchase()
			req.Quantity = tt.quantity

			_, err := svc.Purchase(context.Background(), req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Empty(t, platform.created)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPurchase_InvalidIDs(t *testing.T) {
	svc := NewService(&fakePlatform{}, nopLogger{})

	req := validPurchase()
	req.UserID = 0
	_, err := svc.Purchase(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validPurchase()
	req.EventID = -1
	_, err = svc.Purchase(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetOrder(t *testing.T) {
	platform := &fakePlatform{nextOrder: testOrder()}
	svc := NewService(platform, nopLogger{})

	resp, err := svc.GetOrder(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", resp.ID)
}

func TestGetOrder_NotFound(t *testing.T) {
	platform := &fakePlatform{getErr: platformapi.ErrOrderNotFound}
	svc := NewService(platform, nopLogger{})

	_, err := svc.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrder_EmptyID(t *testing.T) {
	svc := NewService(&fakePlatform{}, nopLogger{})

	_, err := svc.GetOrder(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
