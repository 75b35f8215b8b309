package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
	"github.com/fairstand/fairstand/pkg/idx"
)

var (
	ErrInvalidOrderRequest = errors.New("invalid order request")
	ErrOrderNotFound       = errors.New("order not found")
)

type OrderService struct {
	Store store.Store
	Guard *Guard
}

func (s *OrderService) CreateOrder(
	ctx context.Context,
	accountID string,
	profileID string,
	campaignID string,
	buyerEmail string,
	totalCents int64,
) (domain.Order, error) {
	buyerEmail = strings.ToLower(strings.TrimSpace(buyerEmail))
	if buyerEmail == "" || totalCents <= 0 {
		return domain.Order{}, ErrInvalidOrderRequest
	}

	if err := s.Guard.RequireWrite(ctx, accountID, profileID); err != nil {
		return domain.Order{}, err
	}

	if campaignID != "" {
		if _, err := s.Store.Campaigns().GetCampaign(ctx, profileID, campaignID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Order{}, ErrCampaignNotFound
			}
			return domain.Order{}, err
		}
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:         idx.New().String(),
		ProfileID:  profileID,
		CampaignID: campaignID,
		BuyerEmail: buyerEmail,
		TotalCents: totalCents,
		Status:     domain.OrderPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Store.Orders().CreateOrder(ctx, order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, accountID, profileID, orderID string) (domain.Order, error) {
	if err := s.Guard.RequireRead(ctx, accountID, profileID); err != nil {
		return domain.Order{}, err
	}

	order, err := s.Store.Orders().GetOrder(ctx, profileID, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, accountID, profileID string) ([]domain.Order, error) {
	allowed, err := s.Guard.CanRead(ctx, accountID, profileID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return []domain.Order{}, nil
	}
	return s.Store.Orders().ListOrdersForProfile(ctx, profileID)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, accountID, profileID, orderID string, status domain.OrderStatus) (domain.Order, error) {
	switch status {
	case domain.OrderPending, domain.OrderPaid, domain.OrderFulfilled, domain.OrderCancelled:
	default:
		return domain.Order{}, ErrInvalidOrderRequest
	}

	if err := s.Guard.RequireWrite(ctx, accountID, profileID); err != nil {
		return domain.Order{}, err
	}

	if err := s.Store.Orders().UpdateOrderStatus(ctx, profileID, orderID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return s.Store.Orders().GetOrder(ctx, profileID, orderID)
}
