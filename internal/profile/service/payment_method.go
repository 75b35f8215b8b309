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
	ErrInvalidPaymentMethodRequest = errors.New("invalid payment method request")
	ErrPaymentMethodNotFound       = errors.New("payment method not found")
)

type PaymentMethodService struct {
	Store store.Store
	Guard *Guard
}

func (s *PaymentMethodService) CreatePaymentMethod(
	ctx context.Context,
	accountID string,
	profileID string,
	kind domain.PaymentMethodKind,
	label string,
	last4 string,
) (domain.PaymentMethod, error) {
	switch kind {
	case domain.PaymentMethodBank, domain.PaymentMethodCard, domain.PaymentMethodPaypal:
	default:
		return domain.PaymentMethod{}, ErrInvalidPaymentMethodRequest
	}
	label = strings.TrimSpace(label)
	if label == "" || len(last4) != 4 {
		return domain.PaymentMethod{}, ErrInvalidPaymentMethodRequest
	}

	if err := s.Guard.RequireWrite(ctx, accountID, profileID); err != nil {
		return domain.PaymentMethod{}, err
	}

	now := time.Now().UTC()
	method := domain.PaymentMethod{
		ID:        idx.New().String(),
		ProfileID: profileID,
		Kind:      kind,
		Label:     label,
		Last4:     last4,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.PaymentMethods().CreatePaymentMethod(ctx, method); err != nil {
		return domain.PaymentMethod{}, err
	}
	return method, nil
}

func (s *PaymentMethodService) GetPaymentMethod(ctx context.Context, accountID, profileID, paymentMethodID string) (domain.PaymentMethod, error) {
	if err := s.Guard.RequireRead(ctx, accountID, profileID); err != nil {
		return domain.PaymentMethod{}, err
	}

	method, err := s.Store.PaymentMethods().GetPaymentMethod(ctx, profileID, paymentMethodID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PaymentMethod{}, ErrPaymentMethodNotFound
		}
		return domain.PaymentMethod{}, err
	}
	return method, nil
}

func (s *PaymentMethodService) ListPaymentMethods(ctx context.Context, accountID, profileID string) ([]domain.PaymentMethod, error) {
	allowed, err := s.Guard.CanRead(ctx, accountID, profileID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return []domain.PaymentMethod{}, nil
	}
	return s.Store.PaymentMethods().ListPaymentMethodsForProfile(ctx, profileID)
}

func (s *PaymentMethodService) DeletePaymentMethod(ctx context.Context, accountID, profileID, paymentMethodID string) error {
	if err := s.Guard.RequireWrite(ctx, accountID, profileID); err != nil {
		return err
	}

	if err := s.Store.PaymentMethods().DeletePaymentMethod(ctx, profileID, paymentMethodID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPaymentMethodNotFound
		}
		return err
	}
	return nil
}
