package velocity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/estoquehub/sync-engine/constant"
	orderrepo "github.com/estoquehub/sync-engine/repository/order"
	"github.com/estoquehub/sync-engine/utils/errors"
	"github.com/estoquehub/sync-engine/utils/logger"
)

type VelocityApp interface {
	DailyVelocity(ctx context.Context, productID uint64, periodDays int) (float64, error)
}

type velocityAppImpl struct {
	orderRepo orderrepo.OrderRepository
}

func NewVelocityApp(orderRepo orderrepo.OrderRepository) VelocityApp {
	return &velocityAppImpl{orderRepo: orderRepo}
}

// DailyVelocity is units sold in the trailing window divided by the elapsed
// days actually covered by data. When order history starts inside the window
// (a newly tracked product), dividing by the nominal period length would
// under-count demand, so the divisor shrinks to the days since the first
// qualifying order. Deterministic given the same order records.
func (s *velocityAppImpl) DailyVelocity(ctx context.Context, productID uint64, periodDays int) (float64, error) {
	if periodDays <= 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	now := time.Now()
	since := now.AddDate(0, 0, -periodDays)

	units, err := s.orderRepo.SoldUnitsByProduct(ctx, productID, since, constant.CommittedOrderStatuses)
	if err != nil {
		logger.Error("[DailyVelocity] sum sold units failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if units == 0 {
		return 0, nil
	}

	elapsed := float64(periodDays)
	earliest, err := s.orderRepo.EarliestOrderAtByProduct(ctx, productID, since, constant.CommittedOrderStatuses)
	if err != nil {
		logger.Error("[DailyVelocity] earliest order lookup failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if earliest != nil {
		days := now.Sub(*earliest).Hours() / 24
		if days < 1 {
			days = 1
		}
		if days < elapsed {
			elapsed = days
		}
	}

	return float64(units) / elapsed, nil
}
