package sync

import (
	"context"
	gosync "sync"
	"time"

	"go.uber.org/zap"

	"github.com/estoquehub/sync-engine/cmd/config"
	accountrepo "github.com/estoquehub/sync-engine/repository/account"
	"github.com/estoquehub/sync-engine/utils/logger"
)

// Scheduler periodically reconciles orders for every active account. It is
// the safety net for webhook deliveries that never arrived.
type Scheduler struct {
	config      *config.Config
	syncApp     SyncApp
	accountRepo accountrepo.AccountRepository

	running gosync.Map
	wg      gosync.WaitGroup
}

func NewScheduler(cfg *config.Config, syncApp SyncApp, accountRepo accountrepo.AccountRepository) *Scheduler {
	return &Scheduler{
		config:      cfg,
		syncApp:     syncApp,
		accountRepo: accountRepo,
	}
}

// Run blocks until ctx is cancelled, kicking off one reconciliation round per
// tick. Rounds for an account that is still syncing are skipped, never queued.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.config.Sync.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			return
		case <-ticker.C:
			s.runRound(ctx)
		}
	}
}

func (s *Scheduler) runRound(ctx context.Context) {
	accounts, err := s.accountRepo.ListActive(ctx)
	if err != nil {
		logger.Error("[runRound] list accounts failed", zap.String("error", err.Error()))
		return
	}

	since := time.Now().AddDate(0, 0, -s.config.Replenish.AnalysisPeriodDays)
	for _, acct := range accounts {
		accountID := acct.ID
		if _, loaded := s.running.LoadOrStore(accountID, struct{}{}); loaded {
			logger.Info("[runRound] previous sync still in flight, skipping", zap.Uint64("account_id", accountID))
			continue
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.running.Delete(accountID)

			report, err := s.syncApp.SyncOrders(ctx, accountID, since)
			if err != nil {
				logger.Error("[runRound] order sync failed", zap.Uint64("account_id", accountID), zap.String("error", err.Error()))
				return
			}
			logger.Info("[runRound] order sync finished",
				zap.Uint64("account_id", accountID),
				zap.Int("pages_fetched", report.PagesFetched),
				zap.Int("pages_skipped", report.PagesSkipped),
				zap.Int("orders_upserted", report.OrdersUpserted))
		}()
	}
}
