package sync_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	appsync "github.com/estoquehub/sync-engine/application/sync"
	"github.com/estoquehub/sync-engine/cmd/config"
	syncappmocks "github.com/estoquehub/sync-engine/mocks/application/sync"
	accountmocks "github.com/estoquehub/sync-engine/mocks/repository/account"
	"github.com/estoquehub/sync-engine/model"
)

func TestScheduler_SkipsWhileSyncInFlight(t *testing.T) {
	cfg := &config.Config{
		Sync: config.SyncConfig{
			PollInterval: 5 * time.Millisecond,
		},
		Replenish: config.ReplenishConfig{
			AnalysisPeriodDays: 30,
		},
	}

	accountRepo := accountmocks.NewAccountRepository(t)
	syncApp := syncappmocks.NewSyncApp(t)

	accountRepo.
		On("ListActive", mock.Anything).
		Return([]model.ExternalAccountEntity{{ID: 1, ExternalUserID: 777, Active: true}}, nil)

	// the first round blocks until released; later rounds for the same
	// account must be skipped, not queued behind it
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	syncApp.
		On("SyncOrders", mock.Anything, uint64(1), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			if atomic.AddInt32(&calls, 1) == 1 {
				close(started)
			}
			<-release
		}).
		Return(&model.OrderSyncReport{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	scheduler := appsync.NewScheduler(cfg, syncApp, accountRepo)
	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	<-started
	// let several ticks pass while the first sync is still running
	time.Sleep(50 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("SyncOrders started %d times while one was in flight, want 1", got)
	}

	close(release)
	cancel()
	<-done
}
