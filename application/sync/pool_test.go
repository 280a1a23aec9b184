package sync_test

import (
	"context"
	"fmt"
	"reflect"
	gosync "sync"
	"testing"

	appsync "github.com/estoquehub/sync-engine/application/sync"
	"github.com/estoquehub/sync-engine/model"
)

func TestPool_SameResourceProcessesInOrder(t *testing.T) {
	var mu gosync.Mutex
	seen := make(map[string][]string)

	pool := appsync.NewPool(4, 8, func(_ context.Context, payload *model.WebhookPayload) {
		mu.Lock()
		defer mu.Unlock()
		seen[payload.Resource] = append(seen[payload.Resource], payload.Topic)
	})
	pool.Start(context.Background())

	// interleave two resources; each one's deliveries must stay in order
	for i := 0; i < 20; i++ {
		pool.Dispatch(&model.WebhookPayload{Resource: "/items/MLB1", Topic: fmt.Sprintf("a-%02d", i)})
		pool.Dispatch(&model.WebhookPayload{Resource: "/items/MLB2", Topic: fmt.Sprintf("b-%02d", i)})
	}
	pool.Stop()

	for resource, got := range seen {
		if len(got) != 20 {
			t.Fatalf("%s processed %d deliveries, want 20", resource, len(got))
		}
		want := make([]string, 0, 20)
		prefix := got[0][:1]
		for i := 0; i < 20; i++ {
			want = append(want, fmt.Sprintf("%s-%02d", prefix, i))
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%s processed out of order: %v", resource, got)
		}
	}
}

func TestPool_StopWaitsForInflightWork(t *testing.T) {
	done := make(chan struct{})
	pool := appsync.NewPool(1, 1, func(_ context.Context, _ *model.WebhookPayload) {
		close(done)
	})
	pool.Start(context.Background())
	pool.Dispatch(&model.WebhookPayload{Resource: "/items/MLB1"})
	<-done
	pool.Stop()
}
