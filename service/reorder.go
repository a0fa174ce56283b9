package service

import (
	"Noted/config"
	"context"

	"github.com/sourcegraph/conc/pool"
	"gorm.io/gorm"
)

const defaultOrderWorkers = 10

// orderUpdater writes one sort key through db.
type orderUpdater func(ctx context.Context, db *gorm.DB, id uint64, order int) error

type orderPlan struct {
	atomic  bool
	workers int
}

// newOrderPlan caps the fan-out at the database pool size so updates do
// not pile up waiting for a connection.
func newOrderPlan(conf *config.Config) orderPlan {
	workers := conf.Database.MaxOpenConns
	if workers <= 0 {
		workers = defaultOrderWorkers
	}
	return orderPlan{atomic: conf.Reorder.Atomic, workers: workers}
}

// applyOrder gives ids[i] the order i. A zero id marks a slot that could
// not be resolved; it is skipped but still occupies its index.
//
// Without atomic every update runs independently, at most plan.workers at
// a time, so a failure can leave the batch half applied. With atomic the
// batch runs in one transaction.
func applyOrder(ctx context.Context, db *gorm.DB, ids []uint64, plan orderPlan, update orderUpdater) error {
	if plan.atomic {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for i, id := range ids {
				if id == 0 {
					continue
				}
				if err := update(ctx, tx, id, i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	workers := plan.workers
	if workers <= 0 {
		workers = defaultOrderWorkers
	}
	p := pool.New().WithMaxGoroutines(workers).WithContext(ctx)
	for i, id := range ids {
		if id == 0 {
			continue
		}
		p.Go(func(ctx context.Context) error {
			return update(ctx, db, id, i)
		})
	}
	return p.Wait()
}
