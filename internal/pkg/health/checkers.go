package health

import (
	"context"
	"fmt"
	"runtime"

	"gorm.io/gorm"
)

// DatabasePingCheck returns a CheckFunc that verifies database connectivity
// by pinging the underlying connection pool.
func DatabasePingCheck(db *gorm.DB) CheckFunc {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// GoroutineCountCheck returns a CheckFunc that reports unhealthy when the
// number of goroutines exceeds the given threshold. This is useful to detect
// goroutine leaks.
func GoroutineCountCheck(threshold int) CheckFunc {
	return func(_ context.Context) error {
		count := runtime.NumGoroutine()
		if count > threshold {
			return fmt.Errorf("goroutine count %d exceeds threshold %d", count, threshold)
		}
		return nil
	}
}
