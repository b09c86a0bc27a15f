package db

import (
	"context"
	"fmt"
	"time"

	"musicgraph/config"
	"musicgraph/logger"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DSN builds the MySQL data source name for cfg. The collation is pinned so
// literals, CTE columns and table columns always compare under the same rules.
func DSN(cfg *config.Config) string {
	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPassword
	mc.Net = "tcp"
	mc.Addr = cfg.StoreEndpoint()
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Collation = KeyCollation
	mc.Loc = time.UTC
	return mc.FormatDSN()
}

// Connect opens the store connection, retrying with a constant backoff until
// the connection answers a ping or the attempt budget is spent. Exhausting the
// budget returns an error wrapping ErrStoreUnavailable.
func Connect(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	attempts := cfg.DBConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var conn *gorm.DB
	attempt := 0
	operation := func() error {
		attempt++
		db, err := open(ctx, DSN(cfg))
		if err != nil {
			logger.Warn("Graph store connection attempt failed",
				logger.Int("attempt", attempt),
				logger.Int("maxAttempts", attempts),
				logger.ErrorField(err))
			return err
		}
		conn = db
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(cfg.DBConnectInterval), uint64(attempts-1)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("%w after %d attempts: %v", ErrStoreUnavailable, attempt, err)
	}

	logger.Info("Connected to graph store",
		logger.String("endpoint", cfg.StoreEndpoint()),
		logger.String("database", cfg.DBName),
		logger.Int("attempts", attempt))
	return conn, nil
}

func open(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
		SkipDefaultTransaction:                   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database with GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
