package database

import (
	"Noted/config"
	"Noted/models"
	"Noted/pkg/log"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	dialector, err := Dialector(conf.Database)
	if err != nil {
		log.L.Fatal("failed to build dialector", zap.Error(err))
	}
	db, err := Open(dialector, conf.Database, conf.Debug())
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	if err := Migrate(db); err != nil {
		log.L.Fatal("failed to migrate database", zap.Error(err))
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db
}

func Dialector(conf *config.Database) (gorm.Dialector, error) {
	if conf.DSN == "" {
		return nil, errors.New("database dsn is empty")
	}
	switch conf.Driver {
	case config.DriverMySQL, "":
		return mysql.Open(conf.DSN), nil
	case config.DriverPostgres:
		return postgres.Open(conf.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

// Open connects through dialector with error translation enabled, so
// unique index violations surface as gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector, conf *config.Database, debug bool) (*gorm.DB, error) {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if conf != nil && conf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}
	if conf != nil && conf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Migrate creates tables and the unique indexes on users.username and
// categories.name.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Note{},
	)
}
