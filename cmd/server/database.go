package main

import (
	"fmt"
	"time"

	"github.com/fadilmartias/hr-backend/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func connectDB(dbCfg *config.DBConfig, appCfg *config.AppConfig, log *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if appCfg.Debug {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dbCfg.ConnectionString()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}

	if appCfg.IsProduction() {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	} else {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	}

	log.Info("connected to database", zap.String("host", dbCfg.Host), zap.String("name", dbCfg.Name))
	return db, nil
}
