package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/api"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/config"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/db"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/logger"
	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/repository/dao"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.Log.Level); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = prepareDatabase(conf.Postgres, postgresDB); err != nil {
		return err
	}

	if err = config.Watch(configPath, reloadLogLevel); err != nil {
		zap.L().Warn("config hot reload is disabled", zap.Error(err))
	}

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// prepareDatabase seeding rebuilds the tables, so it supersedes auto_migrate.
func prepareDatabase(conf *config.PostgresConfig, postgresDB *gorm.DB) error {
	switch {
	case conf.Seed:
		if err := dao.Seed(postgresDB, dao.DefaultSeedData); err != nil {
			return fmt.Errorf("failed to seed database -> %w", err)
		}
		zap.L().Info("database seeded",
			zap.Int("shops", len(dao.DefaultSeedData.Shops)),
			zap.Int("treasures", len(dao.DefaultSeedData.Treasures)),
		)
	case conf.AutoMigrate:
		if err := dao.InitTables(postgresDB); err != nil {
			return fmt.Errorf("failed to migrate database -> %w", err)
		}
	}

	return nil
}

func reloadLogLevel(conf *config.AppConfig, err error) {
	if err != nil {
		zap.L().Error("failed to reload config", zap.Error(err))
		return
	}

	if err = logger.SetLevel(conf.Log.Level); err != nil {
		zap.L().Error("failed to apply log level", zap.Error(err))
		return
	}
	zap.L().Info("log level reloaded", zap.String("level", conf.Log.Level))
}
