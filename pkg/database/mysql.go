package database

import (
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/config"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	gormopentracing "gorm.io/plugin/opentracing"
)

// Init opens the mysql connection pool and migrates the schema.
func Init() (*gorm.DB, error) {
	DB, err := Open(utils.GetMysqlDsn())
	if err != nil {
		return nil, err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB failed")
	}
	sqlDB.SetMaxOpenConns(config.ConfigInfo.Mysql.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.ConfigInfo.Mysql.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	hlog.Infof("Connect mysql success: %s/%s", config.ConfigInfo.Mysql.Addr, config.ConfigInfo.Mysql.Database)
	return DB, nil
}

// Open connects to dsn with the api's gorm settings and migrates the schema.
func Open(dsn string) (*gorm.DB, error) {
	DB, err := gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
			TranslateError:         true,
			// Deleting a video must not be blocked by the comments and likes that reference it.
			DisableForeignKeyConstraintWhenMigrating: true,
			Logger:                                   logger.Default.LogMode(logger.Warn),
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "open mysql failed")
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		return nil, errors.Wrap(err, "register opentracing plugin failed")
	}
	if err = model.AutoMigrate(DB); err != nil {
		return nil, errors.Wrap(err, "auto migrate failed")
	}
	return DB, nil
}

// IsDuplicateKey reports whether err is a mysql unique index violation.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
