package db

import (
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"

	"vidtube.com/cmd/model"
	"vidtube.com/config"
)

var DB *gorm.DB

// Init opens the MySQL connection and migrates the schema.
func Init() {
	var err error
	dsn := strings.Join([]string{
		config.ConfigInfo.Mysql.Username, ":", config.ConfigInfo.Mysql.Password,
		"@tcp(", config.ConfigInfo.Mysql.Addr, ")/", config.ConfigInfo.Mysql.Database,
		"?charset=", config.ConfigInfo.Mysql.Charset, "&parseTime=True&loc=Local",
	}, "")
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		panic(err)
	}
	if err = Migrate(DB); err != nil {
		panic(err)
	}
}

// Migrate creates or updates all tables. Tests reuse it against sqlite.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.User{},
		&model.WatchHistory{},
		&model.Video{},
		&model.Comment{},
		&model.Tweet{},
		&model.Like{},
		&model.Subscription{},
		&model.Playlist{},
		&model.PlaylistVideo{},
	)
}
