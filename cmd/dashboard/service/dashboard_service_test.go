package service

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vidtube.com/cmd/model"
	"vidtube.com/dal/db"
	"vidtube.com/pkg/errno"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	db.DB = gdb
	t.Cleanup(func() { sqlDB.Close() })
}

func TestStatsUnknownChannel(t *testing.T) {
	setupTestDB(t)
	svc := NewDashboardService(context.Background())

	if _, err := svc.Stats(404); errno.ConvertErr(err).ErrCode != 404 {
		t.Fatalf("err = %v, want 404 for unknown channel", err)
	}
}

func TestVideosEmptyChannelIsNotFound(t *testing.T) {
	setupTestDB(t)
	user := &model.User{UserId: 1, UserName: "alice", Email: "alice@example.com", Password: "hashed"}
	if err := db.DB.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := NewDashboardService(context.Background())

	if _, err := svc.Videos(1); errno.ConvertErr(err).ErrCode != 404 {
		t.Fatalf("err = %v, want 404 for empty channel", err)
	}
}

func TestStatsAndVideos(t *testing.T) {
	setupTestDB(t)
	user := &model.User{UserId: 1, UserName: "alice", Email: "alice@example.com", Password: "hashed"}
	if err := db.DB.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	for i := int64(1); i <= 2; i++ {
		video := &model.Video{VideoId: i, UserId: 1, Title: fmt.Sprintf("v%d", i), IsPublished: true}
		if err := db.DB.Create(video).Error; err != nil {
			t.Fatalf("seed video: %v", err)
		}
	}
	svc := NewDashboardService(context.Background())

	stats, err := svc.Stats(1)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalVideos != 2 {
		t.Fatalf("total videos = %d, want 2", stats.TotalVideos)
	}

	videos, err := svc.Videos(1)
	if err != nil {
		t.Fatalf("videos: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("got %d videos, want 2", len(videos))
	}
}
