package db

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

// setupTestDB swaps the package connection for an isolated in-memory
// database. One open connection keeps every statement on the same memory db.
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
	if err := Migrate(gdb); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	DB = gdb
	t.Cleanup(func() { sqlDB.Close() })
}

func testTime(offset int) string {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(offset) * time.Minute).Format(constants.TimeFormat)
}

func seedUser(t *testing.T, id int64, name string) {
	t.Helper()
	user := &model.User{
		UserId:    id,
		UserName:  name,
		Email:     name + "@example.com",
		FullName:  "Test " + name,
		Password:  "hashed",
		CreatedAt: testTime(0),
		UpdatedAt: testTime(0),
	}
	if err := DB.Create(user).Error; err != nil {
		t.Fatalf("seed user %d: %v", id, err)
	}
}

func seedVideo(t *testing.T, id, ownerId int64, title string, published bool, offset int) {
	t.Helper()
	video := &model.Video{
		VideoId:     id,
		UserId:      ownerId,
		Title:       title,
		Description: "about " + title,
		VideoUrl:    fmt.Sprintf("http://cdn/videos/%d.mp4", id),
		Duration:    120,
		IsPublished: published,
		CreatedAt:   testTime(offset),
		UpdatedAt:   testTime(offset),
	}
	if err := DB.Create(video).Error; err != nil {
		t.Fatalf("seed video %d: %v", id, err)
	}
}

func seedComment(t *testing.T, id, videoId, userId int64, content string, offset int) {
	t.Helper()
	comment := &model.Comment{
		CommentId: id,
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
		CreatedAt: testTime(offset),
		UpdatedAt: testTime(offset),
	}
	if err := DB.Create(comment).Error; err != nil {
		t.Fatalf("seed comment %d: %v", id, err)
	}
}
