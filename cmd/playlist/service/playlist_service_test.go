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

func seedUser(t *testing.T, id int64, name string) {
	t.Helper()
	user := &model.User{UserId: id, UserName: name, Email: name + "@example.com", Password: "hashed"}
	if err := db.DB.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func seedVideo(t *testing.T, id, ownerId int64, title string) {
	t.Helper()
	video := &model.Video{VideoId: id, UserId: ownerId, Title: title, IsPublished: true}
	if err := db.DB.Create(video).Error; err != nil {
		t.Fatalf("seed video: %v", err)
	}
}

func TestCreateRequiresNameAndDescription(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "alice")
	svc := NewPlaylistService(context.Background())

	if _, err := svc.Create(1, "", "desc"); errno.ConvertErr(err).ErrCode != 400 {
		t.Fatalf("err = %v, want 400 for blank name", err)
	}
	if _, err := svc.Create(1, "name", " "); errno.ConvertErr(err).ErrCode != 400 {
		t.Fatalf("err = %v, want 400 for blank description", err)
	}
	if _, err := svc.Create(1, "favorites", "good ones"); err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestAddVideoDuplicateIsNotAnError(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "alice")
	seedVideo(t, 10, 1, "first")
	svc := NewPlaylistService(context.Background())

	playlist, err := svc.Create(1, "favorites", "good ones")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, alreadyPresent, err := svc.AddVideo(playlist.PlaylistId, 10, 1)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if alreadyPresent {
		t.Fatal("first add should not report the video as already present")
	}
	view, alreadyPresent, err := svc.AddVideo(playlist.PlaylistId, 10, 1)
	if err != nil {
		t.Fatalf("duplicate add: %v", err)
	}
	if !alreadyPresent {
		t.Fatal("duplicate add should report the video as already present")
	}
	if len(view.Videos) != 1 {
		t.Fatalf("got %d videos, duplicate must not add a second entry", len(view.Videos))
	}
}

func TestAddVideoRequiresMatchingOwners(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "alice")
	seedUser(t, 2, "bob")
	seedVideo(t, 10, 2, "bobs clip")
	svc := NewPlaylistService(context.Background())

	playlist, err := svc.Create(1, "favorites", "good ones")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, _, err = svc.AddVideo(playlist.PlaylistId, 10, 1)
	e := errno.ConvertErr(err)
	if e.ErrCode != 403 {
		t.Fatalf("err = %v, want a 403", err)
	}
	if e.ErrMsg != "Video owner and playlist owner should be same" {
		t.Fatalf("message = %q", e.ErrMsg)
	}
}

func TestDeleteRejectsNonOwnerAndKeepsPlaylist(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "alice")
	seedUser(t, 2, "bob")
	svc := NewPlaylistService(context.Background())

	playlist, err := svc.Create(1, "favorites", "good ones")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(playlist.PlaylistId, 2); errno.ConvertErr(err).ErrCode != 403 {
		t.Fatalf("err = %v, want 403 for non-owner", err)
	}
	if _, err := db.GetPlaylist(context.Background(), playlist.PlaylistId); err != nil {
		t.Fatalf("playlist should survive a rejected delete: %v", err)
	}

	if err := svc.Delete(playlist.PlaylistId, 1); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestRemoveVideoNotInPlaylist(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "alice")
	seedVideo(t, 10, 1, "first")
	svc := NewPlaylistService(context.Background())

	playlist, err := svc.Create(1, "favorites", "good ones")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.RemoveVideo(playlist.PlaylistId, 10, 1); errno.ConvertErr(err).ErrCode != 404 {
		t.Fatalf("err = %v, want 404 for absent video", err)
	}
}

func TestListByUserEmptyIsNotFound(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "alice")
	svc := NewPlaylistService(context.Background())

	if _, err := svc.ListByUser(1); errno.ConvertErr(err).ErrCode != 404 {
		t.Fatalf("err = %v, want 404 for empty list", err)
	}
}
