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

func TestToggleSubscriptionAddAndRemove(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "alice")
	seedUser(t, 2, "bob")
	svc := NewRelationService(context.Background())

	result, sub, err := svc.ToggleSubscription(1, 2)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if result.State != "added" || sub == nil {
		t.Fatalf("result = %+v, want added with subscription", result)
	}

	result, sub, err = svc.ToggleSubscription(1, 2)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if result.State != "removed" || sub != nil {
		t.Fatalf("result = %+v, want removed without subscription", result)
	}
}

func TestSelfSubscriptionRejectedBeforeAnyWrite(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "alice")
	svc := NewRelationService(context.Background())

	_, _, err := svc.ToggleSubscription(1, 1)
	e := errno.ConvertErr(err)
	if e.ErrCode != 403 {
		t.Fatalf("err = %v, want a 403", err)
	}
	if e.ErrMsg != "One cannot subscribe his own channel" {
		t.Fatalf("message = %q", e.ErrMsg)
	}

	var count int64
	if err := db.DB.Model(&model.Subscription{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("%d subscription rows written on a rejected toggle", count)
	}
}

func TestToggleSubscriptionUnknownChannel(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "alice")
	svc := NewRelationService(context.Background())

	_, _, err := svc.ToggleSubscription(1, 404)
	if errno.ConvertErr(err).ErrCode != 404 {
		t.Fatalf("err = %v, want a 404", err)
	}
}

func TestSubscribersListIsOwnerOnly(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "alice")
	seedUser(t, 2, "bob")
	svc := NewRelationService(context.Background())

	if _, _, err := svc.ToggleSubscription(2, 1); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	entries, err := svc.Subscribers(1, 1)
	if err != nil {
		t.Fatalf("owner list: %v", err)
	}
	if len(entries) != 1 || entries[0].Subscriber.UserName != "bob" {
		t.Fatalf("entries = %+v, want bob", entries)
	}

	if _, err := svc.Subscribers(1, 2); errno.ConvertErr(err).ErrCode != 403 {
		t.Fatalf("err = %v, want 403 for non-owner", err)
	}
}

func TestSubscribedChannelsIsSelfOnly(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "alice")
	seedUser(t, 2, "bob")
	svc := NewRelationService(context.Background())

	if _, _, err := svc.ToggleSubscription(1, 2); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	entries, err := svc.SubscribedChannels(1, 1)
	if err != nil {
		t.Fatalf("self list: %v", err)
	}
	if len(entries) != 1 || entries[0].Channel.UserName != "bob" {
		t.Fatalf("entries = %+v, want bob", entries)
	}

	if _, err := svc.SubscribedChannels(1, 2); errno.ConvertErr(err).ErrCode != 403 {
		t.Fatalf("err = %v, want 403 for another user", err)
	}
}
