package db

import (
	"context"
	"testing"
	"time"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

func TestToggleLikeTwiceReturnsToBaseline(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 10, 1, "first", true, 0)
	target := model.LikeTarget{Kind: model.TargetVideo, Id: 10}

	added, err := ToggleLike(ctx, target, 1)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !added {
		t.Fatal("first toggle should add the like")
	}
	if has, _ := HasLike(ctx, target, 1); !has {
		t.Fatal("like row missing after add")
	}
	if counter, _ := GetLikeCounter(ctx, target); counter != 1 {
		t.Fatalf("counter after add = %d, want 1", counter)
	}

	added, err = ToggleLike(ctx, target, 1)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if added {
		t.Fatal("second toggle should remove the like")
	}
	if has, _ := HasLike(ctx, target, 1); has {
		t.Fatal("like row still present after remove")
	}
	if counter, _ := GetLikeCounter(ctx, target); counter != 0 {
		t.Fatalf("counter after remove = %d, want 0", counter)
	}
}

func TestToggleLikeCounterMatchesRowCount(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedUser(t, 2, "bob")
	seedUser(t, 3, "carol")
	seedVideo(t, 10, 1, "first", true, 0)
	target := model.LikeTarget{Kind: model.TargetVideo, Id: 10}

	for _, userId := range []int64{1, 2, 3} {
		if _, err := ToggleLike(ctx, target, userId); err != nil {
			t.Fatalf("toggle for user %d: %v", userId, err)
		}
	}
	rows, err := CountLikes(ctx, target)
	if err != nil {
		t.Fatalf("count likes: %v", err)
	}
	counter, err := GetLikeCounter(ctx, target)
	if err != nil {
		t.Fatalf("read counter: %v", err)
	}
	if rows != 3 || counter != 3 {
		t.Fatalf("rows = %d, counter = %d, want both 3", rows, counter)
	}
}

func TestLikeUniqueIndexRejectsDuplicate(t *testing.T) {
	setupTestDB(t)
	seedUser(t, 1, "alice")
	seedVideo(t, 10, 1, "first", true, 0)

	like := model.Like{
		LikeId:     100,
		UserId:     1,
		TargetType: string(model.TargetVideo),
		TargetId:   10,
		CreatedAt:  time.Now().Format(constants.TimeFormat),
	}
	if err := DB.Create(&like).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}
	dup := like
	dup.LikeId = 101
	if err := DB.Create(&dup).Error; err == nil {
		t.Fatal("duplicate (user, target) like should violate the unique index")
	}
}

func TestSetLikeCounterRepairsDrift(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 10, 1, "first", true, 0)
	target := model.LikeTarget{Kind: model.TargetVideo, Id: 10}

	if _, err := ToggleLike(ctx, target, 1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	// simulate drift
	if err := DB.Model(&model.Video{}).Where("video_id = ?", 10).
		UpdateColumn("likes", 42).Error; err != nil {
		t.Fatalf("inject drift: %v", err)
	}

	rows, err := CountLikes(ctx, target)
	if err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if err := SetLikeCounter(ctx, target, rows); err != nil {
		t.Fatalf("set counter: %v", err)
	}
	if counter, _ := GetLikeCounter(ctx, target); counter != 1 {
		t.Fatalf("counter after reconcile = %d, want 1", counter)
	}
}

func TestListLikedVideosNewestLikeFirst(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedUser(t, 2, "bob")
	seedVideo(t, 10, 2, "first", true, 0)
	seedVideo(t, 11, 2, "second", true, 1)

	likes := []model.Like{
		{LikeId: 100, UserId: 1, TargetType: string(model.TargetVideo), TargetId: 10, CreatedAt: testTime(5)},
		{LikeId: 101, UserId: 1, TargetType: string(model.TargetVideo), TargetId: 11, CreatedAt: testTime(6)},
		{LikeId: 102, UserId: 1, TargetType: string(model.TargetComment), TargetId: 99, CreatedAt: testTime(7)},
	}
	for i := range likes {
		if err := DB.Create(&likes[i]).Error; err != nil {
			t.Fatalf("seed like: %v", err)
		}
	}

	entries, err := ListLikedVideos(ctx, 1)
	if err != nil {
		t.Fatalf("list liked videos: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (comment like must be excluded)", len(entries))
	}
	if entries[0].Video.VideoId != 11 || entries[1].Video.VideoId != 10 {
		t.Fatalf("order = [%d %d], want [11 10]", entries[0].Video.VideoId, entries[1].Video.VideoId)
	}
	if entries[0].Video.Title != "second" {
		t.Fatalf("title = %q, want second", entries[0].Video.Title)
	}
}
