package db

import (
	"context"
	"fmt"
	"testing"

	"vidtube.com/pkg/utils"
)

func TestListVideosPagination(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	for i := 1; i <= 25; i++ {
		seedVideo(t, int64(i), 1, fmt.Sprintf("video-%02d", i), true, i)
	}

	filter := VideoFilter{SortBy: "createdAt", SortAsc: true}
	videos, count, err := ListVideos(ctx, filter, 2, 10)
	if err != nil {
		t.Fatalf("list videos: %v", err)
	}
	if count != 25 {
		t.Fatalf("count = %d, want 25", count)
	}
	if len(videos) != 10 {
		t.Fatalf("page size = %d, want 10", len(videos))
	}
	if videos[0].Title != "video-11" || videos[9].Title != "video-20" {
		t.Fatalf("page 2 spans [%s..%s], want [video-11..video-20]", videos[0].Title, videos[9].Title)
	}
	if pages := utils.TotalPages(count, 10); pages != 3 {
		t.Fatalf("total pages = %d, want 3", pages)
	}
	if videos[0].Owner.UserName != "alice" {
		t.Fatalf("owner = %q, want alice", videos[0].Owner.UserName)
	}
}

func TestListVideosSkipsUnpublished(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 1, 1, "public", true, 0)
	seedVideo(t, 2, 1, "draft", false, 1)

	videos, count, err := ListVideos(ctx, VideoFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("list videos: %v", err)
	}
	if count != 1 || len(videos) != 1 || videos[0].Title != "public" {
		t.Fatalf("got %d videos (count %d), want only the published one", len(videos), count)
	}
}

func TestListVideosQueryFilter(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 1, 1, "Cooking pasta", true, 0)
	seedVideo(t, 2, 1, "Gardening basics", true, 1)
	seedVideo(t, 3, 1, "Advanced pasta shapes", true, 2)

	videos, count, err := ListVideos(ctx, VideoFilter{Query: "pasta"}, 1, 10)
	if err != nil {
		t.Fatalf("list videos: %v", err)
	}
	if count != 2 || len(videos) != 2 {
		t.Fatalf("got %d videos (count %d), want 2 pasta matches", len(videos), count)
	}

	// the match is case-insensitive
	videos, count, err = ListVideos(ctx, VideoFilter{Query: "PASTA"}, 1, 10)
	if err != nil {
		t.Fatalf("list videos: %v", err)
	}
	if count != 2 || len(videos) != 2 {
		t.Fatalf("got %d videos (count %d), want 2 matches regardless of case", len(videos), count)
	}
}

func TestGetVideoWithOwnerHidesDrafts(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 1, 1, "draft", false, 0)

	if _, err := GetVideoWithOwner(ctx, 1); !IsRecordNotFound(err) {
		t.Fatalf("err = %v, want record-not-found for a draft", err)
	}
}

func TestIncrementViews(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 1, 1, "first", true, 0)

	for i := 0; i < 3; i++ {
		if err := IncrementViews(ctx, 1); err != nil {
			t.Fatalf("increment views: %v", err)
		}
	}
	video, err := GetVideo(ctx, 1)
	if err != nil {
		t.Fatalf("get video: %v", err)
	}
	if video.Views != 3 {
		t.Fatalf("views = %d, want 3", video.Views)
	}
}
