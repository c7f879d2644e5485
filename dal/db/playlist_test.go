package db

import (
	"context"
	"testing"

	"vidtube.com/cmd/model"
)

func seedPlaylist(t *testing.T, id, ownerId int64, name string) {
	t.Helper()
	playlist := &model.Playlist{
		PlaylistId:  id,
		UserId:      ownerId,
		Name:        name,
		Description: "about " + name,
		CreatedAt:   testTime(0),
		UpdatedAt:   testTime(0),
	}
	if err := DB.Create(playlist).Error; err != nil {
		t.Fatalf("seed playlist %d: %v", id, err)
	}
}

func TestAddVideoToPlaylistKeepsInsertionOrder(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 10, 1, "first", true, 0)
	seedVideo(t, 11, 1, "second", true, 1)
	seedPlaylist(t, 100, 1, "favorites")

	if err := AddVideoToPlaylist(ctx, 100, 11); err != nil {
		t.Fatalf("add 11: %v", err)
	}
	if err := AddVideoToPlaylist(ctx, 100, 10); err != nil {
		t.Fatalf("add 10: %v", err)
	}

	view, err := GetPlaylistView(ctx, 100)
	if err != nil {
		t.Fatalf("get view: %v", err)
	}
	if len(view.Videos) != 2 {
		t.Fatalf("got %d videos, want 2", len(view.Videos))
	}
	if view.Videos[0].VideoId != 11 || view.Videos[1].VideoId != 10 {
		t.Fatalf("order = [%d %d], want insertion order [11 10]",
			view.Videos[0].VideoId, view.Videos[1].VideoId)
	}
	if view.Owner.UserName != "alice" {
		t.Fatalf("owner = %q, want alice", view.Owner.UserName)
	}
}

func TestPlaylistHasVideo(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 10, 1, "first", true, 0)
	seedPlaylist(t, 100, 1, "favorites")

	if err := AddVideoToPlaylist(ctx, 100, 10); err != nil {
		t.Fatalf("add: %v", err)
	}
	if ok, _ := PlaylistHasVideo(ctx, 100, 10); !ok {
		t.Fatal("video should be in the playlist")
	}
	if ok, _ := PlaylistHasVideo(ctx, 100, 99); ok {
		t.Fatal("unknown video must not be reported present")
	}
}

func TestRemoveVideoFromPlaylist(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 10, 1, "first", true, 0)
	seedPlaylist(t, 100, 1, "favorites")

	if err := AddVideoToPlaylist(ctx, 100, 10); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := RemoveVideoFromPlaylist(ctx, 100, 10); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if ok, _ := PlaylistHasVideo(ctx, 100, 10); ok {
		t.Fatal("video still present after remove")
	}
}

func TestDeletePlaylistRemovesEntries(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 10, 1, "first", true, 0)
	seedPlaylist(t, 100, 1, "favorites")

	if err := AddVideoToPlaylist(ctx, 100, 10); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := DeletePlaylist(ctx, 100); err != nil {
		t.Fatalf("delete playlist: %v", err)
	}
	if _, err := GetPlaylist(ctx, 100); !IsRecordNotFound(err) {
		t.Fatalf("err = %v, want record-not-found after delete", err)
	}
	var count int64
	if err := DB.Model(&model.PlaylistVideo{}).Where("playlist_id = ?", 100).
		Count(&count).Error; err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if count != 0 {
		t.Fatalf("%d playlist entries survived the delete", count)
	}
}

func TestListUserPlaylists(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedUser(t, 2, "bob")
	seedPlaylist(t, 100, 1, "favorites")
	seedPlaylist(t, 101, 1, "later")
	seedPlaylist(t, 102, 2, "other")

	views, err := ListUserPlaylists(ctx, 1)
	if err != nil {
		t.Fatalf("list playlists: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d playlists, want 2", len(views))
	}
}
