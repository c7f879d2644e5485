package db

import (
	"context"
	"fmt"
	"testing"

	"vidtube.com/cmd/model"
)

func TestListVideoCommentsCapsAtCount(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 10, 1, "first", true, 0)
	for i := 1; i <= 30; i++ {
		seedComment(t, int64(i), 10, 1, fmt.Sprintf("comment-%02d", i), i)
	}

	comments, err := ListVideoComments(ctx, 10, 20)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 20 {
		t.Fatalf("got %d comments, want the 20 newest", len(comments))
	}
	if comments[0].Content != "comment-30" || comments[19].Content != "comment-11" {
		t.Fatalf("window spans [%s..%s], want [comment-30..comment-11]",
			comments[0].Content, comments[19].Content)
	}
	if comments[0].Owner.UserName != "alice" {
		t.Fatalf("owner = %q, want alice", comments[0].Owner.UserName)
	}
}

func TestListVideoCommentsIgnoresOtherVideos(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 10, 1, "first", true, 0)
	seedVideo(t, 11, 1, "second", true, 1)
	seedComment(t, 1, 10, 1, "on first", 0)
	seedComment(t, 2, 11, 1, "on second", 1)

	comments, err := ListVideoComments(ctx, 10, 10)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 1 || comments[0].Content != "on first" {
		t.Fatalf("got %d comments, want only the one on video 10", len(comments))
	}
}

func TestDeleteCommentLeavesOtherRowsAlone(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedVideo(t, 10, 1, "first", true, 0)
	seedComment(t, 1, 10, 1, "to delete", 0)
	target := model.LikeTarget{Kind: model.TargetComment, Id: 1}
	if _, err := ToggleLike(ctx, target, 1); err != nil {
		t.Fatalf("toggle like: %v", err)
	}

	if err := DeleteComment(ctx, 1); err != nil {
		t.Fatalf("delete comment: %v", err)
	}
	if _, err := GetComment(ctx, 1); !IsRecordNotFound(err) {
		t.Fatalf("err = %v, want record-not-found after delete", err)
	}
	// deletes do not cascade, the like row stays behind
	if has, _ := HasLike(ctx, target, 1); !has {
		t.Fatal("like row should survive the comment delete")
	}
}
