package services

import (
	"errors"
	"testing"

	"github.com/diewo77/go-social/internal/models"
)

func TestStreamOrderNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)
	feed := NewFeedService(db)
	alice := mustRegister(t, accounts, "alice")

	if _, err := feed.CreatePost(alice.ID, "post A", ""); err != nil {
		t.Fatalf("create A: %v", err)
	}
	if _, err := feed.CreatePost(alice.ID, "post B", ""); err != nil {
		t.Fatalf("create B: %v", err)
	}

	posts, err := feed.StreamFor(alice)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Content != "post B" || posts[1].Content != "post A" {
		t.Fatalf("wrong order: [%q, %q]", posts[0].Content, posts[1].Content)
	}
}

func TestStreamIncludesBothFriendDirections(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)
	feed := NewFeedService(db)
	friends := NewFriendService(db)
	alice := mustRegister(t, accounts, "alice")
	bob := mustRegister(t, accounts, "bobby")
	carol := mustRegister(t, accounts, "carol")

	// alice -> bob, carol -> alice: both must appear on alice's stream.
	if _, err := friends.Add(alice, "bobby"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := friends.Add(carol, "alice"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := feed.CreatePost(bob.ID, "from bob", ""); err != nil {
		t.Fatalf("post: %v", err)
	}
	if _, err := feed.CreatePost(carol.ID, "from carol", ""); err != nil {
		t.Fatalf("post: %v", err)
	}

	posts, err := feed.StreamFor(alice)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	seen := map[string]bool{}
	for _, p := range posts {
		seen[p.Content] = true
	}
	if !seen["from bob"] || !seen["from carol"] {
		t.Fatalf("missing friend posts: %v", seen)
	}
}

func TestStreamCommentCounts(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)
	feed := NewFeedService(db)
	alice := mustRegister(t, accounts, "alice")

	post, err := feed.CreatePost(alice.ID, "counted", "")
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := feed.AddComment(post.ID, alice.ID, "a comment"); err != nil {
			t.Fatalf("comment: %v", err)
		}
	}

	posts, err := feed.StreamFor(alice)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if posts[0].CommentCount != 3 {
		t.Fatalf("expected 3 comments, got %d", posts[0].CommentCount)
	}
}

func TestStreamSanitizesContentOnRead(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)
	feed := NewFeedService(db)
	alice := mustRegister(t, accounts, "alice")

	// Write markup directly, bypassing the write-side sanitizer.
	db.Create(&models.Post{UserID: alice.ID, Content: "<script>alert(1)</script>hi"})

	posts, err := feed.StreamFor(alice)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if posts[0].Content != "hi" {
		t.Fatalf("content not sanitized on read: %q", posts[0].Content)
	}
}

func TestAddCommentUnknownPost(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)
	feed := NewFeedService(db)
	alice := mustRegister(t, accounts, "alice")
	if _, err := feed.AddComment(999, alice.ID, "hello"); !errors.Is(err, ErrUnknownPost) {
		t.Fatalf("expected ErrUnknownPost, got %v", err)
	}
}

func TestCommentsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)
	feed := NewFeedService(db)
	alice := mustRegister(t, accounts, "alice")
	post, _ := feed.CreatePost(alice.ID, "p", "")

	if _, err := feed.AddComment(post.ID, alice.ID, "first"); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if _, err := feed.AddComment(post.ID, alice.ID, "second"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	comments, err := feed.Comments(post.ID)
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	if comments[0].Body != "second" || comments[1].Body != "first" {
		t.Fatalf("wrong order: [%q, %q]", comments[0].Body, comments[1].Body)
	}
}

func TestPostLookup(t *testing.T) {
	db := setupTestDB(t)
	accounts := NewAccountService(db)
	feed := NewFeedService(db)
	alice := mustRegister(t, accounts, "alice")
	created, _ := feed.CreatePost(alice.ID, "findme", "")

	got, err := feed.Post(created.ID)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if got.User.Username != "alice" {
		t.Fatalf("author not loaded: %+v", got.User)
	}
	if _, err := feed.Post(12345); !errors.Is(err, ErrUnknownPost) {
		t.Fatalf("expected ErrUnknownPost, got %v", err)
	}
}
