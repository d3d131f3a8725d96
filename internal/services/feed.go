package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/diewo77/go-social/internal/models"
	"github.com/diewo77/go-social/sanitize"
)

type FeedService struct {
	DB *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService { return &FeedService{DB: db} }

// CreatePost inserts a post for the user. Content is sanitized on write;
// image is the already-stored filename (may be empty).
func (s *FeedService) CreatePost(userID uint, content, image string) (*models.Post, error) {
	post := models.Post{UserID: userID, Content: sanitize.Clean(content), Image: image}
	if err := s.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// StreamFor returns the posts visible on the user's stream: their own posts
// plus posts by anyone connected to them through a friend edge in either
// direction, newest first, with per-post comment counts.
func (s *FeedService) StreamFor(user *models.User) ([]models.Post, error) {
	ids := []uint{user.ID}
	var incoming []uint
	if err := s.DB.Model(&models.Friend{}).Where("friend_id = ?", user.ID).Pluck("user_id", &incoming).Error; err != nil {
		return nil, err
	}
	var outgoing []uint
	if err := s.DB.Model(&models.Friend{}).Where("user_id = ?", user.ID).Pluck("friend_id", &outgoing).Error; err != nil {
		return nil, err
	}
	ids = append(ids, incoming...)
	ids = append(ids, outgoing...)

	var posts []models.Post
	if err := s.DB.Preload("User").Where("user_id IN ?", ids).Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	if err := s.fillCommentCounts(posts); err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Content = sanitize.Clean(posts[i].Content)
	}
	return posts, nil
}

func (s *FeedService) fillCommentCounts(posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}
	type countRow struct {
		PostID uint
		N      int64
	}
	var rows []countRow
	if err := s.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error; err != nil {
		return err
	}
	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.PostID] = r.N
	}
	for i := range posts {
		posts[i].CommentCount = counts[posts[i].ID]
	}
	return nil
}

// Post returns a single post with its author, sanitized for display.
func (s *FeedService) Post(postID uint) (*models.Post, error) {
	var post models.Post
	if err := s.DB.Preload("User").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownPost
		}
		return nil, err
	}
	post.Content = sanitize.Clean(post.Content)
	return &post, nil
}

// AddComment inserts a comment tied to the post and author. The body is
// sanitized on write.
func (s *FeedService) AddComment(postID, userID uint, body string) (*models.Comment, error) {
	var count int64
	if err := s.DB.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUnknownPost
	}
	comment := models.Comment{PostID: postID, UserID: userID, Body: sanitize.Clean(body)}
	if err := s.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Comments returns the post's comments newest first, sanitized for display.
func (s *FeedService) Comments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.DB.Preload("User").Where("post_id = ?", postID).Order("created_at DESC, id DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	for i := range comments {
		comments[i].Body = sanitize.Clean(comments[i].Body)
	}
	return comments, nil
}
