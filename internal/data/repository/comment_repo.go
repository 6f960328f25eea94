package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"
	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

type CommentRepository interface {
	FindByReviewID(ctx context.Context, reviewID int) ([]entity.Comment, error)
	Create(ctx context.Context, payload *request.CommentPayload) (*entity.Comment, error)
	Delete(ctx context.Context, id int) error
}

type commentRepository struct {
	db  database.StoreIface
	log *zap.Logger
}

func NewCommentRepository(db database.StoreIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

func (r *commentRepository) FindByReviewID(ctx context.Context, reviewID int) ([]entity.Comment, error) {
	query := url.Values{"reviewId": {strconv.Itoa(reviewID)}}

	var comments []entity.Comment
	if err := r.db.List(ctx, collectionComments, query, &comments); err != nil {
		r.log.Error("Failed to find comments by review ID",
			zap.Error(err),
			zap.Int("review_id", reviewID),
		)
		return nil, fmt.Errorf("find comments for review %d: %w", reviewID, err)
	}

	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, payload *request.CommentPayload) (*entity.Comment, error) {
	var created entity.Comment
	if err := r.db.Create(ctx, collectionComments, payload, &created); err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.Int("review_id", payload.ReviewID),
		)
		return nil, fmt.Errorf("create comment on review %d: %w", payload.ReviewID, err)
	}

	return &created, nil
}

func (r *commentRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.Delete(ctx, collectionComments, id); err != nil {
		r.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.Int("comment_id", id),
		)
		return fmt.Errorf("delete comment %d: %w", id, err)
	}

	r.log.Info("Comment deleted", zap.Int("comment_id", id))
	return nil
}
