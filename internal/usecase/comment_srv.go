package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/form"
	"movie-reviews/internal/state"

	"go.uber.org/zap"
)

type CommentService interface {
	// ListComments returns the review's comments newest first.
	ListComments(ctx context.Context, reviewID int) ([]entity.Comment, error)
	// AddComment submits a replayed comment form. The returned state is
	// Rejected (validation or store failure) or Submitted.
	AddComment(ctx context.Context, reviewID int, st form.State, env form.Env) form.State
	DeleteComment(ctx context.Context, id int) error
}

type commentService struct {
	repo repository.CommentRepository
	log  *zap.Logger
}

func NewCommentService(repo repository.CommentRepository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) ListComments(ctx context.Context, reviewID int) ([]entity.Comment, error) {
	comments, err := s.repo.FindByReviewID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return state.NewestCommentsFirst(comments), nil
}

func (s *commentService) AddComment(ctx context.Context, reviewID int, st form.State, env form.Env) form.State {
	st = form.CommentSchema.Reduce(st, form.Submit{}, env)
	if st.Phase != form.Submitting {
		return st
	}

	created, err := s.repo.Create(ctx, form.CommentPayload(st, reviewID, clock()))
	if err != nil {
		s.log.Error("Failed to add comment",
			zap.Error(err),
			zap.Int("review_id", reviewID),
		)
		return form.CommentSchema.Reduce(st, form.SubmitFailed{Err: err}, env)
	}

	return form.CommentSchema.Reduce(st, form.SubmitSucceeded{ID: created.ID}, env)
}

func (s *commentService) DeleteComment(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
