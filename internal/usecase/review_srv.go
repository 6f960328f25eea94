package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/state"
	"movie-reviews/pkg/database"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const (
	SliceReview   = "review"
	SliceComments = "comments"
)

type ReviewService interface {
	// ListReviews returns every review with movie and author expanded.
	ListReviews(ctx context.Context) ([]entity.Review, error)
	Recent(ctx context.Context, n int) ([]entity.Review, error)
	LoadDetail(ctx context.Context, id int) (state.ReviewDetail, error)
	// MarkHelpful writes helpful+1 for the review in detail and merges the
	// counter the store kept.
	MarkHelpful(ctx context.Context, detail state.ReviewDetail) (state.ReviewDetail, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]entity.Review, error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) Recent(ctx context.Context, n int) ([]entity.Review, error) {
	reviews, err := s.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	if len(reviews) > n {
		reviews = reviews[:n]
	}
	return reviews, nil
}

// LoadDetail fetches the review and its comments concurrently. Comments
// that fail to load leave the page usable.
func (s *reviewService) LoadDetail(ctx context.Context, id int) (state.ReviewDetail, error) {
	var (
		events    [2]state.ReviewEvent
		reviewErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		review, err := s.repo.Review.FindByID(ctx, id)
		switch {
		case err != nil:
			reviewErr = fmt.Errorf("get review: %w", err)
		case review == nil:
			reviewErr = fmt.Errorf("review %d: %w", id, database.ErrNotFound)
		default:
			events[0] = state.ReviewLoaded{Review: review}
			return
		}
		events[0] = state.LoadFailed{Slice: SliceReview, Err: reviewErr}
	})
	wg.Go(func() {
		comments, err := s.repo.Comment.FindByReviewID(ctx, id)
		if err != nil {
			events[1] = state.LoadFailed{Slice: SliceComments, Err: err}
			return
		}
		events[1] = state.CommentsLoaded{Comments: comments}
	})
	wg.Wait()

	var detail state.ReviewDetail
	for _, ev := range events {
		detail = state.ReduceReviewDetail(detail, ev)
	}

	if reviewErr != nil {
		return detail, reviewErr
	}
	return detail, nil
}

func (s *reviewService) MarkHelpful(ctx context.Context, detail state.ReviewDetail) (state.ReviewDetail, error) {
	if detail.Review == nil {
		return detail, fmt.Errorf("mark review helpful: %w", database.ErrNotFound)
	}

	id := detail.Review.ID
	updated, err := s.repo.Review.UpdateHelpful(ctx, id, detail.Review.Helpful+1)
	if err != nil {
		return detail, fmt.Errorf("mark review helpful: %w", err)
	}

	s.log.Info("Review marked helpful",
		zap.Int("review_id", id),
		zap.Int("helpful", updated.Helpful),
	)
	return state.ReduceReviewDetail(detail, state.HelpfulMarked{Helpful: updated.Helpful}), nil
}
