package state

import (
	"slices"

	"movie-reviews/internal/data/entity"
)

type ReviewDetail struct {
	Review   *entity.Review
	Comments []entity.Comment
	Failures []string
}

type ReviewEvent interface {
	reviewEvent()
}

type ReviewLoaded struct {
	Review *entity.Review
}

// CommentsLoaded replaces the comment list; it is stored newest first.
type CommentsLoaded struct {
	Comments []entity.Comment
}

// HelpfulMarked merges the helpful counter returned by the store.
type HelpfulMarked struct {
	Helpful int
}

func (ReviewLoaded) reviewEvent()   {}
func (CommentsLoaded) reviewEvent() {}
func (HelpfulMarked) reviewEvent()  {}
func (LoadFailed) reviewEvent()     {}

func ReduceReviewDetail(prev ReviewDetail, ev ReviewEvent) ReviewDetail {
	next := prev
	switch e := ev.(type) {
	case ReviewLoaded:
		next.Review = e.Review
	case CommentsLoaded:
		next.Comments = NewestCommentsFirst(e.Comments)
	case HelpfulMarked:
		if prev.Review == nil {
			return prev
		}
		review := *prev.Review
		review.Helpful = e.Helpful
		next.Review = &review
	case LoadFailed:
		next.Failures = append(slices.Clone(prev.Failures), e.Slice)
	default:
		return prev
	}
	return next
}

// NewestCommentsFirst returns a copy sorted by descending timestamp. Equal
// timestamps keep their store order.
func NewestCommentsFirst(comments []entity.Comment) []entity.Comment {
	sorted := slices.Clone(comments)
	slices.SortStableFunc(sorted, func(a, b entity.Comment) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return sorted
}
