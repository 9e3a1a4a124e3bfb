package service

import (
	"shelfmark/internal/domain"
	"shelfmark/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService finalizes review drafts and hands them to persistence
type ReviewService struct {
	reviews repository.ReviewRepository
	logger  *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(reviews repository.ReviewRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		logger:  logger,
	}
}

// Submit builds the draft into a Review and persists it. The caller is
// responsible for forwarding the review's shelves to the shelf store and
// for moving the user to the post-submit view.
func (s *ReviewService) Submit(userID int64, draft *domain.ReviewDraft) (*domain.Review, error) {
	review, err := draft.Build(userID)
	if err != nil {
		return nil, err
	}

	review.ID = uuid.NewString()

	if err := s.reviews.SaveReview(review); err != nil {
		return nil, err
	}

	s.logger.Info("Review submitted",
		zap.Int64("user_id", userID),
		zap.String("review_id", review.ID),
		zap.String("book_title", review.BookTitle),
		zap.Int("rating", review.Rating),
	)

	return review, nil
}
