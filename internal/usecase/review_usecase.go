package usecase

import (
	"context"
	"strings"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

type ReviewUsecase struct {
	reviews repo.ReviewRepository
}

func NewReviewUsecase(reviews repo.ReviewRepository) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews}
}

func (u *ReviewUsecase) List(ctx context.Context) ([]model.Review, error) {
	reviews, err := u.reviews.List(ctx)
	if err != nil {
		return nil, apperr.Internal()
	}
	return reviews, nil
}

type ReviewInput struct {
	Name   string
	Text   string
	Rating int

	// technical fields, captured server-side
	IPAddress string
	UserAgent string
}

func (u *ReviewUsecase) Create(ctx context.Context, in ReviewInput) (model.Review, error) {
	text := strings.TrimSpace(in.Text)
	if len([]rune(text)) < 5 {
		return model.Review{}, apperr.Validation("text", "review text is too short")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, apperr.Validation("rating", "rating must be between 1 and 5")
	}

	r, err := u.reviews.Create(ctx, model.Review{
		Name:      strings.TrimSpace(in.Name),
		Text:      text,
		Rating:    in.Rating,
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
	})
	if err != nil {
		return model.Review{}, apperr.Internal()
	}
	return r, nil
}
