package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	"schoolsite/internal/usecase"
)

func TestReviewUsecase_Create_Success(t *testing.T) {
	reviews := new(ReviewRepoMock)
	uc := usecase.NewReviewUsecase(reviews)

	reviews.On("Create", mock.Anything, mock.MatchedBy(func(r model.Review) bool {
		return r.Name == "Sam" && r.Text == "Great school, lovely staff" &&
			r.Rating == 5 && r.IPAddress == "203.0.113.9"
	})).Return(model.Review{ID: 1, Rating: 5}, nil)

	out, err := uc.Create(context.Background(), usecase.ReviewInput{
		Name:      " Sam ",
		Text:      "  Great school, lovely staff  ",
		Rating:    5,
		IPAddress: "203.0.113.9",
		UserAgent: "test-agent",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	reviews.AssertExpectations(t)
}

func TestReviewUsecase_Create_TextTooShort(t *testing.T) {
	uc := usecase.NewReviewUsecase(new(ReviewRepoMock))

	// whitespace does not count toward the minimum length
	_, err := uc.Create(context.Background(), usecase.ReviewInput{Text: "  ok  ", Rating: 5})
	assertCode(t, err, apperr.CodeValidation, "text")
}

func TestReviewUsecase_Create_RatingOutOfRange(t *testing.T) {
	uc := usecase.NewReviewUsecase(new(ReviewRepoMock))

	for _, rating := range []int{0, 6, -3} {
		_, err := uc.Create(context.Background(), usecase.ReviewInput{
			Text:   "long enough review",
			Rating: rating,
		})
		assertCode(t, err, apperr.CodeValidation, "rating")
	}
}

func TestReviewUsecase_List(t *testing.T) {
	reviews := new(ReviewRepoMock)
	uc := usecase.NewReviewUsecase(reviews)

	reviews.On("List", mock.Anything).Return([]model.Review{{ID: 2}, {ID: 1}}, nil)

	out, err := uc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}
