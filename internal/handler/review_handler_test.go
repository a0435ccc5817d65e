package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"schoolsite/internal/domain/model"
	"schoolsite/internal/usecase"
	"schoolsite/internal/validator"
)

type reviewRepoStub struct {
	created *model.Review
}

func (s *reviewRepoStub) List(context.Context) ([]model.Review, error) { return nil, nil }

func (s *reviewRepoStub) Create(_ context.Context, r model.Review) (model.Review, error) {
	r.ID = 1
	s.created = &r
	return r, nil
}

func postReview(t *testing.T, body string) (*reviewRepoStub, *httptest.ResponseRecorder) {
	t.Helper()
	reviews := &reviewRepoStub{}
	h := NewReviewHandler(usecase.NewReviewUsecase(reviews))

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	assert.NoError(t, h.Create(e.NewContext(req, rec)))
	return reviews, rec
}

func TestReviewCreate_OmittedRatingDefaultsToFive(t *testing.T) {
	reviews, rec := postReview(t, `{"name":"Anna","text":"Wonderful school"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	if assert.NotNil(t, reviews.created) {
		assert.Equal(t, 5, reviews.created.Rating)
	}
}

func TestReviewCreate_ExplicitRatingKept(t *testing.T) {
	reviews, rec := postReview(t, `{"text":"Solid teachers overall","rating":3}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	if assert.NotNil(t, reviews.created) {
		assert.Equal(t, 3, reviews.created.Rating)
	}
}

func TestReviewCreate_OutOfRangeRatingRejected(t *testing.T) {
	reviews, rec := postReview(t, `{"text":"Not great to be honest","rating":7}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, reviews.created)
}
