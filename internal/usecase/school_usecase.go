package usecase

import (
	"context"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

type SchoolUsecase struct {
	info repo.SchoolInfoRepository
}

func NewSchoolUsecase(info repo.SchoolInfoRepository) *SchoolUsecase {
	return &SchoolUsecase{info: info}
}

// Get always returns a row; the singleton is created on first access.
func (u *SchoolUsecase) Get(ctx context.Context) (model.SchoolInfo, error) {
	info, err := u.info.GetOrCreate(ctx)
	if err != nil {
		return model.SchoolInfo{}, apperr.Internal()
	}
	return info, nil
}

type SchoolInfoInput struct {
	Address   string
	Email     string
	Phone     string
	About     string
	MapIframe string
}

func (u *SchoolUsecase) Update(ctx context.Context, in SchoolInfoInput) (model.SchoolInfo, error) {
	if _, err := u.info.GetOrCreate(ctx); err != nil {
		return model.SchoolInfo{}, apperr.Internal()
	}

	info := model.SchoolInfo{
		ID:        1,
		Address:   in.Address,
		Email:     in.Email,
		Phone:     in.Phone,
		About:     in.About,
		MapIframe: in.MapIframe,
	}
	if err := u.info.Update(ctx, info); err != nil {
		return model.SchoolInfo{}, apperr.Internal()
	}
	return info, nil
}
