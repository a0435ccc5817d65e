package usecase

import (
	"context"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

type TeacherUsecase struct {
	teachers repo.TeacherRepository
	store    FileStore
	media    MediaURL
}

func NewTeacherUsecase(teachers repo.TeacherRepository, store FileStore, media MediaURL) *TeacherUsecase {
	return &TeacherUsecase{teachers: teachers, store: store, media: media}
}

type TeacherOutput struct {
	model.Teacher
	PhotoURL *string `json:"photo_url"`
}

func (u *TeacherUsecase) toOutput(t model.Teacher) TeacherOutput {
	out := TeacherOutput{Teacher: t}
	if t.PhotoPath != nil {
		url := u.media(*t.PhotoPath)
		out.PhotoURL = &url
	}
	return out
}

func (u *TeacherUsecase) List(ctx context.Context, includeInactive bool) ([]TeacherOutput, error) {
	teachers, err := u.teachers.List(ctx, includeInactive)
	if err != nil {
		return nil, apperr.Internal()
	}
	out := make([]TeacherOutput, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, u.toOutput(t))
	}
	return out, nil
}

func (u *TeacherUsecase) Get(ctx context.Context, id int64, includeInactive bool) (TeacherOutput, error) {
	t, err := u.teachers.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return TeacherOutput{}, apperr.NotFound()
	}
	if err != nil {
		return TeacherOutput{}, apperr.Internal()
	}
	if !t.IsActive && !includeInactive {
		return TeacherOutput{}, apperr.NotFound()
	}
	return u.toOutput(t), nil
}

type TeacherInput struct {
	Name         string
	Subject      string
	Bio          string
	Email        string
	Phone        string
	IsActive     bool
	DisplayOrder int
}

func (u *TeacherUsecase) Create(ctx context.Context, in TeacherInput) (TeacherOutput, error) {
	if err := validateTeacher(in); err != nil {
		return TeacherOutput{}, err
	}

	t, err := u.teachers.Create(ctx, model.Teacher{
		Name:         strings.TrimSpace(in.Name),
		Subject:      in.Subject,
		Bio:          in.Bio,
		Email:        in.Email,
		Phone:        in.Phone,
		IsActive:     in.IsActive,
		DisplayOrder: in.DisplayOrder,
	})
	if err != nil {
		return TeacherOutput{}, apperr.Internal()
	}
	return u.toOutput(t), nil
}

func (u *TeacherUsecase) Update(ctx context.Context, id int64, in TeacherInput) (TeacherOutput, error) {
	if err := validateTeacher(in); err != nil {
		return TeacherOutput{}, err
	}

	t, err := u.teachers.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return TeacherOutput{}, apperr.NotFound()
	}
	if err != nil {
		return TeacherOutput{}, apperr.Internal()
	}

	t.Name = strings.TrimSpace(in.Name)
	t.Subject = in.Subject
	t.Bio = in.Bio
	t.Email = in.Email
	t.Phone = in.Phone
	t.IsActive = in.IsActive
	t.DisplayOrder = in.DisplayOrder

	if err := u.teachers.Update(ctx, t); err != nil {
		return TeacherOutput{}, apperr.Internal()
	}
	return u.toOutput(t), nil
}

// SetPhoto stores the new photo, points the record at it, then removes the
// old file.
func (u *TeacherUsecase) SetPhoto(ctx context.Context, id int64, fh *multipart.FileHeader) (TeacherOutput, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return TeacherOutput{}, apperr.NewField(http.StatusBadRequest, apperr.CodeValidation,
			"unsupported image type, use jpg/jpeg/png/webp", "photo")
	}
	if fh.Size > MaxImageSizeBytes {
		return TeacherOutput{}, apperr.NewField(http.StatusBadRequest, apperr.CodeValidation,
			"image file too large (max 5 MB)", "photo")
	}

	t, err := u.teachers.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return TeacherOutput{}, apperr.NotFound()
	}
	if err != nil {
		return TeacherOutput{}, apperr.Internal()
	}

	f, err := fh.Open()
	if err != nil {
		return TeacherOutput{}, apperr.Internal()
	}
	defer f.Close()

	rel, err := u.store.Save("teachers", fh.Filename, f)
	if err != nil {
		return TeacherOutput{}, apperr.Internal()
	}

	old := t.PhotoPath
	t.PhotoPath = &rel
	if err := u.teachers.Update(ctx, t); err != nil {
		_ = u.store.Remove(rel)
		return TeacherOutput{}, apperr.Internal()
	}
	if old != nil {
		_ = u.store.Remove(*old)
	}
	return u.toOutput(t), nil
}

// Delete removes the record first, then its photo file.
func (u *TeacherUsecase) Delete(ctx context.Context, id int64) error {
	t, err := u.teachers.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return apperr.NotFound()
	}
	if err != nil {
		return apperr.Internal()
	}

	if err := u.teachers.Delete(ctx, id); err != nil {
		return apperr.Internal()
	}
	if t.PhotoPath != nil {
		_ = u.store.Remove(*t.PhotoPath)
	}
	return nil
}

func validateTeacher(in TeacherInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.Validation("name", "name is required")
	}
	if in.DisplayOrder < 0 {
		return apperr.Validation("display_order", "display_order must be >= 0")
	}
	return nil
}
