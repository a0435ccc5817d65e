package usecase

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

type DocumentUsecase struct {
	documents repo.DocumentRepository
	store     FileStore
	media     MediaURL
}

func NewDocumentUsecase(documents repo.DocumentRepository, store FileStore, media MediaURL) *DocumentUsecase {
	return &DocumentUsecase{documents: documents, store: store, media: media}
}

type DocumentOutput struct {
	model.Document
	FileURL string `json:"file_url"`
}

func (u *DocumentUsecase) toOutput(d model.Document) DocumentOutput {
	return DocumentOutput{Document: d, FileURL: u.media(d.FilePath)}
}

type ListDocumentsInput struct {
	Audience string
	Category string
	IsAdmin  bool
}

func (u *DocumentUsecase) List(ctx context.Context, in ListDocumentsInput) ([]DocumentOutput, error) {
	if in.Audience != "" && !model.ValidAudience(model.Audience(in.Audience)) {
		return nil, apperr.Validation("audience", "unknown audience")
	}

	docs, err := u.documents.List(ctx, repo.DocumentListQuery{
		Audience:   in.Audience,
		Category:   in.Category,
		PublicOnly: !in.IsAdmin,
	})
	if err != nil {
		return nil, apperr.Internal()
	}

	out := make([]DocumentOutput, 0, len(docs))
	for _, d := range docs {
		out = append(out, u.toOutput(d))
	}
	return out, nil
}

// Get hides non-public documents from unprivileged callers as if they did
// not exist.
func (u *DocumentUsecase) Get(ctx context.Context, id int64, isAdmin bool) (DocumentOutput, error) {
	d, err := u.documents.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return DocumentOutput{}, apperr.NotFound()
	}
	if err != nil {
		return DocumentOutput{}, apperr.Internal()
	}
	if !d.IsPublic && !isAdmin {
		return DocumentOutput{}, apperr.NotFound()
	}
	return u.toOutput(d), nil
}

// Download resolves the on-disk path and the filename to serve it under.
func (u *DocumentUsecase) Download(ctx context.Context, id int64, isAdmin bool) (path, name string, err error) {
	d, err := u.Get(ctx, id, isAdmin)
	if err != nil {
		return "", "", err
	}

	name = d.OriginalName
	if name == "" {
		name = filepath.Base(d.FilePath)
	}
	return u.store.Abs(d.FilePath), name, nil
}

type DocumentInput struct {
	Title       string
	Category    string
	Description string
	Audience    string
	IsPublic    bool
}

func (u *DocumentUsecase) Create(ctx context.Context, in DocumentInput, fh *multipart.FileHeader) (DocumentOutput, error) {
	if strings.TrimSpace(in.Title) == "" {
		return DocumentOutput{}, apperr.Validation("title", "title is required")
	}
	audience := model.Audience(in.Audience)
	if in.Audience == "" {
		audience = model.AudienceAll
	} else if !model.ValidAudience(audience) {
		return DocumentOutput{}, apperr.Validation("audience", "unknown audience")
	}
	if fh == nil {
		return DocumentOutput{}, apperr.Validation("file", "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return DocumentOutput{}, apperr.Internal()
	}
	defer f.Close()

	rel, err := u.store.Save("docs", fh.Filename, f)
	if err != nil {
		return DocumentOutput{}, apperr.Internal()
	}

	d, err := u.documents.Create(ctx, model.Document{
		Title:        strings.TrimSpace(in.Title),
		Category:     in.Category,
		Description:  in.Description,
		Audience:     audience,
		FilePath:     rel,
		OriginalName: filepath.Base(fh.Filename),
		IsPublic:     in.IsPublic,
	})
	if err != nil {
		_ = u.store.Remove(rel)
		return DocumentOutput{}, apperr.Internal()
	}
	return u.toOutput(d), nil
}

// Delete removes the record first, then the stored file.
func (u *DocumentUsecase) Delete(ctx context.Context, id int64) error {
	d, err := u.documents.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return apperr.NotFound()
	}
	if err != nil {
		return apperr.Internal()
	}

	if err := u.documents.Delete(ctx, id); err != nil {
		return apperr.Internal()
	}
	return u.store.Remove(d.FilePath)
}
