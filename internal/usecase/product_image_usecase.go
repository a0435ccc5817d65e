package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

const (
	MaxImagesPerProduct = 10
	MaxImageSizeBytes   = 5 << 20
)

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// ProductImageUsecase manages the per-product image gallery: append, bulk
// replace, selective delete and explicit reordering. File cleanup is done
// synchronously after the record mutation commits.
type ProductImageUsecase struct {
	tx     repo.TransactionManager
	images repo.ProductImageRepository
	store  FileStore
	media  MediaURL
}

func NewProductImageUsecase(tx repo.TransactionManager, images repo.ProductImageRepository, store FileStore, media MediaURL) *ProductImageUsecase {
	return &ProductImageUsecase{tx: tx, images: images, store: store, media: media}
}

type ProductImageOutput struct {
	model.ProductImage
	ImageURL string `json:"image_url"`
}

func (u *ProductImageUsecase) toOutput(img model.ProductImage) ProductImageOutput {
	return ProductImageOutput{ProductImage: img, ImageURL: u.media(img.FilePath)}
}

func (u *ProductImageUsecase) List(ctx context.Context, productID *int64) ([]ProductImageOutput, error) {
	images, err := u.images.List(ctx, productID)
	if err != nil {
		return nil, apperr.Internal()
	}
	out := make([]ProductImageOutput, 0, len(images))
	for _, img := range images {
		out = append(out, u.toOutput(img))
	}
	return out, nil
}

func (u *ProductImageUsecase) Get(ctx context.Context, id int64) (ProductImageOutput, error) {
	img, err := u.images.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return ProductImageOutput{}, apperr.NotFound()
	}
	if err != nil {
		return ProductImageOutput{}, apperr.Internal()
	}
	return u.toOutput(img), nil
}

// Upload appends files to the product gallery, or replaces the whole gallery
// when replace is set. Saved files are rolled back by hand when the record
// transaction fails; old files are removed only after it commits.
func (u *ProductImageUsecase) Upload(ctx context.Context, productID int64, files []*multipart.FileHeader, replace bool) ([]ProductImageOutput, error) {
	if len(files) == 0 {
		return nil, apperr.Validation("images", "at least one file is required")
	}
	for _, fh := range files {
		if err := validateImageFile(fh); err != nil {
			return nil, err
		}
	}

	if !replace {
		existing, err := u.images.CountByProductID(ctx, productID)
		if err != nil {
			return nil, apperr.Internal()
		}
		if existing+int64(len(files)) > MaxImagesPerProduct {
			return nil, apperr.Validation("images",
				fmt.Sprintf("too many images, maximum is %d", MaxImagesPerProduct))
		}
	} else if len(files) > MaxImagesPerProduct {
		return nil, apperr.Validation("images",
			fmt.Sprintf("too many images, maximum is %d", MaxImagesPerProduct))
	}

	saved := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			u.removeAll(saved)
			return nil, apperr.Internal()
		}
		rel, err := u.store.Save("products", fh.Filename, f)
		f.Close()
		if err != nil {
			u.removeAll(saved)
			return nil, apperr.Internal()
		}
		saved = append(saved, rel)
	}

	var created []model.ProductImage
	var replaced []model.ProductImage

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// the product must exist; surfaced as a field error, not a 404
		if _, err := r.Products().FindByID(ctx, productID); err != nil {
			if err == repo.ErrNotFound {
				return apperr.Validation("product", "product not found")
			}
			return err
		}

		next := 0
		if replace {
			var err error
			replaced, err = r.ProductImages().DeleteByProductID(ctx, productID)
			if err != nil {
				return err
			}
		} else {
			max, err := r.ProductImages().MaxOrder(ctx, productID)
			if err != nil {
				return err
			}
			next = max + 1
		}

		for i, rel := range saved {
			img, err := r.ProductImages().Create(ctx, model.ProductImage{
				ProductID: productID,
				FilePath:  rel,
				Order:     next + i,
			})
			if err != nil {
				return err
			}
			created = append(created, img)
		}
		return nil
	})
	if err != nil {
		u.removeAll(saved)
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		return nil, apperr.Internal()
	}

	for _, img := range replaced {
		_ = u.store.Remove(img.FilePath)
	}

	out := make([]ProductImageOutput, 0, len(created))
	for _, img := range created {
		out = append(out, u.toOutput(img))
	}
	return out, nil
}

func (u *ProductImageUsecase) Delete(ctx context.Context, id int64) error {
	img, err := u.images.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return apperr.NotFound()
	}
	if err != nil {
		return apperr.Internal()
	}
	return u.store.Remove(img.FilePath)
}

func (u *ProductImageUsecase) DeleteByIDs(ctx context.Context, productID int64, ids []int64) error {
	removed, err := u.images.DeleteByIDs(ctx, productID, ids)
	if err != nil {
		return apperr.Internal()
	}
	for _, img := range removed {
		_ = u.store.Remove(img.FilePath)
	}
	return nil
}

// Reorder places the listed ids first, in the given order, then re-packs the
// remaining images after them. Every id must belong to the product.
func (u *ProductImageUsecase) Reorder(ctx context.Context, productID int64, orderedIDs []int64) error {
	if len(orderedIDs) == 0 {
		return apperr.Validation("imagesOrder", "id list is required")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		pid := productID
		images, err := r.ProductImages().List(ctx, &pid)
		if err != nil {
			return err
		}

		existing := make(map[int64]bool, len(images))
		for _, img := range images {
			existing[img.ID] = true
		}
		listed := make(map[int64]bool, len(orderedIDs))
		for _, id := range orderedIDs {
			if !existing[id] || listed[id] {
				return apperr.Validation("imagesOrder", "unknown or duplicate image id")
			}
			listed[id] = true
		}

		for idx, id := range orderedIDs {
			if err := r.ProductImages().SetOrder(ctx, id, idx); err != nil {
				return err
			}
		}

		// tail keeps its relative order after the listed prefix
		next := len(orderedIDs)
		for _, img := range images {
			if listed[img.ID] {
				continue
			}
			if img.Order != next {
				if err := r.ProductImages().SetOrder(ctx, img.ID, next); err != nil {
					return err
				}
			}
			next++
		}
		return nil
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return err
		}
		return apperr.Internal()
	}
	return nil
}

func (u *ProductImageUsecase) removeAll(paths []string) {
	for _, rel := range paths {
		_ = u.store.Remove(rel)
	}
}

func validateImageFile(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return apperr.NewField(http.StatusBadRequest, apperr.CodeValidation,
			"unsupported image type, use jpg/jpeg/png/webp", "images")
	}
	if fh.Size > MaxImageSizeBytes {
		return apperr.NewField(http.StatusBadRequest, apperr.CodeValidation,
			"image file too large (max 5 MB)", "images")
	}
	return nil
}
