package handlers

import (
	"errors"
	"os"
	"path/filepath"

	"grocery-store-api/config"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageBytes = 2 << 20 // 2 MB

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

var (
	errNoImage       = errors.New("no image uploaded")
	errImageTooLarge = errors.New("image exceeds the 2 MB limit")
	errImageType     = errors.New("image must be jpeg, png, gif, or webp")
)

// saveProductImage stores the uploaded "image" form file under the public
// upload dir with a generated filename and returns its relative path. The
// type check goes by sniffed content, not the client-supplied extension.
func saveProductImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", errNoImage
	}
	if file.Size > maxImageBytes {
		return "", errImageTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	mtype, err := mimetype.DetectReader(f)
	f.Close()
	if err != nil {
		return "", err
	}

	allowed := false
	for _, t := range allowedImageTypes {
		if mtype.Is(t) {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", errImageType
	}

	rel := filepath.Join("products", uuid.NewString()+mtype.Extension())
	if err := c.SaveUploadedFile(file, filepath.Join(config.UploadDir, rel)); err != nil {
		return "", err
	}
	return rel, nil
}

// removeProductImage deletes a previously stored image. A missing file is not
// an error; the reference is gone either way.
func removeProductImage(rel string) {
	if rel == "" {
		return
	}
	os.Remove(filepath.Join(config.UploadDir, rel))
}
