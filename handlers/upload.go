package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// MaxImageSize caps restaurant image uploads at 10 MiB.
const MaxImageSize = 10 << 20

// UploadDir is where accepted images land; wired from config in main.
var UploadDir = "uploads"

// Client-side upload failures, reported as 400s by the caller.
var (
	ErrNotImage      = errors.New("only image files are allowed")
	ErrImageTooLarge = errors.New("image exceeds the 10MB size limit")
)

var imageExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var imageMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// saveRestaurantImage validates and persists one uploaded image, returning
// the public /uploads path to store on the restaurant. Validation happens
// before anything touches disk.
func saveRestaurantImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] || !imageMIMETypes[file.Header.Get("Content-Type")] {
		return "", ErrNotImage
	}
	if file.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(UploadDir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
