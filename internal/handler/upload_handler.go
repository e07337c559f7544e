package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

const maxUploadBytes = 10 << 20

var imageExtensions = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

// UploadImage stores an image for use in page and catalogue content. The
// format is detected from the file contents, not its name.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No image uploaded"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Image is larger than 10 MB"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to read image"})
		return
	}
	cfg, format, err := image.DecodeConfig(src)
	src.Close()
	ext, ok := imageExtensions[format]
	if err != nil || !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Only JPEG, PNG, GIF and WebP images are allowed"})
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		a.log.Error("create upload dir failed", zap.String("dir", a.uploadDir), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to store image"})
		return
	}

	name := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(a.uploadDir, name)); err != nil {
		a.log.Error("save upload failed", zap.String("file", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to store image"})
		return
	}

	url := path.Join("/", a.uploadURL, name)
	a.log.Info("image uploaded", zap.String("url", url), zap.String("format", format))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     url,
		"width":   cfg.Width,
		"height":  cfg.Height,
		"format":  format,
	})
}
