package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveUploadedImage persists the optional "image" form file to a temp path and
// returns it, or "" when no file was attached. Callers must remove the file.
func saveUploadedImage(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No file attached is fine; services decide whether one is required.
		return "", nil
	}

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s", uuid.New().String(), filepath.Base(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	return tempPath, nil
}

func removeTempFile(path string) {
	if path != "" {
		os.Remove(path)
	}
}
