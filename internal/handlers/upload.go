package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	maxUploadSize = 10 << 20
	maxImageBound = 800
	jpegQuality   = 85
	uploadURLPath = "/uploads/"
)

// POST /api/upload — multipart field "image".
//
// The original upload is saved under a unique name, then resized to fit
// 800×800 (never upscaled) and re-encoded as JPEG at fixed quality. The
// original file is deleted after a successful conversion and kept, with its
// original extension, when conversion fails.
func UploadImage(uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/upload"
		defer handlePanic(c, route)

		file, err := c.FormFile("image")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "No image file provided")
			return
		}

		if file.Size > maxUploadSize {
			respondWithError(c, http.StatusBadRequest, route, "Image file too large (max 10MB)")
			return
		}

		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			respondWithError(c, http.StatusBadRequest, route, "Only image files are allowed")
			return
		}

		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Something went wrong!")
			return
		}

		name := uuid.NewString()
		originalName := name + strings.ToLower(filepath.Ext(file.Filename))
		originalPath := filepath.Join(uploadDir, originalName)

		if err := c.SaveUploadedFile(file, originalPath); err != nil {
			log.Printf("[%s] save failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "Something went wrong!")
			return
		}

		servedName := originalName
		if optimizedName, err := optimizeImage(uploadDir, name, originalPath); err != nil {
			// Fall back to serving the original file when conversion fails.
			log.Printf("[%s] optimization failed, keeping original: %v", route, err)
		} else {
			servedName = optimizedName
		}

		c.JSON(http.StatusOK, gin.H{
			"imageUrl": publicBaseURL + uploadURLPath + servedName,
		})
	}
}

func optimizeImage(uploadDir, name, originalPath string) (string, error) {
	img, err := imaging.Open(originalPath, imaging.AutoOrientation(true))
	if err != nil {
		return "", err
	}

	// Fit only scales down; smaller images pass through untouched.
	resized := imaging.Fit(img, maxImageBound, maxImageBound, imaging.Lanczos)

	optimizedName := name + ".jpg"
	optimizedPath := filepath.Join(uploadDir, optimizedName)
	if err := imaging.Save(resized, optimizedPath, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", err
	}

	if optimizedPath != originalPath {
		if err := os.Remove(originalPath); err != nil {
			log.Printf("[POST /api/upload] could not remove original %s: %v", originalPath, err)
		}
	}

	return optimizedName, nil
}
