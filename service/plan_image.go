package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	cacheDir = "cache/plans"
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// EnsureCacheDir ensures the cache directory exists, creates it if it doesn't
func EnsureCacheDir() error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// GetCachePath returns the cache file path for a project's plan image at
// a given size
func GetCachePath(projectID string, size string) string {
	filename := fmt.Sprintf("plan_%s_%s.jpg", projectID, size)
	return filepath.Join(cacheDir, filename)
}

// CacheExists checks if a cached image exists
func CacheExists(cachePath string) bool {
	_, err := os.Stat(cachePath)
	return err == nil
}

// ReadFromCache reads an image from the cache
func ReadFromCache(cachePath string) ([]byte, error) {
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read from cache: %w", err)
	}
	return data, nil
}

// SaveToCache saves an image to the cache
func SaveToCache(cachePath string, imageData []byte) error {
	dir := filepath.Dir(cachePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	if err := os.WriteFile(cachePath, imageData, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	log.Printf("✓ Plan image cached: %s", cachePath)
	return nil
}

// DeleteFromCache removes a project's cached plan images. Missing files
// are not an error.
func DeleteFromCache(projectID string) {
	for _, size := range []string{"thumb", "medium"} {
		path := GetCachePath(projectID, size)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to remove cached plan image %s: %v", path, err)
		}
	}
}

// OptimizePlanImage converts an uploaded floor plan to JPEG and resizes
// it for display.
// imageData: raw image bytes (PNG, JPEG, etc.)
// size: "thumb" or "medium"
// Returns optimized JPEG image bytes
func OptimizePlanImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Plan image decoded: format=%s, bounds=%v", format, img.Bounds())

	var maxDim int
	var quality int
	switch size {
	case "thumb":
		maxDim = maxSizeThumb
		quality = qualityThumb
	case "medium":
		maxDim = maxSizeMedium
		quality = qualityMedium
	default:
		maxDim = maxSizeMedium
		quality = qualityMedium
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resizedImg image.Image = img
	if width > maxDim || height > maxDim {
		// Maintain aspect ratio
		var newWidth, newHeight int
		if width > height {
			newWidth = maxDim
			newHeight = int(float64(height) * float64(maxDim) / float64(width))
		} else {
			newHeight = maxDim
			newWidth = int(float64(width) * float64(maxDim) / float64(height))
		}

		log.Printf("🔄 Resizing plan image: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		resizedImg = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: quality}
	if err := jpeg.Encode(&buf, resizedImg, opts); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	return buf.Bytes(), nil
}
