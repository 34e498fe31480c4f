package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"gemrock-store/models"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800

	// MaxImageBytes caps the size of a downloaded product image
	MaxImageBytes = 10 << 20

	// SizeThumb and SizeMedium are the supported image sizes
	SizeThumb  = "thumb"
	SizeMedium = "medium"
)

// ErrImageTooLarge is returned when a remote image exceeds the download limit
var ErrImageTooLarge = errors.New("image too large")

// ImageService serves resized product images, caching them on disk
type ImageService struct {
	cacheDir string
	maxBytes int64
	client   *http.Client
	logger   *zap.SugaredLogger
}

// NewImageService creates a new ImageService
func NewImageService(cacheDir string, timeout time.Duration, logger *zap.SugaredLogger) *ImageService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ImageService{
		cacheDir: cacheDir,
		maxBytes: MaxImageBytes,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// EnsureCacheDir ensures the cache directory exists, creates it if it doesn't
func (s *ImageService) EnsureCacheDir() error {
	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// CachePath returns the cache file path for a product image size
func (s *ImageService) CachePath(productID int, size string) string {
	return filepath.Join(s.cacheDir, fmt.Sprintf("product_%d_%s.jpg", productID, size))
}

// Thumbnail returns the product image resized to size as JPEG
func (s *ImageService) Thumbnail(ctx context.Context, item models.CatalogItem, size string) ([]byte, error) {
	size = normalizeSize(size)
	cachePath := s.CachePath(item.ID, size)

	if data, err := os.ReadFile(cachePath); err == nil {
		s.logger.Debugf("🔍 Image cache hit: %s", cachePath)
		return data, nil
	}

	if item.Image == "" {
		return nil, fmt.Errorf("product %d has no image", item.ID)
	}

	original, err := s.fetch(ctx, item.Image)
	if err != nil {
		return nil, err
	}

	optimized, err := s.OptimizeImage(original, size)
	if err != nil {
		return nil, err
	}

	if err := s.saveToCache(cachePath, optimized); err != nil {
		s.logger.Warnf("⚠️ Could not cache image %s: %v", cachePath, err)
	}
	return optimized, nil
}

func (s *ImageService) fetch(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes from %s", ErrImageTooLarge, s.maxBytes, imageURL)
	}
	return data, nil
}

func (s *ImageService) saveToCache(cachePath string, imageData []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	// readers only ever see a complete file: write aside, then rename over
	tmp, err := os.CreateTemp(filepath.Dir(cachePath), filepath.Base(cachePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(imageData); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), cachePath); err != nil {
		return fmt.Errorf("failed to move image into cache: %w", err)
	}
	s.logger.Infof("✅ Image cached: %s", cachePath)
	return nil
}

// OptimizeImage converts an image (PNG, JPEG, WebP, ...) to JPEG, fitting it
// inside the max dimension of size ("thumb" or "medium")
func (s *ImageService) OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	maxDim, quality := maxSizeMedium, qualityMedium
	if normalizeSize(size) == SizeThumb {
		maxDim, quality = maxSizeThumb, qualityThumb
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		s.logger.Debugf("🔄 Resized image: %dx%d -> %dx%d", bounds.Dx(), bounds.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

func normalizeSize(size string) string {
	if size == SizeThumb {
		return SizeThumb
	}
	return SizeMedium
}
