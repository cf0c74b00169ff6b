package pexels

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Download saves the photo's original asset as dir/photo_<id>.jpg and
// returns the written path. The file only appears once fully written.
func (c *Client) Download(ctx context.Context, photo Photo, dir string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	src := strings.TrimSpace(photo.Src.Original)
	if src == "" {
		return "", fmt.Errorf("photo %d has no original url", photo.ID)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	resp, err := c.get(ctx, src, "image/*", false)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	tmp, err := os.CreateTemp(dir, ".photo-*.part")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write download: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("chmod download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close download: %w", err)
	}

	dest := filepath.Join(dir, photo.DownloadName())
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("move download: %w", err)
	}
	c.logger.Info("photo downloaded", "id", photo.ID, "path", dest)
	return dest, nil
}
