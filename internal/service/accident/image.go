package accident

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// StoreImage saves an uploaded accident image and returns the stored
// filename.
func (s *Service) StoreImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	name, err := s.images.Save(filename, content)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	s.log.InfoContext(ctx, "accident image stored", slog.String("filename", name))

	return name, nil
}
