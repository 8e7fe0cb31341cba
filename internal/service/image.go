package service

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/devconnect/backend/config"
)

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
}

// ImageService uploads avatar images to S3. A nil S3 config means the
// feature is disabled and Enabled reports false.
type ImageService struct {
	s3cfg *config.S3Config
}

func NewImageService(s3cfg *config.S3Config) *ImageService {
	return &ImageService{s3cfg: s3cfg}
}

func (s *ImageService) Enabled() bool {
	return s.s3cfg != nil
}

// UploadAvatar stores the image under a key derived from the account id
// and returns the public URL. Only PNG and JPEG are accepted.
func (s *ImageService) UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("avatar storage is not configured")
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}

	key := fmt.Sprintf("avatars/%s-%s.%s", userID, uuid.New(), ext)
	_, err := s.s3cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return s.s3cfg.ObjectURL(key), nil
}
