package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"carmart/internal/models"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MediaService resolves stored image references into browser-usable URLs.
// Object keys are presigned against the bucket; Google Drive share links are
// rewritten into direct-view form.
type MediaService interface {
	GetPresignedURL(objectName string, expiry time.Duration) (string, error)
	DeleteImage(ctx context.Context, objectName string) error
	EnsureBucketExists(ctx context.Context) error
	ConvertGoogleDriveURL(shareURL string) (string, error)
	ResolveImages(ctx context.Context, vehicle *models.Vehicle) []string
}

type mediaService struct {
	client *minio.Client
	bucket string
}

func NewMediaService(endpoint, accessKey, secretKey string, useSSL bool, bucket string) (MediaService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &mediaService{client: client, bucket: bucket}, nil
}

func (m *mediaService) GetPresignedURL(objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(context.Background(), m.bucket, objectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (m *mediaService) DeleteImage(ctx context.Context, objectName string) error {
	return m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
}

func (m *mediaService) EnsureBucketExists(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

var (
	driveFileRe  = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)
	driveParamRe = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
)

// ConvertGoogleDriveURL rewrites a Drive share link into the direct-view
// form. Both /file/d/<id>/view and open?id=<id> shapes are accepted.
func (m *mediaService) ConvertGoogleDriveURL(shareURL string) (string, error) {
	var fileID string
	if match := driveFileRe.FindStringSubmatch(shareURL); match != nil {
		fileID = match[1]
	} else if match := driveParamRe.FindStringSubmatch(shareURL); match != nil {
		fileID = match[1]
	}
	if fileID == "" {
		return "", fmt.Errorf("could not extract file id from %q", shareURL)
	}
	return fmt.Sprintf("https://drive.google.com/uc?export=view&id=%s", fileID), nil
}

// ResolveImages merges the vehicle's direct URLs, presigned object keys and
// converted Drive links. Unresolvable entries are skipped, not fatal.
func (m *mediaService) ResolveImages(ctx context.Context, vehicle *models.Vehicle) []string {
	urls := make([]string, 0, len(vehicle.ImageURLs)+len(vehicle.ImageKeys)+len(vehicle.GoogleDriveImages))
	urls = append(urls, vehicle.ImageURLs...)

	for _, key := range vehicle.ImageKeys {
		url, err := m.GetPresignedURL(key, time.Hour)
		if err != nil {
			log.Printf("WARN: failed to presign image %s for vehicle %s: %v", key, vehicle.ID, err)
			continue
		}
		urls = append(urls, url)
	}

	for _, share := range vehicle.GoogleDriveImages {
		url, err := m.ConvertGoogleDriveURL(share)
		if err != nil {
			log.Printf("WARN: skipping drive image for vehicle %s: %v", vehicle.ID, err)
			continue
		}
		urls = append(urls, url)
	}
	return urls
}
