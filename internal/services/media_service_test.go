package services

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"neads_backend/internal/imageprocessor"
	"neads_backend/internal/models"
	"neads_backend/internal/services/dto"
	"neads_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUploadLimits() UploadLimits {
	return UploadLimits{
		MaxImageSize:      10 * 1024 * 1024,
		MaxVideoSize:      100 * 1024 * 1024,
		AllowedImageTypes: []string{"image/jpeg", "image/png"},
		AllowedVideoTypes: []string{"video/mp4"},
	}
}

func newMediaServiceForTest(mediaRepo *fakeMediaRepo, creatorRepo *fakeCreatorRepo) MediaService {
	return NewMediaService(mediaRepo, creatorRepo, fakeStorage{}, imageprocessor.NewProcessor(85), testUploadLimits())
}

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestMediaUploadDeniedForNonOwner(t *testing.T) {
	creator := testCreator("c1", "Alice", "Martin", 48.85, 2.35)
	owner := "owner"
	creator.UserID = &owner

	svc := newMediaServiceForTest(&fakeMediaRepo{}, &fakeCreatorRepo{creators: map[string]*models.Creator{"c1": &creator}})

	_, err := svc.Upload(context.Background(), nil, "c1",
		fileHeader("photo.jpg", "image/jpeg", 1024), nil,
		&dto.UploadMediaRequest{Type: "image"},
		Requester{UserID: "someone-else", Role: models.UserRoleCreator})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestMediaUploadRejectsOversizedFile(t *testing.T) {
	creator := testCreator("c1", "Alice", "Martin", 48.85, 2.35)
	svc := newMediaServiceForTest(&fakeMediaRepo{}, &fakeCreatorRepo{creators: map[string]*models.Creator{"c1": &creator}})

	_, err := svc.Upload(context.Background(), nil, "c1",
		fileHeader("photo.jpg", "image/jpeg", 11*1024*1024), nil,
		&dto.UploadMediaRequest{Type: "image"},
		Requester{UserID: "admin", Role: models.UserRoleAdmin})

	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestMediaUploadRejectsDisallowedContentType(t *testing.T) {
	creator := testCreator("c1", "Alice", "Martin", 48.85, 2.35)
	svc := newMediaServiceForTest(&fakeMediaRepo{}, &fakeCreatorRepo{creators: map[string]*models.Creator{"c1": &creator}})

	_, err := svc.Upload(context.Background(), nil, "c1",
		fileHeader("doc.pdf", "application/pdf", 1024), nil,
		&dto.UploadMediaRequest{Type: "image"},
		Requester{UserID: "admin", Role: models.UserRoleAdmin})

	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestMediaUploadRejectsUnknownMediaType(t *testing.T) {
	creator := testCreator("c1", "Alice", "Martin", 48.85, 2.35)
	svc := newMediaServiceForTest(&fakeMediaRepo{}, &fakeCreatorRepo{creators: map[string]*models.Creator{"c1": &creator}})

	_, err := svc.Upload(context.Background(), nil, "c1",
		fileHeader("thing.bin", "application/octet-stream", 1024), nil,
		&dto.UploadMediaRequest{Type: "document"},
		Requester{UserID: "admin", Role: models.UserRoleAdmin})

	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestMediaUploadVideoRequiresThumbnail(t *testing.T) {
	creator := testCreator("c1", "Alice", "Martin", 48.85, 2.35)
	svc := newMediaServiceForTest(&fakeMediaRepo{}, &fakeCreatorRepo{creators: map[string]*models.Creator{"c1": &creator}})

	_, err := svc.Upload(context.Background(), nil, "c1",
		fileHeader("reel.mp4", "video/mp4", 1024), nil,
		&dto.UploadMediaRequest{Type: "video"},
		Requester{UserID: "admin", Role: models.UserRoleAdmin})

	assert.ErrorIs(t, err, apperrors.ErrThumbnailRequired)
}

func TestMediaListGroupsByType(t *testing.T) {
	creator := testCreator("c1", "Alice", "Martin", 48.85, 2.35)
	mediaRepo := &fakeMediaRepo{
		media: []models.Media{
			{CreatorID: "c1", Type: models.MediaTypeImage, FilePath: "a.jpg"},
			{CreatorID: "c1", Type: models.MediaTypeVideo, FilePath: "b.mp4"},
			{CreatorID: "c1", Type: models.MediaTypeImage, FilePath: "c.jpg"},
		},
	}
	svc := newMediaServiceForTest(mediaRepo, &fakeCreatorRepo{creators: map[string]*models.Creator{"c1": &creator}})

	resp, err := svc.List(context.Background(), nil, "c1")
	require.NoError(t, err)

	assert.Len(t, resp.Images, 2)
	assert.Len(t, resp.Videos, 1)
	assert.Equal(t, "https://cdn.test/a.jpg", resp.Images[0].URL)
}

func TestMediaSetVerifiedStaffOnly(t *testing.T) {
	svc := newMediaServiceForTest(&fakeMediaRepo{}, &fakeCreatorRepo{})

	err := svc.SetVerified(nil, "m1", true, Requester{UserID: "u1", Role: models.UserRoleClient})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}
