package commands

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/ai-solution/site-backend/internal/application/interfaces"
	"github.com/google/uuid"
)

// resolveImage collapses the three image modes into (set, url): a multipart
// upload wins over a direct URL, an explicit clear stores NULL, and absence
// of all three leaves the stored image untouched (set=false).
func resolveImage(ctx context.Context, store interfaces.Storage, folder string,
	upload *multipart.FileHeader, imageURL *string, clear bool) (bool, *string, error) {

	if upload != nil {
		url, err := uploadImage(ctx, store, folder, upload)
		if err != nil {
			return false, nil, err
		}
		return true, &url, nil
	}
	if imageURL != nil {
		return true, imageURL, nil
	}
	if clear {
		return true, nil, nil
	}
	return false, nil, nil
}

func uploadImage(ctx context.Context, store interfaces.Storage, folder string, fileHeader *multipart.FileHeader) (string, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("err opening file, %v", err)
	}
	defer f.Close()

	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")
	var ct *string
	if contentType != "" {
		ct = &contentType
	}
	url, err := store.UploadFile(ctx, key, ct, f)
	if err != nil {
		return "", fmt.Errorf("err uploading to storage, %v", err)
	}
	return url, nil
}
