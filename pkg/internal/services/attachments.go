package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/inkstream/inkstream/pkg/internal/models"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gorm.io/datatypes"
)

var acceptedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// SaveImageAttachment stores an uploaded illustration under the configured
// uploads directory and returns the metadata mapping persisted on the post.
func SaveImageAttachment(file *multipart.FileHeader) (datatypes.JSONMap, error) {
	mime := file.Header.Get("Content-Type")
	if !lo.Contains(acceptedImageTypes, mime) {
		return nil, fmt.Errorf("unsupported image type: %s", mime)
	}

	root := viper.GetString("storage.uploads")
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("unable to prepare uploads directory: %v", err)
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(root, name))
	if err != nil {
		return nil, fmt.Errorf("unable to create upload file: %v", err)
	}
	defer dst.Close()

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("unable to read upload: %v", err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("unable to store upload: %v", err)
	}

	meta := models.PostImageMeta{
		Path: "/uploads/" + name,
		Mime: mime,
		Size: file.Size,
	}

	var mapping map[string]any
	raw, _ := jsoniter.Marshal(meta)
	_ = jsoniter.Unmarshal(raw, &mapping)

	log.Debug().Str("path", meta.Path).Int64("size", meta.Size).Msg("Stored one image attachment.")
	return mapping, nil
}
