package cloudstorage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client хранилище чеков об оплате в Cloudinary
type Client struct {
	cld    *cloudinary.Cloudinary
	folder string
	now    func() time.Time
	log    Logger
}

// NewClient создает клиента Cloudinary по имени облака и ключам API
func NewClient(cloudName, apiKey, apiSecret, folder string, log Logger) (*Client, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, ErrInvalidCredentials
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	return NewClientWithCloudinary(cld, folder, log), nil
}

// NewClientWithCloudinary оборачивает уже настроенный экземпляр Cloudinary
func NewClientWithCloudinary(cld *cloudinary.Cloudinary, folder string, log Logger) *Client {
	return &Client{
		cld:    cld,
		folder: folder,
		now:    time.Now,
		log:    log,
	}
}

// UploadProof загружает чек и возвращает его постоянную HTTPS ссылку
// Имя файла: <bookingID>-<unix ms>, расширение сохраняется из исходного имени
func (c *Client) UploadProof(ctx context.Context, bookingID string, fileName string, file io.Reader) (string, error) {
	publicID := fmt.Sprintf("%s-%d", bookingID, c.now().UnixMilli())
	if ext := strings.TrimPrefix(filepath.Ext(fileName), "."); ext != "" {
		publicID = publicID + "." + strings.ToLower(ext)
	}

	result, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       c.folder,
		PublicID:     publicID,
		ResourceType: "auto",
	})
	if err != nil {
		c.log.Error("Cloudinary upload failed for booking_id=%s: %v", bookingID, err)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if result.Error.Message != "" {
		c.log.Error("Cloudinary rejected upload for booking_id=%s: %s", bookingID, result.Error.Message)
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, result.Error.Message)
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("%w: empty secure_url", ErrInvalidResponse)
	}

	c.log.Info("Payment proof uploaded: booking_id=%s, public_id=%s", bookingID, result.PublicID)
	return result.SecureURL, nil
}
