package filestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего файлового хранилища изображений.
// Хранилище адресуется как {baseURL}/object/{bucket}/{key}, публичные
// ссылки как {baseURL}/object/public/{bucket}/{key}.
type Client struct {
	baseURL    string
	bucket     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента файлового хранилища
func NewClient(baseURL, bucket string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		bucket:  bucket,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Upload загружает объект и возвращает его публичный URL.
// Повторная загрузка по тому же ключу перезаписывает объект.
func (c *Client) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	publicURL := c.PublicURL(key)
	c.log.Info("Uploaded object %s/%s (%d bytes)", c.bucket, key, len(data))

	return publicURL, nil
}

// PublicURL возвращает публичную ссылку на объект по его ключу
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, key)
}

// Delete удаляет объект из хранилища
func (c *Client) Delete(ctx context.Context, key string) error {
	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrObjectNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
