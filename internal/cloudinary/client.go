// Package cloudinary реализует клиент внешнего хранилища изображений.
//
// Клиент загружает файл через unsigned upload API и возвращает публичный
// URL (secure_url), который сохраняется в рецепте как imageUrl.
package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client — клиент upload API Cloudinary.
type Client struct {
	cloudName    string
	uploadPreset string
	folder       string
	apiURL       string
	httpClient   *http.Client
}

// UploadResponse — ответ upload API. Нужен только secure_url.
type UploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// NewClient создаёт новый клиент Cloudinary.
func NewClient(cloudName, uploadPreset, folder string) *Client {
	return &Client{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		folder:       folder,
		apiURL:       "https://api.cloudinary.com/v1_1",
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Upload отправляет содержимое файла в Cloudinary и возвращает публичный URL.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	const op = "cloudinary.Upload"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := writer.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := writer.WriteField("folder", c.folder); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	url := fmt.Sprintf("%s/%s/image/upload", c.apiURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	var uploadResp UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if uploadResp.SecureURL == "" {
		return "", fmt.Errorf("%s: %w", op, errors.New("empty secure_url in response"))
	}
	return uploadResp.SecureURL, nil
}
