// Package storage sube los documentos generados a Google Drive a través de una
// Web App de Apps Script que recibe el archivo en base64 y devuelve su URL.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	appquote "github.com/jhoicas/o2d-pipeline-api/internal/application/quotation"
	"github.com/jhoicas/o2d-pipeline-api/pkg/config"
)

var _ appquote.DocumentStore = (*AppsScriptStore)(nil)

// AppsScriptStore implementa quotation.DocumentStore.
type AppsScriptStore struct {
	url      string
	folderID string
	client   *http.Client
	limiter  *rate.Limiter
}

type uploadRequest struct {
	Action   string `json:"action"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Content  string `json:"content"`
	FolderID string `json:"folderId,omitempty"`
}

type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	FileURL string `json:"fileUrl"`
	Error   string `json:"error"`
}

// NewAppsScriptStore devuelve nil si no hay URL configurada; el caso de uso
// responde entonces ErrStorageDisabled.
func NewAppsScriptStore(cfg config.StorageConfig) *AppsScriptStore {
	if cfg.ScriptURL == "" {
		return nil
	}
	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 2
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AppsScriptStore{
		url:      cfg.ScriptURL,
		folderID: cfg.FolderID,
		client:   &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Upload envía el documento y devuelve la URL que informa el script.
// Subir dos veces el mismo nombre lo sobrescribe en el script.
func (s *AppsScriptStore) Upload(ctx context.Context, fileName, mimeType string, content []byte) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("storage: esperar cupo: %w", err)
	}

	body, err := json.Marshal(uploadRequest{
		Action:   "upload",
		FileName: fileName,
		MimeType: mimeType,
		Content:  base64.StdEncoding.EncodeToString(content),
		FolderID: s.folderID,
	})
	if err != nil {
		return "", fmt.Errorf("storage: serializar: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("storage: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: enviar: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("storage: leer respuesta: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("storage: status %d", resp.StatusCode)
	}

	var out uploadResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("storage: respuesta inválida: %w", err)
	}
	if !out.Success {
		return "", fmt.Errorf("storage: %s", out.Error)
	}
	url := out.URL
	if url == "" {
		url = out.FileURL
	}
	if url == "" {
		return "", fmt.Errorf("storage: respuesta sin URL")
	}
	return url, nil
}
