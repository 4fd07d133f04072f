// Package indexprovider забирает file_list.json с удалённого хоста и
// отдаёт разобранный каталог. Запрос выполняется на каждый вызов, без кеша
// и без повторных попыток: ошибка сразу возвращается вызывающему.
package indexprovider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/magabrotheeeer/ogd-file-api/internal/models"
)

const (
	defaultTimeout = 10 * time.Second
	maxIndexBytes  = 32 << 20
)

// Parser превращает тело индекса в каталог.
type Parser interface {
	Parse(data []byte) (*models.Catalog, error)
}

// Recorder получает длительность и исход каждого запроса индекса.
type Recorder interface {
	ObserveIndexFetch(d time.Duration, err error)
}

// StatusError ответ индекса с кодом, отличным от 200.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client провайдер индекса поверх HTTP.
type Client struct {
	url        string
	httpClient httpDoer
	parser     Parser
	recorder   Recorder
}

// Config параметры Client. HTTPClient и Recorder необязательны.
type Config struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
	Parser     Parser
	Recorder   Recorder
}

// NewClient создаёт провайдер индекса.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        cfg.URL,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		parser:     cfg.Parser,
		recorder:   cfg.Recorder,
	}
}

// Fetch скачивает и разбирает индекс.
func (c *Client) Fetch(ctx context.Context) (*models.Catalog, error) {
	const op = "indexprovider.Fetch"

	start := time.Now()
	body, err := c.download(ctx)
	if c.recorder != nil {
		c.recorder.ObserveIndexFetch(time.Since(start), err)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cat, err := c.parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cat, nil
}

func (c *Client) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(excerpt))}
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxIndexBytes))
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
