package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	fsrepo "Cepte/internal/cli/repo/fs"
)

// Client — HTTP-клиент серверного API. Токен аутентификации живёт в
// файловом хранилище и передаётся auth-кукой в каждом запросе.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  fsrepo.AuthFSStore
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		tokens:  fsrepo.AuthFSStore{},
	}
}

// doJSON выполняет запрос с JSON-телом (payload может быть nil) и
// возвращает ответ вместе с прочитанным телом.
func (c *Client) doJSON(ctx context.Context, method, path string, payload any) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, err := c.tokens.LoadToken(); err == nil {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp, data, nil
}

// persistAuthFromResponse извлекает auth-куку из ответа и сохраняет её.
func (c *Client) persistAuthFromResponse(resp *http.Response) error {
	for _, ck := range resp.Cookies() {
		if ck.Name == "auth_token" && ck.Value != "" {
			return c.tokens.SaveToken(ck.Value)
		}
	}
	return fmt.Errorf("no auth cookie in response")
}

// statusError формирует ошибку из неуспешного ответа. Сервер кладёт
// текст причины в тело.
func statusError(resp *http.Response, body []byte) error {
	msg := string(bytes.TrimSpace(body))
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("server: %s", msg)
}
