package verify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ananyaa0518/resQAI/internal/config"
)

// Recaptcha verifies human-verification tokens against the reCAPTCHA
// siteverify endpoint. One attempt per token, bounded by the configured
// timeout; any transport error, non-2xx status or malformed body counts
// as a failed verification.
type Recaptcha struct {
	logger *slog.Logger
	cfg    config.RecaptchaConfig
	http   *http.Client
}

func NewRecaptcha(logger *slog.Logger, cfg config.RecaptchaConfig) *Recaptcha {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Recaptcha{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
	}
}

type siteverifyResponse struct {
	Success bool `json:"success"`
}

func (c *Recaptcha) Verify(ctx context.Context, token string) (bool, error) {
	form := url.Values{}
	form.Set("secret", c.cfg.Secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("recaptcha request failed", slog.Any("error", err))
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("recaptcha non-success status", slog.String("status", resp.Status))
		return false, nil
	}

	var body siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn("recaptcha malformed response", slog.Any("error", err))
		return false, nil
	}

	return body.Success, nil
}
