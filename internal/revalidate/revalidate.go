// Package revalidate tells the frontend to rebuild its cached pages after the
// content changed.
package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer   = "portfolio-backend"
	tokenTTL = 5 * time.Minute
)

// Notifier posts to the frontend revalidation hook. The request carries a
// short-lived HS256 token signed with the shared secret.
type Notifier struct {
	URL    string
	Secret []byte
	Client *http.Client

	now func() time.Time
}

func New(url, secret string) *Notifier {
	return &Notifier{
		URL:    url,
		Secret: []byte(secret),
		Client: &http.Client{Timeout: 10 * time.Second},
		now:    time.Now,
	}
}

// Trigger is a no-op when no URL is configured.
func (n *Notifier) Trigger(ctx context.Context, reason string) error {
	if n.URL == "" {
		slog.Info("NEXT_REVALIDATION_URL is not set, skipping revalidation")
		return nil
	}

	token, err := n.sign(reason)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]string{"reason": reason})
	if err != nil {
		return fmt.Errorf("encode revalidation payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build revalidation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("trigger revalidation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revalidation failed with status code: %d", resp.StatusCode)
	}
	slog.Info("Revalidation triggered successfully", "reason", reason)
	return nil
}

func (n *Notifier) sign(reason string) (string, error) {
	now := n.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   reason,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	})
	signed, err := token.SignedString(n.Secret)
	if err != nil {
		return "", fmt.Errorf("sign revalidation token: %w", err)
	}
	return signed, nil
}

// Verify checks a token produced by Trigger and returns its claims. It is the
// receiving side of the hook, for Go services that accept revalidation calls.
func Verify(tokenString string, secret []byte) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	return claims, nil
}
