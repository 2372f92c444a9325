package challenge

import (
	"context"
	"errors"
)

// StaticProvider is a development shim that hands out a pre-shared
// verification token instead of running a real anti-bot widget. The stub
// backend accepts any non-empty token.
type StaticProvider struct {
	token string
}

// NewStaticProvider creates a provider that always issues token
func NewStaticProvider(token string) *StaticProvider {
	return &StaticProvider{token: token}
}

// Init never fails
func (p *StaticProvider) Init(ctx context.Context) error {
	return nil
}

// Execute returns the pre-shared token
func (p *StaticProvider) Execute(ctx context.Context) (string, error) {
	if p.token == "" {
		return "", errors.New("no verification token configured")
	}
	return p.token, nil
}
