package isstracker

import (
	"context"

	loaduc "github.com/kailas-cloud/isstracker/internal/usecase/load"
)

// --- loadUseCase mock ---

type mockLoadUC struct {
	loadFn func(ctx context.Context) (loaduc.Result, error)
}

func (m *mockLoadUC) Load(ctx context.Context) (loaduc.Result, error) {
	return m.loadFn(ctx)
}

// --- feedPinger mock ---

type mockFeed struct {
	pingErr error
	name    string
}

func (m *mockFeed) Ping(context.Context) error { return m.pingErr }

func (m *mockFeed) SourceName() string { return m.name }
