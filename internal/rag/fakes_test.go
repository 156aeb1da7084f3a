// ABOUTME: In-package fakes for the engine's collaborator interfaces
// ABOUTME: Shared by retriever, assembler, and engine tests
package rag

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/KaranJoshi1208/shivYatra/internal/index"
)

type fakeEmbedder struct {
	vec   []float32
	err   error
	calls atomic.Int32
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	if f.vec == nil {
		return []float32{0.1, 0.2, 0.3}, nil
	}
	return f.vec, nil
}

type fakeIndex struct {
	hits       []index.Hit
	queryErr   error
	count      int
	countErr   error
	queryCalls atomic.Int32
	countCalls atomic.Int32
	lastK      int
}

func (f *fakeIndex) Query(ctx context.Context, vec []float32, k int) ([]index.Hit, error) {
	f.queryCalls.Add(1)
	f.lastK = k
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.hits, nil
}

func (f *fakeIndex) Count(ctx context.Context) (int, error) {
	f.countCalls.Add(1)
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

type fakeGenerator struct {
	text       string
	genErr     error
	panicValue any
	models     []string
	modelsErr  error
	model      string
	genCalls   atomic.Int32
	lastSystem string
	lastUser   string
}

func (f *fakeGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	f.genCalls.Add(1)
	f.lastSystem = system
	f.lastUser = user
	if f.panicValue != nil {
		panic(f.panicValue)
	}
	if f.genErr != nil {
		return "", f.genErr
	}
	return f.text, nil
}

func (f *fakeGenerator) Models(ctx context.Context) ([]string, error) {
	if f.modelsErr != nil {
		return nil, f.modelsErr
	}
	return f.models, nil
}

func (f *fakeGenerator) Model() string {
	return f.model
}

var errBoom = errors.New("boom")
