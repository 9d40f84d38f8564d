package judgment

import (
	"context"
	"encoding/json"
)

// Executor issues a single GET against the SAOS API. path is relative to the
// configured base URL; params are already filtered.
type Executor interface {
	Execute(ctx context.Context, path string, params []QueryParam) (json.RawMessage, error)
}

// JudgmentService builds SAOS requests and delegates them to an Executor.
type JudgmentService struct {
	executor Executor
}

// NewJudgmentService creates a judgment service on top of executor.
func NewJudgmentService(executor Executor) *JudgmentService {
	return &JudgmentService{executor: executor}
}

// SearchJudgments runs a judgments search and returns the remote body unchanged.
func (s *JudgmentService) SearchJudgments(ctx context.Context, query SearchQuery) (json.RawMessage, error) {
	return s.executor.Execute(ctx, SearchPath, query.Params())
}

// GetJudgment fetches a single judgment by its SAOS identifier.
func (s *JudgmentService) GetJudgment(ctx context.Context, id int64) (json.RawMessage, error) {
	return s.executor.Execute(ctx, JudgmentPath(id), nil)
}
