package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/assessment-agent/internal/types"
)

// ErrNotFound indicates no entity exists under the requested identity.
var ErrNotFound = errors.New("entity not found")

// SaveCandidate upserts a normalized candidate under its candidate ID.
func (s *Store) SaveCandidate(ctx context.Context, candidate *types.NormalizedCandidate) error {
	return s.save(ctx, tableCandidates, candidate.CandidateID, candidate)
}

// LoadCandidate loads a normalized candidate by ID.
func (s *Store) LoadCandidate(ctx context.Context, id string) (*types.NormalizedCandidate, error) {
	var candidate types.NormalizedCandidate
	if err := s.load(ctx, tableCandidates, id, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// LoadAllCandidates loads every stored candidate.
func (s *Store) LoadAllCandidates(ctx context.Context) ([]types.NormalizedCandidate, error) {
	return loadAll[types.NormalizedCandidate](ctx, s, tableCandidates)
}

// DeleteCandidate removes a candidate by ID.
func (s *Store) DeleteCandidate(ctx context.Context, id string) error {
	return s.delete(ctx, tableCandidates, id)
}

// SaveAssessment upserts an assessment under its assessment ID.
func (s *Store) SaveAssessment(ctx context.Context, assessment *types.Assessment) error {
	return s.save(ctx, tableAssessments, assessment.AssessmentID, assessment)
}

// LoadAssessment loads an assessment by ID.
func (s *Store) LoadAssessment(ctx context.Context, id string) (*types.Assessment, error) {
	var assessment types.Assessment
	if err := s.load(ctx, tableAssessments, id, &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

// LoadAllAssessments loads every stored assessment.
func (s *Store) LoadAllAssessments(ctx context.Context) ([]types.Assessment, error) {
	return loadAll[types.Assessment](ctx, s, tableAssessments)
}

// DeleteAssessment removes an assessment by ID.
func (s *Store) DeleteAssessment(ctx context.Context, id string) error {
	return s.delete(ctx, tableAssessments, id)
}

// SaveResponse upserts a candidate response under its response ID.
func (s *Store) SaveResponse(ctx context.Context, response *types.CandidateResponse) error {
	return s.save(ctx, tableResponses, response.ResponseID, response)
}

// LoadResponse loads a candidate response by ID.
func (s *Store) LoadResponse(ctx context.Context, id string) (*types.CandidateResponse, error) {
	var response types.CandidateResponse
	if err := s.load(ctx, tableResponses, id, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// LoadAllResponses loads every stored response.
func (s *Store) LoadAllResponses(ctx context.Context) ([]types.CandidateResponse, error) {
	return loadAll[types.CandidateResponse](ctx, s, tableResponses)
}

// DeleteResponse removes a response by ID.
func (s *Store) DeleteResponse(ctx context.Context, id string) error {
	return s.delete(ctx, tableResponses, id)
}

// SaveEvaluation upserts an assessment evaluation under its evaluation ID.
func (s *Store) SaveEvaluation(ctx context.Context, evaluation *types.AssessmentEvaluation) error {
	return s.save(ctx, tableEvaluations, evaluation.EvaluationID, evaluation)
}

// LoadEvaluation loads an assessment evaluation by ID.
func (s *Store) LoadEvaluation(ctx context.Context, id string) (*types.AssessmentEvaluation, error) {
	var evaluation types.AssessmentEvaluation
	if err := s.load(ctx, tableEvaluations, id, &evaluation); err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// LoadAllEvaluations loads every stored assessment evaluation.
func (s *Store) LoadAllEvaluations(ctx context.Context) ([]types.AssessmentEvaluation, error) {
	return loadAll[types.AssessmentEvaluation](ctx, s, tableEvaluations)
}

// DeleteEvaluation removes an evaluation by ID.
func (s *Store) DeleteEvaluation(ctx context.Context, id string) error {
	return s.delete(ctx, tableEvaluations, id)
}

func (s *Store) save(ctx context.Context, table, id string, entity any) error {
	if id == "" {
		return fmt.Errorf("cannot save to %s: empty entity id", table)
	}
	content, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity for %s: %w", table, err)
	}
	_, err = s.pool.Exec(ctx, fmt.Sprintf(
		`INSERT INTO %s (id, content) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET content = $2, updated_at = NOW()`, table),
		id, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s %s: %w", table, id, err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, table, id string, dest any) error {
	var content []byte
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT content FROM %s WHERE id = $1`, table), id,
	).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", table, id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to load %s %s: %w", table, id, err)
	}
	if err := json.Unmarshal(content, dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s %s: %w", table, id, err)
	}
	return nil
}

func loadAll[T any](ctx context.Context, s *Store, table string) ([]T, error) {
	rows, err := s.pool.Query(ctx,
		fmt.Sprintf(`SELECT content FROM %s ORDER BY created_at`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var entities []T
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		var entity T
		if err := json.Unmarshal(content, &entity); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s row: %w", table, err)
		}
		entities = append(entities, entity)
	}
	return entities, rows.Err()
}

func (s *Store) delete(ctx context.Context, table, id string) error {
	tag, err := s.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", table, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", table, id, ErrNotFound)
	}
	return nil
}
