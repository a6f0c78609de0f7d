package corpusrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/faq"
	apperrors "github.com/Rajveer-VIT/flight-chatbot-backend/pkg/errors"
)

const faqSchema = `
CREATE EXTENSION IF NOT EXISTS vector;
CREATE TABLE IF NOT EXISTS faq_entries (
	position     INTEGER PRIMARY KEY,
	question_en  TEXT NOT NULL,
	question_ar  TEXT NOT NULL DEFAULT '',
	answer_en    TEXT NOT NULL,
	answer_ar    TEXT NOT NULL DEFAULT '',
	embedding_model TEXT NOT NULL DEFAULT '',
	embedding_en vector,
	embedding_ar vector
);
ALTER TABLE faq_entries ADD COLUMN IF NOT EXISTS embedding_model TEXT NOT NULL DEFAULT '';`

// PostgresRepository stores the corpus in a pgvector-enabled table, one
// row per entry ordered by position.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the table when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, faqSchema); err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "create faq schema", err)
	}
	return nil
}

func (r *PostgresRepository) Load(ctx context.Context) ([]faq.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT question_en, question_ar, answer_en, answer_ar, embedding_model, embedding_en, embedding_ar
		FROM faq_entries
		ORDER BY position
	`)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "query faq entries", err)
	}
	defer rows.Close()

	var entries []faq.Entry
	for rows.Next() {
		var (
			entry  faq.Entry
			en, ar *pgvector.Vector
		)
		if err := rows.Scan(&entry.QuestionEN, &entry.QuestionAR, &entry.AnswerEN, &entry.AnswerAR, &entry.EmbeddingModel, &en, &ar); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeStorage, "scan faq entry", err)
		}
		if en != nil {
			entry.EmbeddingEN = en.Slice()
		}
		if ar != nil {
			entry.EmbeddingAR = ar.Slice()
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "iterate faq entries", err)
	}
	if err := validateCorpus(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Save replaces the table contents in one transaction.
func (r *PostgresRepository) Save(ctx context.Context, entries []faq.Entry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "begin faq save", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM faq_entries`); err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "clear faq entries", err)
	}
	batch := &pgx.Batch{}
	for i, entry := range entries {
		batch.Queue(`
			INSERT INTO faq_entries (position, question_en, question_ar, answer_en, answer_ar, embedding_model, embedding_en, embedding_ar)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, i, entry.QuestionEN, entry.QuestionAR, entry.AnswerEN, entry.AnswerAR, entry.EmbeddingModel,
			vectorParam(entry.EmbeddingEN), vectorParam(entry.EmbeddingAR))
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "insert faq entries", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "commit faq save", err)
	}
	return nil
}

func vectorParam(vec []float32) any {
	if len(vec) == 0 {
		return nil
	}
	return pgvector.NewVector(vec)
}

var _ faq.CorpusRepository = (*PostgresRepository)(nil)
