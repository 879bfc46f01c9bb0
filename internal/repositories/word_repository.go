package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/lexilearn/backend/internal/models"
	"github.com/lexilearn/backend/internal/review"
	"go.uber.org/zap"
)

// mysqlDuplicateEntry is the MySQL error number for a unique key violation
const mysqlDuplicateEntry = 1062

const wordColumns = `id, word, meaning, eli5, example_sentence, difficulty, correct_count, wrong_count, last_reviewed, date_added`

type wordRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *sql.DB, logger *zap.Logger) *wordRepository {
	return &wordRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is implemented by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanWord reads one row selected with wordColumns
func scanWord(s rowScanner) (int64, models.WordEntry, error) {
	var (
		id           int64
		entry        models.WordEntry
		difficulty   string
		lastReviewed sql.NullTime
	)
	err := s.Scan(
		&id,
		&entry.Word,
		&entry.Meaning,
		&entry.ELI5,
		&entry.ExampleSentence,
		&difficulty,
		&entry.CorrectCount,
		&entry.WrongCount,
		&lastReviewed,
		&entry.DateAdded,
	)
	if err != nil {
		return 0, models.WordEntry{}, err
	}

	entry.Difficulty = models.Difficulty(difficulty)
	if lastReviewed.Valid {
		day := models.CalendarDay(lastReviewed.Time)
		entry.LastReviewed = &day
	}
	entry.DateAdded = models.CalendarDay(entry.DateAdded)
	return id, entry, nil
}

// nullDate converts an optional calendar day into a query argument
func nullDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return models.CalendarDay(*t)
}

// List returns all words of a user, newest first
func (r *wordRepository) List(ctx context.Context, userID string) ([]models.WordEntry, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE user_id = ?
		ORDER BY date_added DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query words", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	words := []models.WordEntry{}
	for rows.Next() {
		_, entry, err := scanWord(rows)
		if err != nil {
			r.logger.Error("failed to scan word", zap.Error(err))
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, entry)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return words, nil
}

// Insert stores a new word for a user
//
// Returns models.ErrWordExists when the user already has the word, compared case-insensitively.
func (r *wordRepository) Insert(ctx context.Context, userID string, entry models.WordEntry) error {
	query := `
		INSERT INTO words (user_id, word, word_key, meaning, eli5, example_sentence, difficulty, correct_count, wrong_count, last_reviewed, date_added)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		userID,
		entry.Word,
		models.WordKey(entry.Word),
		entry.Meaning,
		entry.ELI5,
		entry.ExampleSentence,
		string(entry.Difficulty),
		entry.CorrectCount,
		entry.WrongCount,
		nullDate(entry.LastReviewed),
		models.CalendarDay(entry.DateAdded),
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return models.ErrWordExists
		}
		r.logger.Error("failed to insert word", zap.String("user_id", userID), zap.String("word", entry.Word), zap.Error(err))
		return fmt.Errorf("failed to insert word: %w", err)
	}

	return nil
}

// UpdateDifficulty sets the manual difficulty flag of a word
func (r *wordRepository) UpdateDifficulty(ctx context.Context, userID, word string, difficulty models.Difficulty) (*models.WordEntry, error) {
	return r.update(ctx, userID, word, func(entry models.WordEntry) models.WordEntry {
		return review.SetDifficulty(entry, difficulty)
	})
}

// RecordAnswer applies one quiz answer to a word's counters
func (r *wordRepository) RecordAnswer(ctx context.Context, userID, word string, wasCorrect bool, now time.Time) (*models.WordEntry, error) {
	return r.update(ctx, userID, word, func(entry models.WordEntry) models.WordEntry {
		return review.RecordAnswer(entry, wasCorrect, now)
	})
}

// update locks the word row, applies mutate and writes the result back in one transaction
func (r *wordRepository) update(ctx context.Context, userID, word string, mutate func(models.WordEntry) models.WordEntry) (*models.WordEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE user_id = ? AND word_key = ?
		FOR UPDATE
	`

	id, entry, err := scanWord(tx.QueryRowContext(ctx, query, userID, models.WordKey(word)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrWordNotFound
		}
		r.logger.Error("failed to lock word", zap.String("user_id", userID), zap.String("word", word), zap.Error(err))
		return nil, fmt.Errorf("failed to lock word: %w", err)
	}

	updated := mutate(entry)

	update := `
		UPDATE words
		SET difficulty = ?, correct_count = ?, wrong_count = ?, last_reviewed = ?
		WHERE id = ?
	`
	if _, err := tx.ExecContext(ctx, update,
		string(updated.Difficulty),
		updated.CorrectCount,
		updated.WrongCount,
		nullDate(updated.LastReviewed),
		id,
	); err != nil {
		r.logger.Error("failed to update word", zap.String("user_id", userID), zap.String("word", word), zap.Error(err))
		return nil, fmt.Errorf("failed to update word: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &updated, nil
}

// Delete removes a word of a user
func (r *wordRepository) Delete(ctx context.Context, userID, word string) error {
	query := `DELETE FROM words WHERE user_id = ? AND word_key = ?`

	result, err := r.db.ExecContext(ctx, query, userID, models.WordKey(word))
	if err != nil {
		r.logger.Error("failed to delete word", zap.String("user_id", userID), zap.String("word", word), zap.Error(err))
		return fmt.Errorf("failed to delete word: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrWordNotFound
	}

	return nil
}
