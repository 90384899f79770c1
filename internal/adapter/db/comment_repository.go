package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/batirniyaz/todo-manager-proweb/internal/core/domain"
	"github.com/batirniyaz/todo-manager-proweb/internal/core/ports"
)

type CommentRepository struct {
	db *sqlx.DB
}

type commentRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	UserID    uint64    `db:"user_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) List(ctx context.Context, userID uint64, taskID *uint64) ([]domain.Comment, error) {
	query := "SELECT * FROM comments WHERE user_id = ?"
	args := []any{userID}
	if taskID != nil {
		query += " AND task_id = ?"
		args = append(args, *taskID)
	}
	query += " ORDER BY id"

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentRowToDomainComment(row))
	}

	return comments, nil
}

func (r *CommentRepository) Create(ctx context.Context, userID uint64, input domain.CreateCommentInput) (domain.Comment, error) {
	result, err := r.db.ExecContext(
		ctx,
		"INSERT INTO comments (task_id, user_id, text) VALUES (?, ?, ?)",
		input.TaskID,
		userID,
		input.Text,
	)
	if err != nil {
		return domain.Comment{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}

	return r.GetByID(ctx, userID, uint64(id))
}

func (r *CommentRepository) GetByID(ctx context.Context, userID, commentID uint64) (domain.Comment, error) {
	var row commentRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM comments WHERE id = ? AND user_id = ?", commentID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, domain.ErrCommentNotFound
		}
		return domain.Comment{}, err
	}

	return mapCommentRowToDomainComment(row), nil
}

func (r *CommentRepository) Update(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	_, err := r.db.ExecContext(
		ctx,
		"UPDATE comments SET text = ? WHERE id = ? AND user_id = ?",
		comment.Text,
		comment.ID,
		comment.UserID,
	)
	if err != nil {
		return domain.Comment{}, err
	}

	return r.GetByID(ctx, comment.UserID, comment.ID)
}

func (r *CommentRepository) Delete(ctx context.Context, userID, commentID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ? AND user_id = ?", commentID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCommentNotFound
	}

	return nil
}

func mapCommentRowToDomainComment(row commentRow) domain.Comment {
	return domain.Comment{
		ID:        row.ID,
		TaskID:    row.TaskID,
		UserID:    row.UserID,
		Text:      row.Text,
		CreatedAt: row.CreatedAt,
	}
}
