package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"newsguard/internal/domain"
	"newsguard/internal/ports"
)

const articlesTable = "articles"

var articleColumns = []string{
	"id", "title", "content", "source", "url", "category",
	"created_at", "spam_score", "spam_level", "credibility", "details",
}

// PostgresRepository persists analyzed articles into Postgres. Writes go
// through single INSERT statements so a failed create persists nothing.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.ArticleRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Init creates the articles table when missing.
func (r *PostgresRepository) Init(ctx context.Context) error {
	schema := `CREATE TABLE IF NOT EXISTS articles (
        id BIGSERIAL PRIMARY KEY,
        title TEXT NOT NULL,
        content TEXT NOT NULL,
        source TEXT NOT NULL DEFAULT '',
        url TEXT NOT NULL DEFAULT '',
        category TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        spam_score INT NOT NULL,
        spam_level TEXT NOT NULL,
        credibility INT NOT NULL,
        details JSONB NOT NULL DEFAULT '{}'
    )`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}
	return nil
}

// Create inserts the record and reads back the assigned id and timestamp.
func (r *PostgresRepository) Create(ctx context.Context, article domain.Article) (domain.Article, error) {
	details, err := json.Marshal(article.Details)
	if err != nil {
		return domain.Article{}, fmt.Errorf("marshal details: %w", err)
	}

	query, args, err := r.builder.
		Insert(articlesTable).
		Columns("title", "content", "source", "url", "category",
			"spam_score", "spam_level", "credibility", "details").
		Values(article.Title, article.Content, article.Source, article.URL, article.Category,
			article.SpamScore, string(article.SpamLevel), article.Credibility, details).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build insert: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&article.ID, &article.Timestamp); err != nil {
		return domain.Article{}, fmt.Errorf("insert article: %w", err)
	}

	return article, nil
}

// List returns one newest-first page plus the total page count.
func (r *PostgresRepository) List(ctx context.Context, page, pageSize int) ([]domain.Article, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	countQuery, countArgs, err := r.builder.Select("COUNT(*)").From(articlesTable).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	totalPages := (count + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	articles, err := r.selectArticles(ctx, r.newestFirst().
		Limit(uint64(pageSize)).
		Offset(uint64((page-1)*pageSize)))
	if err != nil {
		return nil, 0, err
	}

	return articles, totalPages, nil
}

// Search matches the query case-insensitively against title and content.
func (r *PostgresRepository) Search(ctx context.Context, query string) ([]domain.Article, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Article{}, nil
	}

	pattern := "%" + query + "%"
	return r.selectArticles(ctx, r.newestFirst().Where(sq.Or{
		sq.ILike{"title": pattern},
		sq.ILike{"content": pattern},
	}))
}

// All returns every stored article newest-first.
func (r *PostgresRepository) All(ctx context.Context) ([]domain.Article, error) {
	return r.selectArticles(ctx, r.newestFirst())
}

func (r *PostgresRepository) newestFirst() sq.SelectBuilder {
	return r.builder.
		Select(articleColumns...).
		From(articlesTable).
		OrderBy("created_at DESC", "id DESC")
}

func (r *PostgresRepository) selectArticles(ctx context.Context, builder sq.SelectBuilder) ([]domain.Article, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		var (
			article domain.Article
			level   string
			details []byte
		)
		if err := rows.Scan(&article.ID, &article.Title, &article.Content, &article.Source,
			&article.URL, &article.Category, &article.Timestamp,
			&article.SpamScore, &level, &article.Credibility, &details); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		article.SpamLevel = domain.SpamLevel(level)
		if len(details) > 0 {
			if err := json.Unmarshal(details, &article.Details); err != nil {
				return nil, fmt.Errorf("decode details: %w", err)
			}
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return articles, nil
}
