package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/meridianpress/concierge/internal/query"
)

// CatalogStore serves the research-assistant lookups over the narrow
// bibliographic tables. All searches are case-insensitive substring matches
// with a fixed per-query sort order, so identical inputs always return
// identically ordered results.
type CatalogStore struct {
	db *gorm.DB
}

// NewCatalogStore creates a catalog store.
func NewCatalogStore(store *Store) *CatalogStore {
	return &CatalogStore{db: store.DB}
}

// articleYearColumns whitelists the per-year count columns on article_data.
var articleYearColumns = map[string]string{
	"2020": "year_2020_count",
	"2021": "year_2021_count",
	"2022": "year_2022_count",
	"2023": "year_2023_count",
	"2024": "year_2024_count",
	"2025": "year_2025_count",
}

var articleYears = []string{"2020", "2021", "2022", "2023", "2024", "2025"}

func (s *CatalogStore) find(ctx context.Context, filters []query.TextFilter, order string, limit int, dest any) error {
	q := s.db.WithContext(ctx)
	if clause, args := query.BuildConditions(filters); clause != "" {
		q = q.Where(clause, args...)
	}
	return q.Order(order).Limit(limit).Find(dest).Error
}

// SearchBooks finds books by title/content, author and university. The free
// query term hits both the title and the full content blob.
func (s *CatalogStore) SearchBooks(ctx context.Context, q, author, university string, limit int) ([]*Book, error) {
	filters := []query.TextFilter{
		{Columns: []string{"book_title", "content"}, Value: q},
		{Columns: []string{"author_name"}, Value: author},
		{Columns: []string{"university"}, Value: university},
	}
	var books []*Book
	if err := s.find(ctx, filters, "year DESC, book_title ASC", limit, &books); err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return books, nil
}

// FindJournals finds journal subscriptions by title or abbreviation.
func (s *CatalogStore) FindJournals(ctx context.Context, q string, limit int) ([]*JournalSubscription, error) {
	filters := []query.TextFilter{
		{Columns: []string{"journal_title", "journal_abbreviation"}, Value: q},
	}
	var journals []*JournalSubscription
	if err := s.find(ctx, filters, "journal_title ASC", limit, &journals); err != nil {
		return nil, fmt.Errorf("find journals: %w", err)
	}
	return journals, nil
}

// SearchArticles finds articles by title, author and journal.
func (s *CatalogStore) SearchArticles(ctx context.Context, q, author, journalTitle string, limit int) ([]*Article, error) {
	filters := []query.TextFilter{
		{Columns: []string{"title"}, Value: q},
		{Columns: []string{"author"}, Value: author},
		{Columns: []string{"journal_title"}, Value: journalTitle},
	}
	var articles []*Article
	if err := s.find(ctx, filters, "title ASC", limit, &articles); err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return articles, nil
}

// FindChapters finds book chapters by chapter title, author and book title.
func (s *CatalogStore) FindChapters(ctx context.Context, q, author, bookTitle string, limit int) ([]*Chapter, error) {
	filters := []query.TextFilter{
		{Columns: []string{"chapter_title"}, Value: q},
		{Columns: []string{"author_name"}, Value: author},
		{Columns: []string{"book_title"}, Value: bookTitle},
	}
	var chapters []*Chapter
	if err := s.find(ctx, filters, "chapter_title ASC", limit, &chapters); err != nil {
		return nil, fmt.Errorf("find chapters: %w", err)
	}
	return chapters, nil
}

// GetEditors finds editor records by journal title or abbreviation.
func (s *CatalogStore) GetEditors(ctx context.Context, journal string, limit int) ([]*Editor, error) {
	filters := []query.TextFilter{
		{Columns: []string{"journal_title", "journal_abbr"}, Value: journal},
	}
	var editors []*Editor
	if err := s.find(ctx, filters, "journal_title ASC", limit, &editors); err != nil {
		return nil, fmt.Errorf("get editors: %w", err)
	}
	return editors, nil
}

// GetArticleData returns article publication statistics. With a year it ranks
// journals by that year's count; without one it ranks by the all-time total.
// Years outside 2020-2025 are rejected before any query runs.
func (s *CatalogStore) GetArticleData(ctx context.Context, year string, limit int) ([]*ArticleData, error) {
	order := "all_year_total_count DESC, journal_name ASC"
	if year != "" {
		col, ok := articleYearColumns[year]
		if !ok {
			return nil, &query.InvalidYearError{Year: year, Valid: articleYears}
		}
		order = col + " DESC, journal_name ASC"
	}
	var rows []*ArticleData
	if err := s.db.WithContext(ctx).Order(order).Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("get article data: %w", err)
	}
	return rows, nil
}

// GetBookData returns book publication counts ranked by volume.
func (s *CatalogStore) GetBookData(ctx context.Context, limit int) ([]*BookData, error) {
	var rows []*BookData
	err := s.db.WithContext(ctx).
		Order("books_published DESC, publication_year DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get book data: %w", err)
	}
	return rows, nil
}

// GetChapterData returns chapter counts by university, optionally filtered.
func (s *CatalogStore) GetChapterData(ctx context.Context, university string, limit int) ([]*ChapterData, error) {
	filters := []query.TextFilter{
		{Columns: []string{"university_name"}, Value: university},
	}
	var rows []*ChapterData
	if err := s.find(ctx, filters, "chapter_count DESC, university_name ASC", limit, &rows); err != nil {
		return nil, fmt.Errorf("get chapter data: %w", err)
	}
	return rows, nil
}
