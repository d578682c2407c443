package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianpress/concierge/internal/query"
)

func seedBooks(t *testing.T, store *Store) {
	t.Helper()
	books := []*Book{
		{Bookcode: "B001", BookTitle: "Artificial Intelligence in Medicine", AuthorName: "Chen Wei", University: "Stanford University", Year: 2024, PurchaseStatus: "purchased", Content: "artificial intelligence medicine diagnosis"},
		{Bookcode: "B002", BookTitle: "Machine Learning Foundations", AuthorName: "Rivera Santos", University: "MIT", Year: 2023, PurchaseStatus: "purchased", Content: "machine learning theory"},
		{Bookcode: "B003", BookTitle: "Deep Learning Systems", AuthorName: "Chen Wei", University: "Stanford University", Year: 2024, PurchaseStatus: "pending", Content: "neural networks artificial intelligence"},
		{Bookcode: "B004", BookTitle: "Organic Chemistry", AuthorName: "Park Jihoon", University: "Oxford", Year: 2022, PurchaseStatus: "purchased", Content: "chemistry synthesis"},
	}
	require.NoError(t, store.DB.Create(&books).Error)
}

func TestSearchBooksOrdersByYearThenTitle(t *testing.T) {
	store := openTestStore(t)
	seedBooks(t, store)
	catalog := NewCatalogStore(store)

	books, err := catalog.SearchBooks(context.Background(), "artificial intelligence", "", "", 5)
	require.NoError(t, err)
	require.Len(t, books, 2)
	// Both matched via title or content; newest year first, then title.
	assert.Equal(t, "Artificial Intelligence in Medicine", books[0].BookTitle)
	assert.Equal(t, "Deep Learning Systems", books[1].BookTitle)
}

func TestSearchBooksCombinesFiltersWithAND(t *testing.T) {
	store := openTestStore(t)
	seedBooks(t, store)
	catalog := NewCatalogStore(store)

	books, err := catalog.SearchBooks(context.Background(), "", "chen", "stanford", 10)
	require.NoError(t, err)
	require.Len(t, books, 2)

	books, err = catalog.SearchBooks(context.Background(), "chemistry", "chen", "", 10)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestSearchBooksNoFiltersReturnsUpToLimit(t *testing.T) {
	store := openTestStore(t)
	seedBooks(t, store)
	catalog := NewCatalogStore(store)

	books, err := catalog.SearchBooks(context.Background(), "", "", "", 3)
	require.NoError(t, err)
	assert.Len(t, books, 3)
}

func TestSearchBooksQuoteInQueryIsLiteral(t *testing.T) {
	store := openTestStore(t)
	seedBooks(t, store)
	catalog := NewCatalogStore(store)

	books, err := catalog.SearchBooks(context.Background(), "O'Brien'; DROP TABLE books;--", "", "", 10)
	require.NoError(t, err)
	assert.Empty(t, books)

	// The table must have survived.
	books, err = catalog.SearchBooks(context.Background(), "", "", "", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, books)
}

func TestFindJournalsMatchesTitleOrAbbreviation(t *testing.T) {
	store := openTestStore(t)
	journals := []*JournalSubscription{
		{JournalTitle: "Journal of Clinical Oncology", JournalAbbreviation: "JCO", CurrentYear: 42, PreviousYear: 40},
		{JournalTitle: "Nature Methods", JournalAbbreviation: "NM", CurrentYear: 12, PreviousYear: 15},
	}
	require.NoError(t, store.DB.Create(&journals).Error)
	catalog := NewCatalogStore(store)

	got, err := catalog.FindJournals(context.Background(), "jco", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Journal of Clinical Oncology", got[0].JournalTitle)
}

func TestSearchArticles(t *testing.T) {
	store := openTestStore(t)
	articles := []*Article{
		{Title: "Zebrafish Models of Disease", Author: "Okafor Amara", JournalTitle: "Nature Methods", SubscriptionStatus: "active"},
		{Title: "Advances in Gene Editing", Author: "Okafor Amara", JournalTitle: "Cell", SubscriptionStatus: "active"},
	}
	require.NoError(t, store.DB.Create(&articles).Error)
	catalog := NewCatalogStore(store)

	got, err := catalog.SearchArticles(context.Background(), "", "okafor", "", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by title ascending.
	assert.Equal(t, "Advances in Gene Editing", got[0].Title)
}

func TestFindChapters(t *testing.T) {
	store := openTestStore(t)
	chapters := []*Chapter{
		{ChapterTitle: "Introduction to Proteomics", AuthorName: "Liu Fang", BookTitle: "Modern Biochemistry", University: "Caltech"},
		{ChapterTitle: "Mass Spectrometry Basics", AuthorName: "Liu Fang", BookTitle: "Modern Biochemistry", University: "Caltech"},
	}
	require.NoError(t, store.DB.Create(&chapters).Error)
	catalog := NewCatalogStore(store)

	got, err := catalog.FindChapters(context.Background(), "proteomics", "", "biochemistry", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Introduction to Proteomics", got[0].ChapterTitle)
}

func TestGetEditors(t *testing.T) {
	store := openTestStore(t)
	editors := []*Editor{
		{JournalTitle: "Journal of Clinical Oncology", JournalAbbr: "JCO", EditorCount: 8, SubscriptionStatus: "active"},
	}
	require.NoError(t, store.DB.Create(&editors).Error)
	catalog := NewCatalogStore(store)

	got, err := catalog.GetEditors(context.Background(), "oncology", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 8, got[0].EditorCount)
}

func TestGetArticleDataRanksByYearColumn(t *testing.T) {
	store := openTestStore(t)
	rows := []*ArticleData{
		{JournalName: "Alpha Review", Year2023Count: 5, Year2024Count: 40, AllYearTotalCount: 45},
		{JournalName: "Beta Letters", Year2023Count: 50, Year2024Count: 10, AllYearTotalCount: 60},
	}
	require.NoError(t, store.DB.Create(&rows).Error)
	catalog := NewCatalogStore(store)

	got, err := catalog.GetArticleData(context.Background(), "2024", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha Review", got[0].JournalName)

	got, err = catalog.GetArticleData(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Equal(t, "Beta Letters", got[0].JournalName)
}

func TestGetArticleDataRejectsInvalidYear(t *testing.T) {
	store := openTestStore(t)
	catalog := NewCatalogStore(store)

	_, err := catalog.GetArticleData(context.Background(), "2019", 10)
	var invalidYear *query.InvalidYearError
	require.ErrorAs(t, err, &invalidYear)
	assert.Equal(t, "2019", invalidYear.Year)
	assert.Contains(t, invalidYear.Error(), "2020")
}

func TestGetBookDataAndChapterData(t *testing.T) {
	store := openTestStore(t)
	bookData := []*BookData{
		{PublicationYear: 2023, BooksPublished: 120},
		{PublicationYear: 2024, BooksPublished: 95},
	}
	require.NoError(t, store.DB.Create(&bookData).Error)
	chapterData := []*ChapterData{
		{UniversityName: "Stanford University", BookxmlYear: 2024, ChapterCount: 310},
		{UniversityName: "MIT", BookxmlYear: 2024, ChapterCount: 280},
	}
	require.NoError(t, store.DB.Create(&chapterData).Error)
	catalog := NewCatalogStore(store)

	books, err := catalog.GetBookData(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, 2023, books[0].PublicationYear)

	chapters, err := catalog.GetChapterData(context.Background(), "stanford", 10)
	require.NoError(t, err)
	require.Len(t, chapters, 1)
	assert.Equal(t, 310, chapters[0].ChapterCount)
}
