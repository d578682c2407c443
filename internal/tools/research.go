package tools

import (
	"context"

	"github.com/meridianpress/concierge/internal/db"
)

type searchBooksParams struct {
	Query      string `json:"query"`
	Author     string `json:"author"`
	University string `json:"university"`
	Limit      int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type findJournalsParams struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type searchArticlesParams struct {
	Query        string `json:"query"`
	Author       string `json:"author"`
	JournalTitle string `json:"journalTitle"`
	Limit        int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type findChaptersParams struct {
	Query     string `json:"query"`
	Author    string `json:"author"`
	BookTitle string `json:"bookTitle"`
	Limit     int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type editorInfoParams struct {
	Journal string `json:"journal"`
	Limit   int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type articleDataParams struct {
	Year  string `json:"year"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type bookDataParams struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=50"`
}

type chapterDataParams struct {
	University string `json:"university"`
	Limit      int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

// NewResearchRegistry builds the tool set for the research assistant: catalog
// searches over books, journals, articles, chapters and editors, plus the
// publication statistics tables.
func NewResearchRegistry(catalog *db.CatalogStore) *Registry {
	return NewRegistry(
		&Tool{
			Name:        "searchBooks",
			Description: "Search for academic books by title, author, or university. Use this to help users find specific books or books by certain authors/institutions.",
			InputSchema: objectSchema(map[string]any{
				"query":      stringProp("Search query for book title"),
				"author":     stringProp("Author name to search for"),
				"university": stringProp("University affiliation"),
				"limit":      limitProp("Number of results to return"),
			}),
			failure: map[string]any{
				"error":          "I couldn't access the book catalog right now. Our collection includes books from various years and universities. Please try a different search term or contact support if needed.",
				"data_available": "Books from multiple years and institutions",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p searchBooksParams
				if err := decodeArgs("searchBooks", args, &p); err != nil {
					return nil, err
				}
				books, err := catalog.SearchBooks(ctx, p.Query, p.Author, p.University, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{"books": books}, nil
			},
		},
		&Tool{
			Name:        "findJournals",
			Description: "Find journal subscriptions by title or abbreviation. Use this to help users discover available journals and their subscription status.",
			InputSchema: objectSchema(map[string]any{
				"query": stringProp("Journal title or abbreviation to search for"),
				"limit": limitProp("Number of results to return"),
			}, "query"),
			failure: map[string]any{
				"error":          "I couldn't access the journal database at the moment. Our collection includes various academic journals with subscription information. Please try a different search or contact support.",
				"data_available": "Academic journals with subscription status",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p findJournalsParams
				if err := decodeArgs("findJournals", args, &p); err != nil {
					return nil, err
				}
				journals, err := catalog.FindJournals(ctx, p.Query, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{"journals": journals}, nil
			},
		},
		&Tool{
			Name:        "searchArticles",
			Description: "Search for articles by title, author, or journal. Use this to help users find specific research articles.",
			InputSchema: objectSchema(map[string]any{
				"query":        stringProp("Search query for article title"),
				"author":       stringProp("Author name"),
				"journalTitle": stringProp("Journal title"),
				"limit":        limitProp("Number of results to return"),
			}),
			failure: map[string]any{
				"error":          "I couldn't access the article database right now. Our collection includes research articles from various journals and authors. Please try a different search term or approach.",
				"data_available": "Research articles from multiple journals",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p searchArticlesParams
				if err := decodeArgs("searchArticles", args, &p); err != nil {
					return nil, err
				}
				articles, err := catalog.SearchArticles(ctx, p.Query, p.Author, p.JournalTitle, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{"articles": articles}, nil
			},
		},
		&Tool{
			Name:        "findChapters",
			Description: "Find book chapters by title, author, or book title. Use this to help users discover specific chapters within books.",
			InputSchema: objectSchema(map[string]any{
				"query":     stringProp("Search query for chapter title"),
				"author":    stringProp("Chapter author name"),
				"bookTitle": stringProp("Book title"),
				"limit":     limitProp("Number of results to return"),
			}),
			failure: map[string]any{
				"error":          "I couldn't access the chapter database at the moment. Our collection includes book chapters from various authors and publications. Please try a different search or contact support.",
				"data_available": "Book chapters from multiple publications",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p findChaptersParams
				if err := decodeArgs("findChapters", args, &p); err != nil {
					return nil, err
				}
				chapters, err := catalog.FindChapters(ctx, p.Query, p.Author, p.BookTitle, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{"chapters": chapters}, nil
			},
		},
		&Tool{
			Name:        "getEditorInfo",
			Description: "Get journal editor information to help users find editorial contacts or understand journal editorial structure.",
			InputSchema: objectSchema(map[string]any{
				"journal": stringProp("Journal title or abbreviation"),
				"limit":   limitProp("Number of results to return"),
			}),
			failure: map[string]any{
				"error":          "I couldn't access the editor information right now. Our database includes editorial details for various academic journals. Please try a different journal search or contact support.",
				"data_available": "Editorial information for academic journals",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p editorInfoParams
				if err := decodeArgs("getEditorInfo", args, &p); err != nil {
					return nil, err
				}
				editors, err := catalog.GetEditors(ctx, p.Journal, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{"editors": editors}, nil
			},
		},
		&Tool{
			Name:        "getArticleData",
			Description: "Get article publication statistics by year (2020-2025). ALWAYS extract year and limit from user queries. Examples: 'articles published in 2024' -> {year: '2024'}, 'publication trends 2023' -> {year: '2023'}",
			InputSchema: objectSchema(map[string]any{
				"year":  stringProp("Filter by year. Extract from '2020', '2021', '2022', '2023', '2024', '2025', etc."),
				"limit": limitProp("Number of results to return. Extract from 'top 5', 'first 10', etc."),
			}),
			failure: map[string]any{
				"error":          "I couldn't access the article statistics right now. Our data includes publication counts from 2020 to 2025. Please try a different year or contact support.",
				"data_available": "Article publication statistics (2020-2025)",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p articleDataParams
				if err := decodeArgs("getArticleData", args, &p); err != nil {
					return nil, err
				}
				rows, err := catalog.GetArticleData(ctx, p.Year, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{"articleData": rows}, nil
			},
		},
		&Tool{
			Name:        "getBookData",
			Description: "Get book publication statistics and trends. ALWAYS extract limit from user queries. Examples: 'book publication stats' -> {}, 'top 5 book publishers' -> {limit: 5}",
			InputSchema: objectSchema(map[string]any{
				"limit": limitProp("Number of results to return. Extract from 'top 5', 'first 10', etc."),
			}),
			failure: map[string]any{
				"error":          "I couldn't access the book publication statistics at the moment. Our collection includes comprehensive book publication data. Please try again or contact support.",
				"data_available": "Book publication statistics and trends",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p bookDataParams
				if err := decodeArgs("getBookData", args, &p); err != nil {
					return nil, err
				}
				rows, err := catalog.GetBookData(ctx, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{"bookData": rows}, nil
			},
		},
		&Tool{
			Name:        "getChapterData",
			Description: "Get chapter statistics by university and publication trends. ALWAYS extract university and limit from user queries. Examples: 'chapters from MIT' -> {university: 'MIT'}, 'top 3 universities by chapters' -> {limit: 3}",
			InputSchema: objectSchema(map[string]any{
				"university": stringProp("Filter by university name. Extract from 'MIT', 'Harvard', 'Stanford', etc."),
				"limit":      limitProp("Number of results to return. Extract from 'top 5', 'first 10', etc."),
			}),
			failure: map[string]any{
				"error":          "I couldn't access the chapter statistics right now. Our data includes chapter counts by university and publication trends. Please try a different search or contact support.",
				"data_available": "Chapter statistics by university",
			},
			handler: func(ctx context.Context, args map[string]any) (any, error) {
				var p chapterDataParams
				if err := decodeArgs("getChapterData", args, &p); err != nil {
					return nil, err
				}
				rows, err := catalog.GetChapterData(ctx, p.University, normalizeLimit(p.Limit))
				if err != nil {
					return nil, err
				}
				return map[string]any{"chapterData": rows}, nil
			},
		},
	)
}
