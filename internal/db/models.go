// Package db provides the GORM-backed read layer over the publishing
// catalog: the narrow bibliographic tables the research assistant searches
// and the wide monthly analytics tables the sales assistant aggregates. All
// tables are bulk-loaded by an external import process; this layer never
// writes to them.
package db

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// Book is one academic book in the catalog. Content is the combined
// searchable blob built at import time; Embedding is populated by the
// external embedding pipeline and is never read by the tool layer.
type Book struct {
	ID             int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Bookcode       string           `gorm:"size:50" json:"bookcode"`
	BookTitle      string           `gorm:"type:text" json:"bookTitle"`
	AuthorName     string           `gorm:"type:text" json:"authorName"`
	University     string           `gorm:"type:text" json:"university"`
	Year           int              `json:"year"`
	PurchaseStatus string           `gorm:"type:text" json:"purchaseStatus"`
	Content        string           `gorm:"type:text" json:"content"`
	Embedding      *pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
	CreatedAt      time.Time        `json:"createdAt"`
}

func (Book) TableName() string { return "books" }

// JournalSubscription is a journal with current/previous-year subscription
// counts.
type JournalSubscription struct {
	ID                  int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	JournalTitle        string           `gorm:"type:text" json:"journalTitle"`
	JournalAbbreviation string           `gorm:"size:50" json:"journalAbbreviation"`
	CurrentYear         int              `json:"currentYear"`
	PreviousYear        int              `json:"previousYear"`
	Content             string           `gorm:"type:text" json:"content"`
	Embedding           *pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
	CreatedAt           time.Time        `json:"createdAt"`
}

func (JournalSubscription) TableName() string { return "journal_subscriptions" }

// Article is a single journal article with its subscription status.
type Article struct {
	ID                 int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	JournalTitle       string           `gorm:"type:text" json:"journalTitle"`
	Abbr               string           `gorm:"size:50" json:"abbr"`
	Emails             string           `gorm:"type:text" json:"emails"`
	Author             string           `gorm:"type:text" json:"author"`
	Title              string           `gorm:"type:text" json:"title"`
	SubscriptionStatus string           `gorm:"type:text" json:"subscriptionStatus"`
	Content            string           `gorm:"type:text" json:"content"`
	Embedding          *pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
	CreatedAt          time.Time        `json:"createdAt"`
}

func (Article) TableName() string { return "articles" }

// Chapter is a single book chapter with its purchase status.
type Chapter struct {
	ID             int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Bookcode       string           `gorm:"size:50" json:"bookcode"`
	BookTitle      string           `gorm:"type:text" json:"bookTitle"`
	ChapterTitle   string           `gorm:"type:text" json:"chapterTitle"`
	AuthorName     string           `gorm:"type:text" json:"authorName"`
	University     string           `gorm:"type:text" json:"university"`
	PurchaseStatus string           `gorm:"type:text" json:"purchaseStatus"`
	Content        string           `gorm:"type:text" json:"content"`
	Embedding      *pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
	CreatedAt      time.Time        `json:"createdAt"`
}

func (Chapter) TableName() string { return "chapters" }

// Editor is the editorial contact record for one journal.
type Editor struct {
	ID                 int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	JournalTitle       string           `gorm:"type:text" json:"journalTitle"`
	JournalAbbr        string           `gorm:"size:50" json:"journalAbbr"`
	EditorCount        int              `json:"editorCount"`
	SubscriptionStatus string           `gorm:"type:text" json:"subscriptionStatus"`
	SortOrder          int              `json:"sortOrder"`
	Content            string           `gorm:"type:text" json:"content"`
	Embedding          *pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
	CreatedAt          time.Time        `json:"createdAt"`
}

func (Editor) TableName() string { return "editors" }

// ArticleData is the per-journal article publication count broken out by
// year. AllYearTotalCount is precomputed at import time and assumed, not
// verified, to equal the sum of the year columns.
type ArticleData struct {
	ID                int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	JournalName       string           `gorm:"type:text" json:"journalName"`
	Abbr              string           `gorm:"size:50" json:"abbr"`
	Year2020Count     int              `gorm:"column:year_2020_count" json:"year2020Count"`
	Year2021Count     int              `gorm:"column:year_2021_count" json:"year2021Count"`
	Year2022Count     int              `gorm:"column:year_2022_count" json:"year2022Count"`
	Year2023Count     int              `gorm:"column:year_2023_count" json:"year2023Count"`
	Year2024Count     int              `gorm:"column:year_2024_count" json:"year2024Count"`
	Year2025Count     int              `gorm:"column:year_2025_count" json:"year2025Count"`
	AllYearTotalCount int              `gorm:"column:all_year_total_count" json:"allYearTotalCount"`
	Content           string           `gorm:"type:text" json:"content"`
	Embedding         *pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
	CreatedAt         time.Time        `json:"createdAt"`
}

func (ArticleData) TableName() string { return "article_data" }

// BookData is the books-published count for one publication year.
type BookData struct {
	ID              int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	PublicationYear int              `json:"publicationYear"`
	BooksPublished  int              `json:"booksPublished"`
	Content         string           `gorm:"type:text" json:"content"`
	Embedding       *pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
	CreatedAt       time.Time        `json:"createdAt"`
}

func (BookData) TableName() string { return "book_data" }

// ChapterData is the chapter count for one (university, year) pair.
type ChapterData struct {
	ID             int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	UniversityName string           `gorm:"type:text" json:"universityName"`
	BookxmlYear    int              `gorm:"column:bookxml_year" json:"bookxmlYear"`
	ChapterCount   int              `json:"chapterCount"`
	Content        string           `gorm:"type:text" json:"content"`
	Embedding      *pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
	CreatedAt      time.Time        `json:"createdAt"`
}

func (ChapterData) TableName() string { return "chapter_data" }

// BookUsageRecord is one titled work with its COUNTER-style monthly request
// counts. Column existence is fixed per year: 2023 and 2024 run January
// through December, 2025 stops at August. The tool layer never selects these
// columns individually; it sums them through the query.BookUsage pivots.
type BookUsageRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:text"`
	Platform  string `gorm:"type:text"`
	Publisher string `gorm:"type:text"`
	ISBN      string `gorm:"column:isbn;size:50"`
	YOP       int    `gorm:"column:yop"`
	// 2023
	Jan2023Unique int `gorm:"column:jan_2023_unique_title_requests"`
	Jan2023Total  int `gorm:"column:jan_2023_total_item_requests"`
	Feb2023Unique int `gorm:"column:feb_2023_unique_title_requests"`
	Feb2023Total  int `gorm:"column:feb_2023_total_item_requests"`
	Mar2023Unique int `gorm:"column:mar_2023_unique_title_requests"`
	Mar2023Total  int `gorm:"column:mar_2023_total_item_requests"`
	Apr2023Unique int `gorm:"column:apr_2023_unique_title_requests"`
	Apr2023Total  int `gorm:"column:apr_2023_total_item_requests"`
	May2023Unique int `gorm:"column:may_2023_unique_title_requests"`
	May2023Total  int `gorm:"column:may_2023_total_item_requests"`
	Jun2023Unique int `gorm:"column:jun_2023_unique_title_requests"`
	Jun2023Total  int `gorm:"column:jun_2023_total_item_requests"`
	Jul2023Unique int `gorm:"column:jul_2023_unique_title_requests"`
	Jul2023Total  int `gorm:"column:jul_2023_total_item_requests"`
	Aug2023Unique int `gorm:"column:aug_2023_unique_title_requests"`
	Aug2023Total  int `gorm:"column:aug_2023_total_item_requests"`
	Sep2023Unique int `gorm:"column:sep_2023_unique_title_requests"`
	Sep2023Total  int `gorm:"column:sep_2023_total_item_requests"`
	Oct2023Unique int `gorm:"column:oct_2023_unique_title_requests"`
	Oct2023Total  int `gorm:"column:oct_2023_total_item_requests"`
	Nov2023Unique int `gorm:"column:nov_2023_unique_title_requests"`
	Nov2023Total  int `gorm:"column:nov_2023_total_item_requests"`
	Dec2023Unique int `gorm:"column:dec_2023_unique_title_requests"`
	Dec2023Total  int `gorm:"column:dec_2023_total_item_requests"`
	// 2024
	Jan2024Unique int `gorm:"column:jan_2024_unique_title_requests"`
	Jan2024Total  int `gorm:"column:jan_2024_total_item_requests"`
	Feb2024Unique int `gorm:"column:feb_2024_unique_title_requests"`
	Feb2024Total  int `gorm:"column:feb_2024_total_item_requests"`
	Mar2024Unique int `gorm:"column:mar_2024_unique_title_requests"`
	Mar2024Total  int `gorm:"column:mar_2024_total_item_requests"`
	Apr2024Unique int `gorm:"column:apr_2024_unique_title_requests"`
	Apr2024Total  int `gorm:"column:apr_2024_total_item_requests"`
	May2024Unique int `gorm:"column:may_2024_unique_title_requests"`
	May2024Total  int `gorm:"column:may_2024_total_item_requests"`
	Jun2024Unique int `gorm:"column:jun_2024_unique_title_requests"`
	Jun2024Total  int `gorm:"column:jun_2024_total_item_requests"`
	Jul2024Unique int `gorm:"column:jul_2024_unique_title_requests"`
	Jul2024Total  int `gorm:"column:jul_2024_total_item_requests"`
	Aug2024Unique int `gorm:"column:aug_2024_unique_title_requests"`
	Aug2024Total  int `gorm:"column:aug_2024_total_item_requests"`
	Sep2024Unique int `gorm:"column:sep_2024_unique_title_requests"`
	Sep2024Total  int `gorm:"column:sep_2024_total_item_requests"`
	Oct2024Unique int `gorm:"column:oct_2024_unique_title_requests"`
	Oct2024Total  int `gorm:"column:oct_2024_total_item_requests"`
	Nov2024Unique int `gorm:"column:nov_2024_unique_title_requests"`
	Nov2024Total  int `gorm:"column:nov_2024_total_item_requests"`
	Dec2024Unique int `gorm:"column:dec_2024_unique_title_requests"`
	Dec2024Total  int `gorm:"column:dec_2024_total_item_requests"`
	// 2025
	Jan2025Unique int              `gorm:"column:jan_2025_unique_title_requests"`
	Jan2025Total  int              `gorm:"column:jan_2025_total_item_requests"`
	Feb2025Unique int              `gorm:"column:feb_2025_unique_title_requests"`
	Feb2025Total  int              `gorm:"column:feb_2025_total_item_requests"`
	Mar2025Unique int              `gorm:"column:mar_2025_unique_title_requests"`
	Mar2025Total  int              `gorm:"column:mar_2025_total_item_requests"`
	Apr2025Unique int              `gorm:"column:apr_2025_unique_title_requests"`
	Apr2025Total  int              `gorm:"column:apr_2025_total_item_requests"`
	May2025Unique int              `gorm:"column:may_2025_unique_title_requests"`
	May2025Total  int              `gorm:"column:may_2025_total_item_requests"`
	Jun2025Unique int              `gorm:"column:jun_2025_unique_title_requests"`
	Jun2025Total  int              `gorm:"column:jun_2025_total_item_requests"`
	Jul2025Unique int              `gorm:"column:jul_2025_unique_title_requests"`
	Jul2025Total  int              `gorm:"column:jul_2025_total_item_requests"`
	Aug2025Unique int              `gorm:"column:aug_2025_unique_title_requests"`
	Aug2025Total  int              `gorm:"column:aug_2025_total_item_requests"`
	Content       string           `gorm:"type:text"`
	Embedding     *pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt     time.Time
}

func (BookUsageRecord) TableName() string { return "book_usage" }

// JournalUsageRecord mirrors BookUsageRecord for journals. The schema carries
// July/August 2025 columns but the journal reporting window closes in June
// 2025; the pivot calendar stops there.
type JournalUsageRecord struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Title      string `gorm:"type:text"`
	Publisher  string `gorm:"type:text"`
	OnlineISSN string `gorm:"column:online_issn;size:50"`
	PrintISSN  string `gorm:"column:print_issn;size:50"`
	// 2023
	Jan2023Total  int `gorm:"column:jan_2023_total_item_requests"`
	Jan2023Unique int `gorm:"column:jan_2023_unique_item_requests"`
	Feb2023Total  int `gorm:"column:feb_2023_total_item_requests"`
	Feb2023Unique int `gorm:"column:feb_2023_unique_item_requests"`
	Mar2023Total  int `gorm:"column:mar_2023_total_item_requests"`
	Mar2023Unique int `gorm:"column:mar_2023_unique_item_requests"`
	Apr2023Total  int `gorm:"column:apr_2023_total_item_requests"`
	Apr2023Unique int `gorm:"column:apr_2023_unique_item_requests"`
	May2023Total  int `gorm:"column:may_2023_total_item_requests"`
	May2023Unique int `gorm:"column:may_2023_unique_item_requests"`
	Jun2023Total  int `gorm:"column:jun_2023_total_item_requests"`
	Jun2023Unique int `gorm:"column:jun_2023_unique_item_requests"`
	Jul2023Total  int `gorm:"column:jul_2023_total_item_requests"`
	Jul2023Unique int `gorm:"column:jul_2023_unique_item_requests"`
	Aug2023Total  int `gorm:"column:aug_2023_total_item_requests"`
	Aug2023Unique int `gorm:"column:aug_2023_unique_item_requests"`
	Sep2023Total  int `gorm:"column:sep_2023_total_item_requests"`
	Sep2023Unique int `gorm:"column:sep_2023_unique_item_requests"`
	Oct2023Total  int `gorm:"column:oct_2023_total_item_requests"`
	Oct2023Unique int `gorm:"column:oct_2023_unique_item_requests"`
	Nov2023Total  int `gorm:"column:nov_2023_total_item_requests"`
	Nov2023Unique int `gorm:"column:nov_2023_unique_item_requests"`
	Dec2023Total  int `gorm:"column:dec_2023_total_item_requests"`
	Dec2023Unique int `gorm:"column:dec_2023_unique_item_requests"`
	// 2024
	Jan2024Total  int `gorm:"column:jan_2024_total_item_requests"`
	Jan2024Unique int `gorm:"column:jan_2024_unique_item_requests"`
	Feb2024Total  int `gorm:"column:feb_2024_total_item_requests"`
	Feb2024Unique int `gorm:"column:feb_2024_unique_item_requests"`
	Mar2024Total  int `gorm:"column:mar_2024_total_item_requests"`
	Mar2024Unique int `gorm:"column:mar_2024_unique_item_requests"`
	Apr2024Total  int `gorm:"column:apr_2024_total_item_requests"`
	Apr2024Unique int `gorm:"column:apr_2024_unique_item_requests"`
	May2024Total  int `gorm:"column:may_2024_total_item_requests"`
	May2024Unique int `gorm:"column:may_2024_unique_item_requests"`
	Jun2024Total  int `gorm:"column:jun_2024_total_item_requests"`
	Jun2024Unique int `gorm:"column:jun_2024_unique_item_requests"`
	Jul2024Total  int `gorm:"column:jul_2024_total_item_requests"`
	Jul2024Unique int `gorm:"column:jul_2024_unique_item_requests"`
	Aug2024Total  int `gorm:"column:aug_2024_total_item_requests"`
	Aug2024Unique int `gorm:"column:aug_2024_unique_item_requests"`
	Sep2024Total  int `gorm:"column:sep_2024_total_item_requests"`
	Sep2024Unique int `gorm:"column:sep_2024_unique_item_requests"`
	Oct2024Total  int `gorm:"column:oct_2024_total_item_requests"`
	Oct2024Unique int `gorm:"column:oct_2024_unique_item_requests"`
	Nov2024Total  int `gorm:"column:nov_2024_total_item_requests"`
	Nov2024Unique int `gorm:"column:nov_2024_unique_item_requests"`
	Dec2024Total  int `gorm:"column:dec_2024_total_item_requests"`
	Dec2024Unique int `gorm:"column:dec_2024_unique_item_requests"`
	// 2025
	Jan2025Total  int              `gorm:"column:jan_2025_total_item_requests"`
	Jan2025Unique int              `gorm:"column:jan_2025_unique_item_requests"`
	Feb2025Total  int              `gorm:"column:feb_2025_total_item_requests"`
	Feb2025Unique int              `gorm:"column:feb_2025_unique_item_requests"`
	Mar2025Total  int              `gorm:"column:mar_2025_total_item_requests"`
	Mar2025Unique int              `gorm:"column:mar_2025_unique_item_requests"`
	Apr2025Total  int              `gorm:"column:apr_2025_total_item_requests"`
	Apr2025Unique int              `gorm:"column:apr_2025_unique_item_requests"`
	May2025Total  int              `gorm:"column:may_2025_total_item_requests"`
	May2025Unique int              `gorm:"column:may_2025_unique_item_requests"`
	Jun2025Total  int              `gorm:"column:jun_2025_total_item_requests"`
	Jun2025Unique int              `gorm:"column:jun_2025_unique_item_requests"`
	Jul2025Total  int              `gorm:"column:jul_2025_total_item_requests"`
	Jul2025Unique int              `gorm:"column:jul_2025_unique_item_requests"`
	Aug2025Total  int              `gorm:"column:aug_2025_total_item_requests"`
	Aug2025Unique int              `gorm:"column:aug_2025_unique_item_requests"`
	Content       string           `gorm:"type:text"`
	Embedding     *pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt     time.Time
}

func (JournalUsageRecord) TableName() string { return "journal_usage" }

// BookDenialRecord is one titled work with monthly access-denial counts split
// by reason. The limit_exceeded columns exist only for the months where that
// reason was reported; the gaps are real.
type BookDenialRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:text"`
	Publisher string `gorm:"type:text"`
	ISBN      string `gorm:"column:isbn;size:50"`
	YOP       int    `gorm:"column:yop"`
	// 2023
	Jan2023NoLicense     int `gorm:"column:jan_2023_no_license"`
	Feb2023NoLicense     int `gorm:"column:feb_2023_no_license"`
	Mar2023NoLicense     int `gorm:"column:mar_2023_no_license"`
	Apr2023NoLicense     int `gorm:"column:apr_2023_no_license"`
	May2023NoLicense     int `gorm:"column:may_2023_no_license"`
	Jun2023NoLicense     int `gorm:"column:jun_2023_no_license"`
	Jul2023NoLicense     int `gorm:"column:jul_2023_no_license"`
	Aug2023NoLicense     int `gorm:"column:aug_2023_no_license"`
	Sep2023NoLicense     int `gorm:"column:sep_2023_no_license"`
	Oct2023NoLicense     int `gorm:"column:oct_2023_no_license"`
	Nov2023NoLicense     int `gorm:"column:nov_2023_no_license"`
	Dec2023NoLicense     int `gorm:"column:dec_2023_no_license"`
	Jan2023LimitExceeded int `gorm:"column:jan_2023_limit_exceeded"`
	Mar2023LimitExceeded int `gorm:"column:mar_2023_limit_exceeded"`
	Apr2023LimitExceeded int `gorm:"column:apr_2023_limit_exceeded"`
	May2023LimitExceeded int `gorm:"column:may_2023_limit_exceeded"`
	Aug2023LimitExceeded int `gorm:"column:aug_2023_limit_exceeded"`
	Sep2023LimitExceeded int `gorm:"column:sep_2023_limit_exceeded"`
	// 2024
	Jan2024NoLicense     int `gorm:"column:jan_2024_no_license"`
	Feb2024NoLicense     int `gorm:"column:feb_2024_no_license"`
	Mar2024NoLicense     int `gorm:"column:mar_2024_no_license"`
	Apr2024NoLicense     int `gorm:"column:apr_2024_no_license"`
	May2024NoLicense     int `gorm:"column:may_2024_no_license"`
	Jun2024NoLicense     int `gorm:"column:jun_2024_no_license"`
	Jul2024NoLicense     int `gorm:"column:jul_2024_no_license"`
	Aug2024NoLicense     int `gorm:"column:aug_2024_no_license"`
	Sep2024NoLicense     int `gorm:"column:sep_2024_no_license"`
	Oct2024NoLicense     int `gorm:"column:oct_2024_no_license"`
	Nov2024NoLicense     int `gorm:"column:nov_2024_no_license"`
	Dec2024NoLicense     int `gorm:"column:dec_2024_no_license"`
	Jan2024LimitExceeded int `gorm:"column:jan_2024_limit_exceeded"`
	Mar2024LimitExceeded int `gorm:"column:mar_2024_limit_exceeded"`
	Apr2024LimitExceeded int `gorm:"column:apr_2024_limit_exceeded"`
	May2024LimitExceeded int `gorm:"column:may_2024_limit_exceeded"`
	Aug2024LimitExceeded int `gorm:"column:aug_2024_limit_exceeded"`
	Sep2024LimitExceeded int `gorm:"column:sep_2024_limit_exceeded"`
	Oct2024LimitExceeded int `gorm:"column:oct_2024_limit_exceeded"`
	Nov2024LimitExceeded int `gorm:"column:nov_2024_limit_exceeded"`
	// 2025
	Jan2025NoLicense     int              `gorm:"column:jan_2025_no_license"`
	Feb2025NoLicense     int              `gorm:"column:feb_2025_no_license"`
	Mar2025NoLicense     int              `gorm:"column:mar_2025_no_license"`
	Apr2025NoLicense     int              `gorm:"column:apr_2025_no_license"`
	May2025NoLicense     int              `gorm:"column:may_2025_no_license"`
	Jun2025NoLicense     int              `gorm:"column:jun_2025_no_license"`
	Jul2025NoLicense     int              `gorm:"column:jul_2025_no_license"`
	Aug2025NoLicense     int              `gorm:"column:aug_2025_no_license"`
	Jan2025LimitExceeded int              `gorm:"column:jan_2025_limit_exceeded"`
	Feb2025LimitExceeded int              `gorm:"column:feb_2025_limit_exceeded"`
	Mar2025LimitExceeded int              `gorm:"column:mar_2025_limit_exceeded"`
	Apr2025LimitExceeded int              `gorm:"column:apr_2025_limit_exceeded"`
	May2025LimitExceeded int              `gorm:"column:may_2025_limit_exceeded"`
	Aug2025LimitExceeded int              `gorm:"column:aug_2025_limit_exceeded"`
	Content              string           `gorm:"type:text"`
	Embedding            *pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt            time.Time
}

func (BookDenialRecord) TableName() string { return "book_denials" }

// JournalDenialRecord carries no_license denial counts only, with month gaps
// in every year.
type JournalDenialRecord struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Title      string `gorm:"type:text"`
	Publisher  string `gorm:"type:text"`
	OnlineISSN string `gorm:"column:online_issn;size:50"`
	PrintISSN  string `gorm:"column:print_issn;size:50"`
	// 2023
	Feb2023NoLicense int `gorm:"column:feb_2023_no_license"`
	Mar2023NoLicense int `gorm:"column:mar_2023_no_license"`
	Apr2023NoLicense int `gorm:"column:apr_2023_no_license"`
	May2023NoLicense int `gorm:"column:may_2023_no_license"`
	Jun2023NoLicense int `gorm:"column:jun_2023_no_license"`
	Sep2023NoLicense int `gorm:"column:sep_2023_no_license"`
	Oct2023NoLicense int `gorm:"column:oct_2023_no_license"`
	// 2024
	Mar2024NoLicense int `gorm:"column:mar_2024_no_license"`
	Apr2024NoLicense int `gorm:"column:apr_2024_no_license"`
	May2024NoLicense int `gorm:"column:may_2024_no_license"`
	Aug2024NoLicense int `gorm:"column:aug_2024_no_license"`
	Sep2024NoLicense int `gorm:"column:sep_2024_no_license"`
	Oct2024NoLicense int `gorm:"column:oct_2024_no_license"`
	Nov2024NoLicense int `gorm:"column:nov_2024_no_license"`
	Dec2024NoLicense int `gorm:"column:dec_2024_no_license"`
	// 2025
	Jan2025NoLicense int              `gorm:"column:jan_2025_no_license"`
	Feb2025NoLicense int              `gorm:"column:feb_2025_no_license"`
	Mar2025NoLicense int              `gorm:"column:mar_2025_no_license"`
	Apr2025NoLicense int              `gorm:"column:apr_2025_no_license"`
	Jun2025NoLicense int              `gorm:"column:jun_2025_no_license"`
	Jul2025NoLicense int              `gorm:"column:jul_2025_no_license"`
	Aug2025NoLicense int              `gorm:"column:aug_2025_no_license"`
	Content          string           `gorm:"type:text"`
	Embedding        *pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt        time.Time
}

func (JournalDenialRecord) TableName() string { return "journal_denials" }

// BookPurchase is one purchased book. Author and university are absent from
// the purchase feed.
type BookPurchase struct {
	ID         int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Bookcode   string           `gorm:"size:50" json:"bookcode"`
	BookTitle  string           `gorm:"type:text" json:"bookTitle"`
	AuthorName *string          `gorm:"type:text" json:"authorName,omitempty"`
	University *string          `gorm:"type:text" json:"university,omitempty"`
	Year       int              `json:"year"`
	Content    string           `gorm:"type:text" json:"content"`
	Embedding  *pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
	CreatedAt  time.Time        `json:"createdAt"`
}

func (BookPurchase) TableName() string { return "books_purchased" }

// JournalSubscriptionHistory is the per-journal subscription count for each
// year 2012 through 2024.
type JournalSubscriptionHistory struct {
	ID                  int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	JournalTitle        string           `gorm:"type:text" json:"journalTitle"`
	JournalAbbreviation string           `gorm:"size:50" json:"journalAbbreviation"`
	Year2012            int              `gorm:"column:year_2012" json:"year2012"`
	Year2013            int              `gorm:"column:year_2013" json:"year2013"`
	Year2014            int              `gorm:"column:year_2014" json:"year2014"`
	Year2015            int              `gorm:"column:year_2015" json:"year2015"`
	Year2016            int              `gorm:"column:year_2016" json:"year2016"`
	Year2017            int              `gorm:"column:year_2017" json:"year2017"`
	Year2018            int              `gorm:"column:year_2018" json:"year2018"`
	Year2019            int              `gorm:"column:year_2019" json:"year2019"`
	Year2020            int              `gorm:"column:year_2020" json:"year2020"`
	Year2021            int              `gorm:"column:year_2021" json:"year2021"`
	Year2022            int              `gorm:"column:year_2022" json:"year2022"`
	Year2023            int              `gorm:"column:year_2023" json:"year2023"`
	Year2024            int              `gorm:"column:year_2024" json:"year2024"`
	Content             string           `gorm:"type:text" json:"content"`
	Embedding           *pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
	CreatedAt           time.Time        `json:"createdAt"`
}

func (JournalSubscriptionHistory) TableName() string { return "journal_subscriptions_prev_year" }
