package db

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Migrate creates the catalog schema using gormigrate. Data loading is a
// separate import pipeline; these migrations only shape the tables.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		// Migration 001: research catalog tables
		{
			ID: "001_research_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&Book{},
					&JournalSubscription{},
					&Article{},
					&Chapter{},
					&Editor{},
					&ArticleData{},
					&BookData{},
					&ChapterData{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"books", "journal_subscriptions", "articles", "chapters",
					"editors", "article_data", "book_data", "chapter_data",
				)
			},
		},

		// Migration 002: sales analytics tables (wide monthly pivots)
		{
			ID: "002_sales_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&BookUsageRecord{},
					&JournalUsageRecord{},
					&BookDenialRecord{},
					&JournalDenialRecord{},
					&BookPurchase{},
					&JournalSubscriptionHistory{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"book_usage", "journal_usage", "book_denials",
					"journal_denials", "books_purchased",
					"journal_subscriptions_prev_year",
				)
			},
		},
	})

	return m.Migrate()
}
