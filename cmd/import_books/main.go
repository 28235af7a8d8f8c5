package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"book-catalog/catalog"
)

var (
	dbPath   string
	dataPath string
)

func main() {
	cmd := &cobra.Command{
		Use:   "import-books",
		Short: "Import books from a SQLite database into the catalog",
		Long: `Reads rows from the books(title, author, year) table of a SQLite
database (for example a dump from another library system) and adds them to the
catalog data file. Imported books get fresh ids and start as available.`,
		SilenceUsage: true,
		RunE:         runImport,
	}
	cmd.Flags().StringVar(&dbPath, "db", "library.db", "SQLite database to import from")
	cmd.Flags().StringVar(&dataPath, "data", "data/catalog.json", "catalog data file to import into")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("database not accessible: %w", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	store, err := catalog.NewStore(dataPath)
	if err != nil {
		return err
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cat := catalog.New(store, logger)

	rows, err := db.Query(`SELECT title, author, year FROM books ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	successCount := 0
	errorCount := 0

	for rows.Next() {
		var (
			title, author string
			year          int
		)
		if err := rows.Scan(&title, &author, &year); err != nil {
			return fmt.Errorf("scan book row: %w", err)
		}

		fmt.Printf("Importing: %s by %s (%d)... ", title, author, year)
		book, err := cat.Add(title, author, year)
		if err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}
		fmt.Printf("SUCCESS (ID: %d)\n", book.ID)
		successCount++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read books: %w", err)
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d books\n", successCount)
	fmt.Printf("Errors: %d\n", errorCount)
	fmt.Printf("Catalog now holds %d books in %s\n", len(cat.Books()), store.Path())
	return nil
}
