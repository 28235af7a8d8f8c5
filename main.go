package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"book-catalog/catalog"
)

const dataFile = "data/catalog.json"

// interactive controls whether prompts and the banner are printed; piping a
// command script in suppresses them.
var interactive = term.IsTerminal(int(os.Stdin.Fd()))

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	store, err := catalog.NewStore(dataFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}
	cat := catalog.New(store, logger)

	scanner := bufio.NewScanner(os.Stdin)

	if interactive {
		fmt.Println("Welcome to the Book Catalog!")
		fmt.Println("Available commands:")
		fmt.Println("  add book, delete book, search, change status, list books, exit")
	}

	for {
		if interactive {
			fmt.Print("\n> ")
		}
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "add book":
			handleAddBook(scanner, cat)
		case "delete book":
			handleDeleteBook(scanner, cat)
		case "search":
			handleSearch(scanner, cat)
		case "change status":
			handleChangeStatus(scanner, cat)
		case "list books":
			printBooks(cat.Books())
		case "exit":
			if interactive {
				fmt.Println("Goodbye!")
			}
			return
		case "":
			// Ignore blank lines.
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}
}

// prompt prints label (when interactive) and reads one trimmed line.
func prompt(sc *bufio.Scanner, label string) (string, bool) {
	if interactive {
		fmt.Print(label)
	}
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func handleAddBook(sc *bufio.Scanner, cat *catalog.Catalog) {
	title, ok := prompt(sc, "Title: ")
	if !ok {
		return
	}
	author, ok := prompt(sc, "Author: ")
	if !ok {
		return
	}
	yearStr, ok := prompt(sc, "Year: ")
	if !ok {
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		fmt.Printf("Invalid year: %s\n", yearStr)
		return
	}

	book, err := cat.Add(title, author, year)
	if err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}
	fmt.Printf("Added book ID %d: %s by %s (%d)\n", book.ID, book.Title, book.Author, book.Year)
}

func handleDeleteBook(sc *bufio.Scanner, cat *catalog.Catalog) {
	id, ok := promptID(sc)
	if !ok {
		return
	}
	if err := cat.Delete(id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			fmt.Printf("No book with ID %d\n", id)
		} else {
			fmt.Printf("Error deleting book: %v\n", err)
		}
		return
	}
	fmt.Printf("Deleted book ID %d\n", id)
}

func handleSearch(sc *bufio.Scanner, cat *catalog.Catalog) {
	title, ok := prompt(sc, "Title (blank to skip): ")
	if !ok {
		return
	}
	author, ok := prompt(sc, "Author (blank to skip): ")
	if !ok {
		return
	}
	yearStr, ok := prompt(sc, "Year (blank to skip): ")
	if !ok {
		return
	}

	f := catalog.Filter{Title: title, Author: author}
	if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			fmt.Printf("Invalid year: %s\n", yearStr)
			return
		}
		f.Year = &year
	}

	results := cat.Search(f)
	if len(results) == 0 {
		fmt.Println("No books found.")
		return
	}
	fmt.Printf("Found %d book(s):\n", len(results))
	printBooks(results)
}

func handleChangeStatus(sc *bufio.Scanner, cat *catalog.Catalog) {
	id, ok := promptID(sc)
	if !ok {
		return
	}
	statusStr, ok := prompt(sc, fmt.Sprintf("Status (%s/%s): ", catalog.StatusAvailable, catalog.StatusCheckedOut))
	if !ok {
		return
	}

	err := cat.SetStatus(id, catalog.Status(strings.ToLower(statusStr)))
	switch {
	case errors.Is(err, catalog.ErrInvalidStatus):
		fmt.Printf("Invalid status %q. Use %q or %q.\n", statusStr, catalog.StatusAvailable, catalog.StatusCheckedOut)
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Printf("No book with ID %d\n", id)
	case err != nil:
		fmt.Printf("Error changing status: %v\n", err)
	default:
		fmt.Printf("Status of book ID %d changed to %s\n", id, strings.ToLower(statusStr))
	}
}

func promptID(sc *bufio.Scanner) (int64, bool) {
	idStr, ok := prompt(sc, "Book ID: ")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		fmt.Printf("Invalid book ID: %s\n", idStr)
		return 0, false
	}
	return id, true
}

func printBooks(books []*catalog.Book) {
	if len(books) == 0 {
		fmt.Println("No books in catalog.")
		return
	}

	fmt.Printf("%-5s %-35s %-25s %-6s %s\n", "ID", "Title", "Author", "Year", "Status")
	fmt.Println(strings.Repeat("-", 85))
	for _, b := range books {
		fmt.Printf("%-5d %-35s %-25s %-6d %s\n",
			b.ID,
			truncateString(b.Title, 35),
			truncateString(b.Author, 25),
			b.Year,
			b.Status)
	}
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
