package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bibliotech-pro/bibliotech-go/library/features/command/addbook"
	"github.com/bibliotech-pro/bibliotech-go/library/features/command/addbookreview"
	"github.com/bibliotech-pro/bibliotech-go/library/features/command/lendbook"
	"github.com/bibliotech-pro/bibliotech-go/library/features/command/registeruser"
	"github.com/bibliotech-pro/bibliotech-go/library/features/command/removebook"
	"github.com/bibliotech-pro/bibliotech-go/library/features/command/removeloan"
	"github.com/bibliotech-pro/bibliotech-go/library/features/command/removeuser"
	"github.com/bibliotech-pro/bibliotech-go/library/features/command/returnbook"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

func (c *cli) booksCommand() *cobra.Command {
	books := &cobra.Command{Use: "books", Short: "Manage the catalog"}

	var (
		book  core.Book
		price string
		tags  []string
	)

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			book.ID = c.app.newID()
			book.Tags = tags
			book.Condition = core.BookCondition(strings.ToLower(string(book.Condition)))

			if price != "" {
				amount, err := decimal.NewFromString(price)
				if err != nil {
					return fmt.Errorf("%w: price %q", core.ErrInvalidInput, price)
				}

				book.Price = &amount
			}

			if book.ISBN != "" && !core.ValidISBN(book.ISBN) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: ISBN %q has no valid check digit\n", book.ISBN)
			}

			command := addbook.BuildCommand(book, c.app.now())
			result, err := runCommand[addbook.Command](cmd.Context(), c.app,
				addbook.NewCommandHandler(c.app.workflow), command)
			if err != nil {
				return err
			}

			return printOutcome(cmd, "added book "+command.Book.ID, result, true)
		},
	}

	add.Flags().StringVar(&book.Title, "title", "", "title")
	add.Flags().StringVar(&book.Author, "author", "", "author")
	add.Flags().StringVar(&book.ISBN, "isbn", "", "ISBN")
	add.Flags().StringVar(&book.Genre, "genre", "", "genre")
	add.Flags().StringVar(&book.Category, "category", "", "category")
	add.Flags().StringVar(&book.Publisher, "publisher", "", "publisher")
	add.Flags().StringVar(&book.Language, "language", "", "language")
	add.Flags().IntVar(&book.Year, "year", 0, "publication year")
	add.Flags().IntVar(&book.Pages, "pages", 0, "number of pages")
	add.Flags().StringVar(&price, "price", "", "price, e.g. 18.50")
	add.Flags().StringVar((*string)(&book.Condition), "condition", string(core.ConditionGood), "new, good, fair, damaged or repair")
	add.Flags().StringVar(&book.ShelfLocation, "shelf", "", "shelf location")
	add.Flags().StringSliceVar(&tags, "tag", nil, "tag, repeatable")

	remove := &cobra.Command{
		Use:   "remove <book-id>",
		Short: "Remove a book from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runCommand[removebook.Command](cmd.Context(), c.app,
				removebook.NewCommandHandler(c.app.workflow), removebook.BuildCommand(args[0], c.app.now()))
			if err != nil {
				return err
			}

			return printOutcome(cmd, "removed book "+args[0], result, true)
		},
	}

	books.AddCommand(add, remove)

	return books
}

func (c *cli) usersCommand() *cobra.Command {
	users := &cobra.Command{Use: "users", Short: "Manage library members"}

	var user core.User

	add := &cobra.Command{
		Use:   "add",
		Short: "Register a member; a card number is generated when none is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user.ID = c.app.newID()

			command := registeruser.BuildCommand(user, c.app.now())
			result, err := runCommand[registeruser.Command](cmd.Context(), c.app,
				registeruser.NewCommandHandler(c.app.workflow), command)
			if err != nil {
				return err
			}

			registered, _ := c.app.store.Snapshot()
			if stored, found := registered.FindUser(user.ID); found {
				return printOutcome(cmd, fmt.Sprintf("registered user %s with card %s", stored.ID, stored.CardNumber), result, true)
			}

			return printOutcome(cmd, "registered user "+user.ID, result, true)
		},
	}

	add.Flags().StringVar(&user.Name, "name", "", "first name")
	add.Flags().StringVar(&user.Surname, "surname", "", "surname")
	add.Flags().StringVar(&user.Email, "email", "", "email address")
	add.Flags().StringVar(&user.CardNumber, "card", "", "card number")

	remove := &cobra.Command{
		Use:   "remove <user-id>",
		Short: "Remove a member without active loans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runCommand[removeuser.Command](cmd.Context(), c.app,
				removeuser.NewCommandHandler(c.app.workflow), removeuser.BuildCommand(args[0], c.app.now()))
			if err != nil {
				return err
			}

			return printOutcome(cmd, "removed user "+args[0], result, true)
		},
	}

	users.AddCommand(add, remove)

	return users
}

func (c *cli) loansCommand() *cobra.Command {
	loans := &cobra.Command{Use: "loans", Short: "Lend and return books"}

	var bookID, userID, due string

	lend := &cobra.Command{
		Use:   "lend",
		Short: "Lend a book to a member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var dueDate core.Date
			if due != "" {
				parsed, err := core.ParseDate(due)
				if err != nil {
					return fmt.Errorf("%w: due date %q", core.ErrInvalidInput, due)
				}

				dueDate = parsed
			}

			loanID := c.app.newID()
			result, err := runCommand[lendbook.Command](cmd.Context(), c.app,
				lendbook.NewCommandHandler(c.app.workflow),
				lendbook.BuildCommand(loanID, bookID, userID, core.Date{}, dueDate, c.app.now()))
			if err != nil {
				return err
			}

			return printOutcome(cmd, "created loan "+loanID, result, true)
		},
	}

	lend.Flags().StringVar(&bookID, "book", "", "book id")
	lend.Flags().StringVar(&userID, "user", "", "user id")
	lend.Flags().StringVar(&due, "due", "", "due date YYYY-MM-DD, default 30 days from today")

	giveBack := &cobra.Command{
		Use:   "return <loan-id>",
		Short: "Return a lent book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runCommand[returnbook.Command](cmd.Context(), c.app,
				returnbook.NewCommandHandler(c.app.workflow), returnbook.BuildCommand(args[0], c.app.now()))
			if err != nil {
				return err
			}

			return printOutcome(cmd, "returned loan "+args[0], result, true)
		},
	}

	remove := &cobra.Command{
		Use:   "remove <loan-id>",
		Short: "Delete a loan record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runCommand[removeloan.Command](cmd.Context(), c.app,
				removeloan.NewCommandHandler(c.app.workflow), removeloan.BuildCommand(args[0], c.app.now()))
			if err != nil {
				return err
			}

			return printOutcome(cmd, "removed loan "+args[0], result, true)
		},
	}

	loans.AddCommand(lend, giveBack, remove)

	return loans
}

func (c *cli) reviewsCommand() *cobra.Command {
	reviews := &cobra.Command{Use: "reviews", Short: "Rate books"}

	var (
		bookID, userID, text string
		rating               int
	)

	add := &cobra.Command{
		Use:   "add",
		Short: "Review a book; the rating updates the book's average",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := runCommand[addbookreview.Command](cmd.Context(), c.app,
				addbookreview.NewCommandHandler(c.app.workflow),
				addbookreview.BuildCommand(c.app.newID(), bookID, userID, rating, text, c.app.now()))
			if err != nil {
				return err
			}

			return printOutcome(cmd, "reviewed book "+bookID, result, true)
		},
	}

	add.Flags().StringVar(&bookID, "book", "", "book id")
	add.Flags().StringVar(&userID, "user", "", "user id")
	add.Flags().IntVar(&rating, "rating", 0, "rating from 1 to 5")
	add.Flags().StringVar(&text, "text", "", "review text")

	reviews.AddCommand(add)

	return reviews
}
