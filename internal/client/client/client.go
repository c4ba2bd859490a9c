package client

import (
	"context"

	"github.com/dmitrijs2005/youquote/internal/models"
)

// Client is the remote YouQuote API as consumed by the console.
type Client interface {
	Login(ctx context.Context, form models.LoginForm) (*models.LoginResult, error)
	Register(ctx context.Context, form models.RegisterForm) (*models.User, error)

	ListQuotes(ctx context.Context) ([]models.Quote, error)
	GetQuote(ctx context.Context, id int64) (*models.Quote, error)
	ListAuthors(ctx context.Context) ([]models.Author, error)
	GetAuthor(ctx context.Context, id int64) (*models.AuthorQuotes, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	ChangeUserRole(ctx context.Context, id int64, role models.Role) error
	DeleteUser(ctx context.Context, id int64) error

	ListActiveQuotes(ctx context.Context) ([]models.Quote, error)
	ListDeletedQuotes(ctx context.Context) ([]models.Quote, error)
	DeleteQuote(ctx context.Context, id int64) error
	RestoreQuote(ctx context.Context, id int64) error
	PurgeQuote(ctx context.Context, id int64) error
	RestoreAllQuotes(ctx context.Context) error
	PurgeAllQuotes(ctx context.Context) error
}

// CredentialSource supplies the bearer credential at request construction.
// session.Store satisfies it.
type CredentialSource interface {
	Credential() (credential string, ok bool)
}
