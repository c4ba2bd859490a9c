package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/youquote/internal/client/client"
	"github.com/dmitrijs2005/youquote/internal/models"
)

// BrowseService covers the public reads.
type BrowseService interface {
	Quotes(ctx context.Context) ([]models.Quote, error)
	Quote(ctx context.Context, id int64) (*models.Quote, error)
	Authors(ctx context.Context) ([]models.Author, error)
	AuthorQuotes(ctx context.Context, id int64) (*models.AuthorQuotes, error)
}

type browseService struct {
	client client.Client
}

func NewBrowseService(c client.Client) BrowseService {
	return &browseService{client: c}
}

func (b *browseService) Quotes(ctx context.Context) ([]models.Quote, error) {
	q, err := b.client.ListQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return q, nil
}

func (b *browseService) Quote(ctx context.Context, id int64) (*models.Quote, error) {
	q, err := b.client.GetQuote(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quote %d: %w", id, err)
	}
	return q, nil
}

func (b *browseService) Authors(ctx context.Context) ([]models.Author, error) {
	a, err := b.client.ListAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return a, nil
}

func (b *browseService) AuthorQuotes(ctx context.Context, id int64) (*models.AuthorQuotes, error) {
	a, err := b.client.GetAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author %d: %w", id, err)
	}
	return a, nil
}
