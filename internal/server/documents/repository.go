package documents

import (
	"context"
)

type Repository interface {
	Insert(ctx context.Context, document *Document) (*Document, error)
	GetAll(ctx context.Context, collection string) ([]Document, error)
	QueryByEquality(ctx context.Context, collection string, field string, value string) ([]Document, error)
}
