package documents

import (
	"context"
	"errors"
	"testing"

	"github.com/Guru-25/FreeFusion/internal/common"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	Docs []Document
	Err  error

	LastCollection string
	LastField      string
	LastValue      string
}

func (f *fakeRepository) Insert(ctx context.Context, document *Document) (*Document, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.Docs = append(f.Docs, *document)
	return document, nil
}

func (f *fakeRepository) GetAll(ctx context.Context, collection string) ([]Document, error) {
	f.LastCollection = collection
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Docs, nil
}

func (f *fakeRepository) QueryByEquality(ctx context.Context, collection string, field string, value string) ([]Document, error) {
	f.LastCollection = collection
	f.LastField = field
	f.LastValue = value
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Docs, nil
}

func TestServiceGetAll_UnknownCollection(t *testing.T) {
	svc := NewService(&fakeRepository{})

	_, err := svc.GetAll(context.Background(), "projects")
	require.ErrorIs(t, err, common.ErrUnknownCollection)
}

func TestServiceGetAll_Success(t *testing.T) {
	repo := &fakeRepository{Docs: []Document{{ID: "d-1"}, {ID: "d-2"}}}
	svc := NewService(repo)

	docs, err := svc.GetAll(context.Background(), common.CollectionCustomerRequests)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, common.CollectionCustomerRequests, repo.LastCollection)
}

func TestServiceGetAll_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepository{Err: errors.New("db down")})

	_, err := svc.GetAll(context.Background(), common.CollectionCustomerRequests)
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestServiceQueryByEquality_Success(t *testing.T) {
	repo := &fakeRepository{Docs: []Document{{ID: "d-1"}}}
	svc := NewService(repo)

	docs, err := svc.QueryByEquality(context.Background(), common.CollectionCustomers, "email", "a@b.c")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "email", repo.LastField)
	require.Equal(t, "a@b.c", repo.LastValue)
}

func TestServiceQueryByEquality_UnknownCollection(t *testing.T) {
	svc := NewService(&fakeRepository{})

	_, err := svc.QueryByEquality(context.Background(), "users", "email", "a@b.c")
	require.ErrorIs(t, err, common.ErrUnknownCollection)
}

func TestServiceQueryByEquality_EmptyField(t *testing.T) {
	svc := NewService(&fakeRepository{})

	_, err := svc.QueryByEquality(context.Background(), common.CollectionCustomers, "", "a@b.c")
	require.ErrorIs(t, err, common.ErrorValidation)
}
