package documents

import (
	"context"
	"fmt"

	"github.com/Guru-25/FreeFusion/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) checkCollection(collection string) error {
	if !common.KnownCollection(collection) {
		return common.ErrUnknownCollection
	}
	return nil
}

func (s *Service) GetAll(ctx context.Context, collection string) ([]Document, error) {
	if err := s.checkCollection(collection); err != nil {
		return nil, err
	}

	docs, err := s.repo.GetAll(ctx, collection)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return docs, nil
}

func (s *Service) QueryByEquality(ctx context.Context, collection string, field string, value string) ([]Document, error) {
	if err := s.checkCollection(collection); err != nil {
		return nil, err
	}
	if field == "" {
		return nil, fmt.Errorf("%w: empty field name", common.ErrorValidation)
	}

	docs, err := s.repo.QueryByEquality(ctx, collection, field, value)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return docs, nil
}
