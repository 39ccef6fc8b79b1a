package repomanager

import (
	"context"
	"database/sql"

	"github.com/Guru-25/FreeFusion/internal/dbx"
	"github.com/Guru-25/FreeFusion/internal/server/accounts"
	"github.com/Guru-25/FreeFusion/internal/server/documents"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Documents(db dbx.DBTX) documents.Repository
}
