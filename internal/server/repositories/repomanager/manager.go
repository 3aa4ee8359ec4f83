// Package repomanager vends repositories bound to a DBTX and runs the schema
// migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophchat/internal/dbx"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/messages"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophchat/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Messages(db dbx.DBTX) messages.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
