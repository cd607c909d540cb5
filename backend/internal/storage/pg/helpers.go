package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/samdazain/forumapi-v2/shared/domain"
	internal_errors "github.com/samdazain/forumapi-v2/shared/errors"
	sharedpg "github.com/samdazain/forumapi-v2/shared/storage/pg"
)

// verifyExists runs a single-row query and maps no rows to a 404.
func verifyExists(ctx context.Context, q sharedpg.Querier, query string, id string, notFound string) error {
	var one int
	err := q.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return internal_errors.NotFound(notFound)
	}
	if err != nil {
		return fmt.Errorf("failed to verify %s: %w", id, err)
	}
	return nil
}

// verifyOwner loads the owner of a row: 404 if absent, 403 if not owner.
func verifyOwner(ctx context.Context, q sharedpg.Querier, query string, id string, owner domain.UserId, notFound, forbidden string) error {
	var actual domain.UserId
	err := q.QueryRowContext(ctx, query, id).Scan(&actual)
	if errors.Is(err, sql.ErrNoRows) {
		return internal_errors.NotFound(notFound)
	}
	if err != nil {
		return fmt.Errorf("failed to get owner of %s: %w", id, err)
	}
	if actual != owner {
		return internal_errors.Forbidden(forbidden)
	}
	return nil
}
