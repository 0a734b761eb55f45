package usecases

import (
	"context"

	"opsight/internal/application/analytics/usecases/statsutil"
	"opsight/internal/domain/activity"
	"opsight/internal/domain/directory"
	"opsight/internal/shared/errors"
)

// aggregateWindow runs the shared front half of every analytics pipeline:
// resolve the scope, expand it with alias IDs, fetch the window's records
// and fold them. An empty scoped population short-circuits to an empty
// aggregate without touching the record store.
func aggregateWindow(
	ctx context.Context,
	recordRepo activity.Repository,
	directoryRepo directory.Repository,
	window statsutil.Window,
	filter statsutil.ScopeFilter,
) (*statsutil.Aggregate, error) {
	agg, _, err := aggregateWindowWithAliases(ctx, recordRepo, directoryRepo, window, filter)
	return agg, err
}

// aggregateWindowWithAliases additionally returns the alias index so
// callers can canonicalize IDs they received from the client.
func aggregateWindowWithAliases(
	ctx context.Context,
	recordRepo activity.Repository,
	directoryRepo directory.Repository,
	window statsutil.Window,
	filter statsutil.ScopeFilter,
) (*statsutil.Aggregate, map[uint]uint, error) {
	scope, err := statsutil.ResolveScope(ctx, directoryRepo, filter)
	if err != nil {
		return nil, nil, errors.NewInternalError("failed to resolve scope", err.Error())
	}

	aliasIndex, err := directoryRepo.AliasIndex(ctx)
	if err != nil {
		return nil, nil, errors.NewInternalError("failed to load alias index", err.Error())
	}

	if scope.IsEmpty() {
		return statsutil.NewAggregate(), aliasIndex, nil
	}

	ownerFilter := statsutil.ExpandOwnerFilter(scope, aliasIndex)
	records, err := recordRepo.ListByDateRange(ctx, window.From, window.To, ownerFilter)
	if err != nil {
		return nil, nil, errors.NewInternalError("failed to fetch activity records", err.Error())
	}

	return statsutil.AggregateRecords(records, aliasIndex), aliasIndex, nil
}
