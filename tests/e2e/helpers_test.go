//go:build e2e

package e2e_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/annothub/annotator-backend/internal/adapter/postgres"
	annotationrepo "github.com/annothub/annotator-backend/internal/adapter/postgres/annotation"
	archiverepo "github.com/annothub/annotator-backend/internal/adapter/postgres/archive"
	commentrepo "github.com/annothub/annotator-backend/internal/adapter/postgres/comment"
	instancerepo "github.com/annothub/annotator-backend/internal/adapter/postgres/instance"
	reportrepo "github.com/annothub/annotator-backend/internal/adapter/postgres/report"
	statsrepo "github.com/annothub/annotator-backend/internal/adapter/postgres/stats"
	subscriptionrepo "github.com/annothub/annotator-backend/internal/adapter/postgres/subscription"
	"github.com/annothub/annotator-backend/internal/adapter/postgres/testhelper"
	voterepo "github.com/annothub/annotator-backend/internal/adapter/postgres/vote"
	"github.com/annothub/annotator-backend/internal/auth"
	"github.com/annothub/annotator-backend/internal/service/annotation"
	"github.com/annothub/annotator-backend/internal/service/statistics"
)

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// testEnv wires the full service stack against a real PostgreSQL container
// (shared via testhelper).
type testEnv struct {
	Pool        *pgxpool.Pool
	Annotations *annotation.Service
	Archive     *archiverepo.Repo
	logger      *slog.Logger
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	archive := archiverepo.New(pool)

	annotations := annotation.NewService(
		logger,
		annotationrepo.New(pool),
		commentrepo.New(pool),
		archive,
		voterepo.New(pool),
		subscriptionrepo.New(pool),
		reportrepo.New(pool),
		txm,
	)

	return &testEnv{
		Pool:        pool,
		Annotations: annotations,
		Archive:     archive,
		logger:      logger,
	}
}

// Statistics builds a statistics service for one course/instance/user binding
// on top of the shared pool.
func (env *testEnv) Statistics(binding statistics.Binding) *statistics.Service {
	return statistics.NewService(
		env.logger,
		binding,
		statsrepo.New(env.Pool),
		reportrepo.New(env.Pool),
		instancerepo.New(env.Pool),
	)
}

// userCtx returns a context authenticated as a plain user without any
// capability.
func userCtx(userID int64) context.Context {
	return auth.Identity{UserID: userID}.ToContext(context.Background())
}

// adminCtx returns a context authenticated as a user holding the
// administrate-user-input capability.
func adminCtx(userID int64) context.Context {
	return auth.Identity{
		UserID:       userID,
		Capabilities: []string{auth.CapAdministrateUserInput},
	}.ToContext(context.Background())
}
