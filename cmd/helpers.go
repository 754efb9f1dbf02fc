package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/maturiz/internal/assessment"
	"github.com/abhisek/maturiz/internal/interview"
	"github.com/abhisek/maturiz/internal/ledger"
	"github.com/abhisek/maturiz/internal/llm"
	"github.com/abhisek/maturiz/internal/rubric"
	"github.com/abhisek/maturiz/internal/store"
	"github.com/spf13/cobra"
)

// sessionDeps bundles the store and the assessment session a command
// operates on.
type sessionDeps struct {
	store   *store.Store
	session *assessment.Session
}

func (d *sessionDeps) close(ctx context.Context) {
	d.session.Close(ctx)
	d.store.Close()
}

// openSession opens the store, restores the latest ledger snapshot, and
// wires the reasoning-service provider when one is configured. Commands
// that need the provider (diagnose, interview) pass needProvider to fail
// early with a configuration hint instead of mid-flow.
func openSession(cmd *cobra.Command, needProvider bool) (*sessionDeps, error) {
	catalog, err := resolveCatalog(cmd)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	cfg := assessment.Config{
		Catalog:   catalog,
		Policy:    resolvePolicy(),
		Language:  interview.ParseLanguage(os.Getenv("MATURIZ_LANG")),
		Events:    st.EventRepo(),
		Snapshots: st.SnapshotRepo(),
	}

	provider, llmCfg, perr := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if perr != nil {
		if needProvider {
			st.Close()
			return nil, fmt.Errorf("reasoning service not configured: %w", perr)
		}
	} else {
		cfg.Provider = provider
		cfg.Timeout = llmCfg.Timeout
	}

	sess := assessment.New(cfg)
	if err := sess.Restore(cmd.Context()); err != nil {
		st.Close()
		return nil, fmt.Errorf("restore scores: %w", err)
	}
	return &sessionDeps{store: st, session: sess}, nil
}

// resolveCatalog loads the --rubric YAML file when given, otherwise the
// built-in catalog.
func resolveCatalog(cmd *cobra.Command) (*rubric.Catalog, error) {
	path, _ := cmd.Flags().GetString("rubric")
	if path == "" {
		return rubric.Default(), nil
	}
	catalog, err := rubric.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rubric %s: %w", path, err)
	}
	return catalog, nil
}

// resolvePolicy reads the selection policy from MATURIZ_POLICY.
func resolvePolicy() ledger.Policy {
	return ledger.PolicyFromString(os.Getenv("MATURIZ_POLICY"))
}

// formatScores renders a score set as a sorted list, or a dash when empty.
func formatScores(scores map[int]bool) string {
	if len(scores) == 0 {
		return "-"
	}
	ranks := make([]int, 0, len(scores))
	for r := range scores {
		ranks = append(ranks, r)
	}
	sort.Ints(ranks)
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ",")
}
