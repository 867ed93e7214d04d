package bap

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type counter struct{ n int }

type inc struct{}

func (inc) Apply(c *counter) error  { c.n++; return nil }
func (inc) Revert(c *counter) error { c.n--; return nil }

func TestMetricsAndLogging(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	tree := NewTree[*counter](0)
	a, _ := tree.Branch(tree.Root(), 0, inc{}, inc{})
	b, _ := tree.Branch(tree.Root(), 0, inc{})
	mgr := NewStateManager(tree, &counter{}, WithMetrics(m), WithLogger(logger))

	require.NoError(t, mgr.Transition(a))
	require.Equal(t, 2, mgr.State().n)
	require.NoError(t, mgr.Transition(b))
	require.Equal(t, 1, mgr.State().n)

	require.Equal(t, 3.0, testutil.ToFloat64(m.applied))
	require.Equal(t, 2.0, testutil.ToFloat64(m.reverted))
	require.Equal(t, 1, testutil.CollectAndCount(m.transitions))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "bap transition", entry.Message)
	require.Equal(t, 2, entry.Data["reverted"])
	require.Equal(t, 1, entry.Data["applied"])
}
