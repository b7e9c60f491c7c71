package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkaren/topos/topology"
)

// chainSpace builds {1,2,3} with the nested chain [∅, {1}, {1,2}, X].
func chainSpace(t *testing.T) *topology.Space[int] {
	t.Helper()
	s, err := topology.New([]int{1, 2, 3}, [][]int{{}, {1}, {1, 2}, {1, 2, 3}})
	require.NoError(t, err)

	return s
}

// letterChainSpace builds {a,b,c} with the matching chain [∅, {a}, {a,b}, Y].
func letterChainSpace(t *testing.T) *topology.Space[string] {
	t.Helper()
	s, err := topology.New([]string{"a", "b", "c"}, [][]string{{}, {"a"}, {"a", "b"}, {"a", "b", "c"}})
	require.NoError(t, err)

	return s
}

// TestContinuous_Identity verifies the identity map is continuous on any
// space: the preimage of each open set is itself.
func TestContinuous_Identity(t *testing.T) {
	id := func(n int) int { return n }

	spaces := []*topology.Space[int]{chainSpace(t)}
	discrete, err := topology.New([]int{1, 2}, [][]int{{}, {1}, {2}, {1, 2}})
	require.NoError(t, err)
	spaces = append(spaces, discrete)

	for _, s := range spaces {
		ok, err := topology.IsContinuous(id, s, s)
		assert.NoError(t, err)
		assert.True(t, ok, "identity must be continuous")
	}
}

// TestContinuous_ChainBijection maps the integer chain onto the letter chain
// order-preservingly; every preimage lands back on the chain.
func TestContinuous_ChainBijection(t *testing.T) {
	x := chainSpace(t)
	y := letterChainSpace(t)
	f := func(n int) string { return string(rune('a' + n - 1)) }

	ok, err := topology.IsContinuous(f, x, y)
	assert.NoError(t, err)
	assert.True(t, ok)
}

// TestContinuous_CoarseDomain gives the domain the indiscrete topology; the
// preimage {1} of the codomain's {a} is then not open.
func TestContinuous_CoarseDomain(t *testing.T) {
	x, err := topology.New([]int{1, 2, 3}, [][]int{{}, {1, 2, 3}})
	require.NoError(t, err)
	y := letterChainSpace(t)
	f := func(n int) string { return string(rune('a' + n - 1)) }

	ok, err := topology.IsContinuous(f, x, y)
	assert.NoError(t, err)
	assert.False(t, ok, "injective map out of an indiscrete space into a finer one must fail")
}

// TestContinuous_ConstantMap verifies a constant map into the chain is
// continuous: preimages are ∅ or the full domain.
func TestContinuous_ConstantMap(t *testing.T) {
	x, err := topology.New([]int{1, 2, 3}, [][]int{{}, {1, 2, 3}})
	require.NoError(t, err)
	y := letterChainSpace(t)

	ok, err := topology.IsContinuous(func(int) string { return "a" }, x, y)
	assert.NoError(t, err)
	assert.True(t, ok)
}

// TestContinuous_EmptyDomain: with no domain elements every preimage is ∅,
// which is open by the axioms, so continuity holds vacuously.
func TestContinuous_EmptyDomain(t *testing.T) {
	x, err := topology.New(nil, [][]int{{}})
	require.NoError(t, err)
	y := letterChainSpace(t)

	ok, err := topology.IsContinuous(func(int) string { return "a" }, x, y)
	assert.NoError(t, err)
	assert.True(t, ok)
}

// TestNewFunc_NilArguments checks the nil sentinels.
func TestNewFunc_NilArguments(t *testing.T) {
	x := chainSpace(t)
	y := letterChainSpace(t)

	_, err := topology.NewFunc[int, string](nil, x, y)
	assert.ErrorIs(t, err, topology.ErrNilMapping)

	_, err = topology.NewFunc(func(n int) string { return "a" }, nil, y)
	assert.ErrorIs(t, err, topology.ErrNilSpace)

	_, err = topology.NewFunc(func(n int) string { return "a" }, x, nil)
	assert.ErrorIs(t, err, topology.ErrNilSpace)
}

// TestFunc_Accessors covers Apply, Domain and Codomain.
func TestFunc_Accessors(t *testing.T) {
	x := chainSpace(t)
	y := letterChainSpace(t)
	f, err := topology.NewFunc(func(n int) string { return string(rune('a' + n - 1)) }, x, y)
	require.NoError(t, err)

	assert.Equal(t, "b", f.Apply(2))
	assert.Same(t, x, f.Domain())
	assert.Same(t, y, f.Codomain())
}
