package facodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageObserve(t *testing.T) {
	d, err := BuildDictionary(testCorpus)
	require.NoError(t, err)

	buf, err := d.Encode("EC:1.1.1.-;GO:0000001;GO:0000001")
	require.NoError(t, err)

	u := NewUsage()
	require.NoError(t, u.Observe(buf))

	assert.Equal(t, uint64(2), u.Cardinality())

	ec, _ := d.Code("EC:1.1.1.-")
	go1, _ := d.Code("GO:0000001")
	ipr, _ := d.Code("IPR:IPR000001")
	assert.True(t, u.Contains(ec))
	assert.True(t, u.Contains(go1))
	assert.False(t, u.Contains(ipr))
}

func TestUsageObserveTruncated(t *testing.T) {
	u := NewUsage()
	assert.ErrorIs(t, u.Observe([]byte{1, 2}), ErrTruncatedBuffer)
}

func TestUsageMerge(t *testing.T) {
	a := NewUsage()
	a.ObserveCode(1)
	a.ObserveCode(2)

	b := NewUsage()
	b.ObserveCode(2)
	b.ObserveCode(5)

	a.Merge(b)
	assert.Equal(t, uint64(3), a.Cardinality())
	assert.True(t, a.Contains(5))
	assert.False(t, b.Contains(1))
}

func TestUsageUnusedTokens(t *testing.T) {
	d, err := BuildDictionary(testCorpus)
	require.NoError(t, err)

	u := NewUsage()
	for _, raw := range []string{
		"EC:1.1.1.-;GO:0000001",
		"GO:0046872",
	} {
		buf, err := d.Encode(raw)
		require.NoError(t, err)
		require.NoError(t, u.Observe(buf))
	}

	assert.Equal(t, []string{"EC:2.12.3.7", "EC:2.2.-.-", "GO:0000002", "IPR:IPR000001"}, u.UnusedTokens(d))
}

func TestUsageEmpty(t *testing.T) {
	d, err := BuildDictionary(testCorpus)
	require.NoError(t, err)

	u := NewUsage()
	require.NoError(t, u.Observe(nil))
	assert.Equal(t, uint64(0), u.Cardinality())
	assert.Len(t, u.UnusedTokens(d), d.Len())
}
