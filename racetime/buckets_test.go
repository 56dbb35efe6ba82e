package racetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketsPartitionRange(t *testing.T) {
	require.Len(t, Buckets, BucketCount)
	for s := 0; s < BucketCount*BucketWidth; s++ {
		matches := 0
		for _, b := range Buckets {
			if b.Contains(s) {
				matches++
			}
		}
		require.Equal(t, 1, matches, "second %d", s)

		b, ok := ClassifyBucket(s)
		require.True(t, ok)
		require.True(t, b.Contains(s))
	}
}

func TestClassifyBucket(t *testing.T) {
	b, ok := ClassifyBucket(0)
	assert.True(t, ok)
	assert.Equal(t, "+00:00 to +00:14", b.Label)

	b, ok = ClassifyBucket(75)
	assert.True(t, ok)
	assert.Equal(t, "+01:15 to +01:29", b.Label)

	b, ok = ClassifyBucket(449)
	assert.True(t, ok)
	assert.Equal(t, "+07:15 to +07:29", b.Label)

	_, ok = ClassifyBucket(450)
	assert.False(t, ok)
	_, ok = ClassifyBucket(-1)
	assert.False(t, ok)
}

func TestBucketLabels(t *testing.T) {
	labels := BucketLabels()
	assert.Len(t, labels, BucketCount)
	assert.Equal(t, "+00:15 to +00:29", labels[1])
}
