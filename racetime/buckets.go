package racetime

import "fmt"

// BucketWidth and BucketCount describe the time-behind ranges offered to players.
const (
	BucketWidth = 15
	BucketCount = 30
)

// Bucket is the half-open range [Start, End) seconds behind the leader.
type Bucket struct {
	Start int
	End   int
	Label string
}

// Contains reports whether secs falls inside the bucket.
func (b Bucket) Contains(secs int) bool {
	return secs >= b.Start && secs < b.End
}

// Buckets lists every selectable range in ascending order.
var Buckets = func() []Bucket {
	out := make([]Bucket, BucketCount)
	for i := range out {
		start := i * BucketWidth
		out[i] = Bucket{
			Start: start,
			End:   start + BucketWidth,
			Label: fmt.Sprintf("%s to %s", formatBehind(start), formatBehind(start+BucketWidth-1)),
		}
	}
	return out
}()

// ClassifyBucket finds the bucket holding secs. Values past the last bucket
// (and negative values) are not classified.
func ClassifyBucket(secs int) (Bucket, bool) {
	if secs < 0 {
		return Bucket{}, false
	}
	i := secs / BucketWidth
	if i >= len(Buckets) {
		return Bucket{}, false
	}
	return Buckets[i], true
}

// BucketLabels returns the labels in display order.
func BucketLabels() []string {
	labels := make([]string, len(Buckets))
	for i, b := range Buckets {
		labels[i] = b.Label
	}
	return labels
}

func formatBehind(secs int) string {
	return fmt.Sprintf("+%02d:%02d", secs/60, secs%60)
}
