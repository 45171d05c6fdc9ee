package iolexicon

import (
	"github.com/cheggaaa/pb/v3"
)

// newProgressBar creates a byte counting bar for reading a table of the
// given size.
func newProgressBar(size int64, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start64(size)
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
