package shred

// progressTracker keeps reported percentages strictly increasing across
// one operation. Repeated values (possible when passes > 100) are
// suppressed rather than re-emitted.
type progressTracker struct {
	fn   ProgressFunc
	last int
}

func (pt *progressTracker) report(done, total int) {
	if pt.fn == nil || total <= 0 {
		return
	}
	percent := done * 100 / total
	if percent > pt.last {
		pt.last = percent
		pt.fn(percent)
	}
}

// finish guarantees the terminal 100 on success, including the zero-length
// file case where no pass reports anything.
func (pt *progressTracker) finish() {
	if pt.fn != nil && pt.last < 100 {
		pt.last = 100
		pt.fn(100)
	}
}
