package sources

// Progress is notified while a script loads. step >= 0 is the number of
// completed steps out of LoadingSteps; Finished marks the end.
type Progress func(source any, step int)

const Finished = -1

// LoadingSteps is the number of steps reported before Finished.
const LoadingSteps = 3

func (p Progress) Report(source any, step int) {
	if p != nil {
		p(source, step)
	}
}
