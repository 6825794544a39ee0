package log

// progressStep is the percentage between two progress lines
const progressStep = 10

// Progress reports how many of a fixed number of units of work are done,
// logging one Info line each time another 10% completes. It is not safe
// for concurrent use; a single collector goroutine should call Advance.
type Progress struct {
	logger  Logger
	label   string
	total   int
	done    int
	nextPct int
}

// NewProgress returns a reporter for total units of work logged through logger.
func NewProgress(logger Logger, label string, total int) *Progress {
	return &Progress{
		logger:  logger,
		label:   label,
		total:   total,
		nextPct: progressStep,
	}
}

// Advance marks one more unit as done.
func (p *Progress) Advance() {
	if p.total <= 0 || p.done >= p.total {
		return
	}

	p.done++
	pct := p.done * 100 / p.total
	if pct >= p.nextPct {
		p.logger.Infof("%s %d%% (%d/%d)", p.label, pct, p.done, p.total)
		p.nextPct = (pct/progressStep + 1) * progressStep
	}
}

// Done returns the number of completed units.
func (p *Progress) Done() int {
	return p.done
}
