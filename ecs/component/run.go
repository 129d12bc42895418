package component

type Outcome int

const (
	Running Outcome = iota
	Extracted
	Died
)

func (o Outcome) String() string {
	switch o {
	case Extracted:
		return "extracted"
	case Died:
		return "died"
	default:
		return "running"
	}
}

// Run is the singleton tally for the current level.
type Run struct {
	Level     int
	Quota     int
	Collected int
	Kills     int
	// Bounty is the gold value of enemies killed this run.
	Bounty    int
	Gold      int
	Outcome   Outcome
}

var RunComponent = NewComponent[Run]()
