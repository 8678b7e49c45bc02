package reservation

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

type Contact struct {
	Phone   string
	Address string
}

// Extras holds the starters ordered with a reservation.
type Extras struct {
	starters []string
}

func NewExtras(starters ...string) Extras {
	var e Extras
	for _, s := range starters {
		e = e.Add(s)
	}
	return e
}

// Add appends item unless it is already present.
func (e Extras) Add(item string) Extras {
	if item == "" || e.Contains(item) {
		return e
	}
	return Extras{starters: append(e.Starters(), item)}
}

// Toggle removes exactly one occurrence of item, or appends it when absent.
func (e Extras) Toggle(item string) Extras {
	if item == "" {
		return e
	}
	for i, s := range e.starters {
		if s == item {
			out := make([]string, 0, len(e.starters)-1)
			out = append(out, e.starters[:i]...)
			out = append(out, e.starters[i+1:]...)
			return Extras{starters: out}
		}
	}
	return Extras{starters: append(e.Starters(), item)}
}

func (e Extras) Contains(item string) bool {
	for _, s := range e.starters {
		if s == item {
			return true
		}
	}
	return false
}

func (e Extras) Starters() []string {
	out := make([]string, len(e.starters))
	copy(out, e.starters)
	return out
}

func (e Extras) Len() int {
	return len(e.starters)
}
