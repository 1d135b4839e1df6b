package menu

// Choice is the highlighted button of the exit confirmation.
type Choice int

const (
	ChoiceNo Choice = iota
	ChoiceYes
)

func (c Choice) String() string {
	if c == ChoiceYes {
		return "yes"
	}
	return "no"
}

// Status is the outcome of feeding one key to a menu.
type Status int

const (
	// Pending means the menu is still waiting for keys.
	Pending Status = iota
	// Done means the user confirmed a value; read it with Value.
	Done
	// Aborted means the user confirmed the destructive exit. Callers must
	// terminate without committing anything.
	Aborted
)

func (s Status) String() string {
	switch s {
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	default:
		return "pending"
	}
}

// exitConfirm is the modal guarding destructive cancellation. While active
// it swallows every key.
type exitConfirm struct {
	active bool
	choice Choice
}

// open activates the modal with "No" highlighted.
func (c *exitConfirm) open() {
	c.active = true
	c.choice = ChoiceNo
}

// handle consumes k while the modal is active.
func (c *exitConfirm) handle(k Key) Status {
	switch {
	case k.isUp():
		c.choice = ChoiceNo
	case k.isDown():
		c.choice = ChoiceYes
	case k.Type == KeyEnter && c.choice == ChoiceYes:
		return Aborted
	case k.Type == KeyEscape, k.Is('q'), c.choice == ChoiceNo:
		c.active = false
	}
	return Pending
}
