package game

const (
	SimHz        = 20.0 // server tick rate
	Dt           = 1.0 / SimHz
	UpdateRateHz = 10.0 // per-client WS state pushes

	// Choice list click layout: options are vertical rows starting at the
	// dialogue text origin. The web client mirrors these values; the
	// engine uses them to resolve click positions into option indices.
	ChoiceOriginX = 50.0
	ChoiceOriginY = 500.0
	ChoiceRowH    = 42.0

	// DefaultEmotion is assumed when a line names none.
	DefaultEmotion = "neutral"

	// SessionIdleReapS is how long a session may sit without connections
	// before the hub reaps it.
	SessionIdleReapS = 600.0
)
