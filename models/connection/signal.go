package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID

	// Start a fresh game against the bot
	CodeCreateGame

	// One turn of the human player; the response carries the bot's
	// counter turn too
	CodeFire

	CodeEndGame

	// Same rule and difficulty, fresh boards
	CodeRematch

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
