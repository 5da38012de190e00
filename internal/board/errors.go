package board

// BoardError is a custom error type for board rule violations
type BoardError string

// Error implements the error interface
func (e BoardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidPlayerCount BoardError = "player count must be between 2 and 6"
	ErrInvalidRoll        BoardError = "roll must be between 1 and 6"
	ErrTokenInYard        BoardError = "token needs a 6 to leave the yard"
	ErrOvershoot          BoardError = "move would overshoot the finish"
	ErrTokenFinished      BoardError = "token has already finished"
)
