package apperror

import "errors"

// validation failures: the request is rejected and nothing is mutated.
var (
	ErrGameFinished      = errors.New("game is not active")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCoordinate = errors.New("invalid cell coordinate")
	ErrNotParticipant    = errors.New("you are not a player in this game")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// not found.
var (
	ErrGameNotFound = errors.New("game not found")
	ErrUserNotFound = errors.New("user not found")
)

// auth failures.
var (
	ErrMissingToken       = errors.New("access denied, token not provided")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// IsValidation reports whether err is a rejected operation rather than a server-side failure.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrGameFinished, ErrNotYourTurn, ErrCellOccupied, ErrInvalidCoordinate,
		ErrNotParticipant, ErrPermissionDenied, ErrInvalidInput, ErrUserAlreadyExists,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// IsNotFound reports whether err refers to an unknown game or account.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrGameNotFound) || errors.Is(err, ErrUserNotFound)
}
