package errorvalues

import "errors"

var (
	ErrSnapshotNotFound = errors.New("snapshot doesn't exist")
	ErrPersistFailed    = errors.New("persisting snapshot failed")
	ErrQuotaExceeded    = errors.New("snapshot exceeds storage quota")
	ErrCorruptSnapshot  = errors.New("snapshot can't be parsed")

	ErrInvalidInput = errors.New("invalid input")

	ErrUnknownExercise    = errors.New("exercise doesn't belong to today's routine")
	ErrUnknownItem        = errors.New("item doesn't exist in the market")
	ErrInsufficientFunds  = errors.New("not enough bones")
	ErrItemOwned          = errors.New("item already owned")
	ErrItemNotOwned       = errors.New("item isn't owned")
	ErrNotEquippable      = errors.New("item can't be equipped")
	ErrPhotoNotFound      = errors.New("photo doesn't exist")
	ErrMoodNotFound       = errors.New("check-in doesn't exist")
	ErrUnknownAchievement = errors.New("achievement doesn't exist")

	ErrNotificationsUnsupported = errors.New("notifications aren't supported")
	ErrPermissionDenied         = errors.New("notification permission denied")

	ErrTimerNotRunning = errors.New("rest timer isn't running")
)
