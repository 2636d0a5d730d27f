package errs

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Equipment errors
	ErrEquipmentNotFound  = New("equipment not found")
	ErrEquipmentNameTaken = New("equipment name already in use")
	ErrEquipmentInUse     = New("equipment still has reservations")

	// Reservation errors
	ErrReservationNotFound = New("reservation not found")
	ErrReservationNotOwned = New("reservation not owned by user")

	// Validation errors
	ErrDomainValidationFailed = New("domain validation failed")
	ErrInvalidFilter          = New("invalid filter")
	ErrInvalidCursor          = New("invalid cursor")

	// User errors
	ErrUserNotFound = New("user not found")
	ErrUserInactive = New("user inactive")
	ErrEmailTaken   = New("email already registered")
)
