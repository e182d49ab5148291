package services

// Service failures carry a type so the controllers can translate them into
// the right HTTP outcome without string matching.

// NotFoundError means a referenced entity does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// BadRequestError means the request itself was unsatisfiable, for example an
// order referencing an unknown user.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

// ValidationError means a structurally invalid entity reached a persistence
// pass-through, for example a nil order.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// InvalidOperationError means the entity exists but fails a scoping check.
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string { return e.Message }
