package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConfiguration indicates a mis-wired collaborator, such as a missing
// repository or an unknown transaction kind.
var ErrConfiguration = errors.New("configuration error")

// ErrAccessDenied indicates that the caller's role does not permit the operation.
var ErrAccessDenied = errors.New("access denied")

// ErrUnknownReportType indicates an unrecognized report type string.
var ErrUnknownReportType = errors.New("unknown report type")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
