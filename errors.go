package junction

import "fmt"

// ErrorCode represents specific error conditions in the simulation
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// Phase name is not present in the layout
	ErrCodeUnknownPhase
	// Lane key is not present in the layout
	ErrCodeUnknownLane
	// Layout declares no phases
	ErrCodeEmptyPhaseTable
	// Lane key appears in more than one phase
	ErrCodeConflictingLane
	// Duration or threshold is not positive
	ErrCodeInvalidDuration
	// Probability is outside [0, 1]
	ErrCodeInvalidProbability
	// Rate or weight is out of range
	ErrCodeInvalidRate
	// Vehicle class is not valid for the operation
	ErrCodeInvalidVehicleClass
	// Configuration is invalid for another reason
	ErrCodeInvalidConfiguration
)

// PhaseError represents phase-related errors
type PhaseError struct {
	Code    ErrorCode
	Phase   string
	Message string
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase error [%s]: %s", e.Phase, e.Message)
}

// NewUnknownPhaseError creates a new unknown phase error
func NewUnknownPhaseError(name string) *PhaseError {
	return &PhaseError{
		Code:    ErrCodeUnknownPhase,
		Phase:   name,
		Message: fmt.Sprintf("phase '%s' not found", name),
	}
}

// NewPhaseError creates a new phase error with custom values
func NewPhaseError(code ErrorCode, phase string, message string) *PhaseError {
	return &PhaseError{
		Code:    code,
		Phase:   phase,
		Message: message,
	}
}

// LaneError represents lane-related errors
type LaneError struct {
	Code    ErrorCode
	LaneKey string
	Message string
}

func (e *LaneError) Error() string {
	return fmt.Sprintf("lane error [%s]: %s", e.LaneKey, e.Message)
}

// NewUnknownLaneError creates a new unknown lane error
func NewUnknownLaneError(key string) *LaneError {
	return &LaneError{
		Code:    ErrCodeUnknownLane,
		LaneKey: key,
		Message: fmt.Sprintf("lane '%s' not found", key),
	}
}

// NewLaneError creates a new lane error with custom values
func NewLaneError(code ErrorCode, key string, message string) *LaneError {
	return &LaneError{
		Code:    code,
		LaneKey: key,
		Message: message,
	}
}

// VehicleError represents vehicle-related errors
type VehicleError struct {
	Code    ErrorCode
	Class   VehicleClass
	Message string
}

func (e *VehicleError) Error() string {
	return fmt.Sprintf("vehicle error [%s]: %s", e.Class, e.Message)
}

// NewInvalidClassError creates an error for a class that cannot be injected
func NewInvalidClassError(class VehicleClass) *VehicleError {
	return &VehicleError{
		Code:    ErrCodeInvalidVehicleClass,
		Class:   class,
		Message: fmt.Sprintf("class '%s' is not a priority class", class),
	}
}

// NewVehicleError creates a new vehicle error with custom values
func NewVehicleError(code ErrorCode, class VehicleClass, message string) *VehicleError {
	return &VehicleError{
		Code:    code,
		Class:   class,
		Message: message,
	}
}

// ConfigurationError represents simulation configuration issues
type ConfigurationError struct {
	Code  ErrorCode
	Field string
	Issue string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Issue)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, issue string) *ConfigurationError {
	return &ConfigurationError{
		Code:  ErrCodeInvalidConfiguration,
		Field: field,
		Issue: issue,
	}
}

// NewConfigurationErrorWithCode creates a configuration error with a specific code
func NewConfigurationErrorWithCode(code ErrorCode, field, issue string) *ConfigurationError {
	return &ConfigurationError{
		Code:  code,
		Field: field,
		Issue: issue,
	}
}

// IsPhaseError checks if an error is a PhaseError
func IsPhaseError(err error) bool {
	_, ok := err.(*PhaseError)
	return ok
}

// IsLaneError checks if an error is a LaneError
func IsLaneError(err error) bool {
	_, ok := err.(*LaneError)
	return ok
}

// IsVehicleError checks if an error is a VehicleError
func IsVehicleError(err error) bool {
	_, ok := err.(*VehicleError)
	return ok
}

// IsConfigurationError checks if an error is a ConfigurationError
func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	switch e := err.(type) {
	case *PhaseError:
		return e.Code
	case *LaneError:
		return e.Code
	case *VehicleError:
		return e.Code
	case *ConfigurationError:
		return e.Code
	default:
		return ErrCodeNone
	}
}
