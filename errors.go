package beans

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================
// These are base errors that should be wrapped in typed errors when returned.

var (
	// Service resolution errors.
	ErrServiceNotFound = errors.New("service not found")
	ErrServiceKeyNil   = errors.New("service key cannot be nil")
	ErrServiceTypeNil  = errors.New("service type cannot be nil")

	// Lifecycle errors.
	ErrProviderNil      = errors.New("service provider cannot be nil")
	ErrProviderDisposed = errors.New("service provider has been disposed")

	// Registration errors.
	ErrConstructorNil          = errors.New("constructor cannot be nil")
	ErrGroupNameEmpty          = errors.New("group name cannot be empty")
	ErrSingletonNotInitialized = errors.New("singleton not initialized at build time")
	ErrDescriptorNil           = errors.New("descriptor cannot be nil")
)

var (
	_ error = LifetimeError{}
	_ error = AlreadyRegisteredError{}
	_ error = ResolutionError{}
	_ error = RegistrationError{}
	_ error = ModuleError{}
	_ error = TypeMismatchError{}
	_ error = ConstructorInvocationError{}
	_ error = ConstructorPanicError{}
	_ error = BuildError{}
	_ error = DisposalError{}
	_ error = CircularDependencyError{}
)

// ========================================
// Typed Errors for Rich Context
// ========================================

// LifetimeError indicates an invalid service lifetime value.
type LifetimeError struct {
	Value any
}

func (e LifetimeError) Error() string {
	return fmt.Sprintf("invalid service lifetime: %v", e.Value)
}

// AlreadyRegisteredError indicates a service type (or type and name) is already registered.
type AlreadyRegisteredError struct {
	ServiceType reflect.Type
	ServiceKey  any
}

func (e AlreadyRegisteredError) Error() string {
	if e.ServiceKey != nil {
		return fmt.Sprintf("service %s (name: %v) already registered", formatType(e.ServiceType), e.ServiceKey)
	}
	return fmt.Sprintf("service %s already registered (use named services or groups)", formatType(e.ServiceType))
}

// ResolutionError wraps errors that occur during service resolution.
type ResolutionError struct {
	ServiceType reflect.Type
	ServiceKey  any            // nil for unnamed services
	Cause       error
	Available   []reflect.Type // registered types, for suggestions
}

func (e ResolutionError) Error() string {
	var b strings.Builder

	if e.ServiceKey != nil {
		b.WriteString(fmt.Sprintf("unable to resolve %s (name: %v)", formatType(e.ServiceType), e.ServiceKey))
	} else {
		b.WriteString(fmt.Sprintf("unable to resolve %s", formatType(e.ServiceType)))
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if similar := findSimilarTypes(e.ServiceType, e.Available); len(similar) > 0 {
		b.WriteString("\n\nDid you mean one of these?\n")
		for _, t := range similar {
			b.WriteString(fmt.Sprintf("  • %s\n", formatType(t)))
		}
	}

	return b.String()
}

func (e ResolutionError) Unwrap() error {
	return e.Cause
}

// findSimilarTypes finds types with similar names using a simple substring match
func findSimilarTypes(target reflect.Type, available []reflect.Type) []reflect.Type {
	if target == nil || len(available) == 0 {
		return nil
	}

	targetName := strings.ToLower(target.String())
	targetShortName := strings.ToLower(target.Name())
	if targetShortName == "" {
		targetShortName = strings.ToLower(strings.TrimLeft(target.String(), "*[]"))
		if i := strings.LastIndex(targetShortName, "."); i >= 0 {
			targetShortName = targetShortName[i+1:]
		}
	}

	var similar []reflect.Type
	for _, t := range available {
		if t == nil || t == target {
			continue
		}

		typeName := strings.ToLower(t.String())
		shortName := strings.ToLower(t.Name())
		if strings.Contains(typeName, targetShortName) || (shortName != "" && strings.Contains(targetName, shortName)) {
			similar = append(similar, t)
		}

		if len(similar) >= 5 {
			break
		}
	}

	return similar
}

// RegistrationError wraps errors during service registration.
type RegistrationError struct {
	ServiceType reflect.Type
	Operation   string // "register", "create-descriptor", "validate-descriptor"
	Cause       error
}

func (e RegistrationError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, formatType(e.ServiceType), e.Cause)
}

func (e RegistrationError) Unwrap() error {
	return e.Cause
}

// ModuleError wraps errors from module registration.
type ModuleError struct {
	Module string
	Cause  error
}

func (e ModuleError) Error() string {
	return fmt.Sprintf("module %q: %v", e.Module, e.Cause)
}

func (e ModuleError) Unwrap() error {
	return e.Cause
}

// TypeMismatchError indicates a resolved instance does not have the requested type.
type TypeMismatchError struct {
	Expected reflect.Type
	Actual   reflect.Type
	Context  string
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Context, formatType(e.Expected), formatType(e.Actual))
}

// ConstructorInvocationError wraps an error returned by a factory.
type ConstructorInvocationError struct {
	ServiceType reflect.Type
	ServiceKey  any
	Cause       error
}

func (e ConstructorInvocationError) Error() string {
	if e.ServiceKey != nil {
		return fmt.Sprintf("factory for %s (name: %v) failed: %v", formatType(e.ServiceType), e.ServiceKey, e.Cause)
	}
	return fmt.Sprintf("factory for %s failed: %v", formatType(e.ServiceType), e.Cause)
}

func (e ConstructorInvocationError) Unwrap() error {
	return e.Cause
}

// ConstructorPanicError indicates a factory panicked during invocation.
// It captures the panic value and stack trace for debugging.
type ConstructorPanicError struct {
	ServiceType reflect.Type
	Panic       any
	Stack       []byte
}

func (e ConstructorPanicError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("factory for %s panicked: %v\n", formatType(e.ServiceType), e.Panic))

	b.WriteString("\nFactories should only wire dependencies - avoid operations that can panic.\n")

	if len(e.Stack) > 0 {
		b.WriteString("\nStack trace:\n")
		b.Write(e.Stack)
	}

	return b.String()
}

// BuildError wraps errors that occur during provider building
type BuildError struct {
	Phase   string // "validation", "singleton-creation"
	Details string
	Cause   error
}

func (e BuildError) Error() string {
	return fmt.Sprintf("build failed during %s phase: %s: %v", e.Phase, e.Details, e.Cause)
}

func (e BuildError) Unwrap() error {
	return e.Cause
}

// DisposalError aggregates disposal errors
type DisposalError struct {
	Context string // "provider", "singleton"
	Errors  []error
}

func (e DisposalError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s disposal failed: %v", e.Context, e.Errors[0])
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s disposal failed with %d errors:", e.Context, len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("\n  %d. %v", i+1, err))
	}
	return sb.String()
}

func (e DisposalError) Unwrap() []error {
	return e.Errors
}

// CircularDependencyError represents a dependency cycle found while resolving.
type CircularDependencyError struct {
	Path []string
}

func (e CircularDependencyError) Error() string {
	var b strings.Builder
	b.WriteString("circular dependency detected:\n\n")

	for i, node := range e.Path {
		b.WriteString(fmt.Sprintf("    %s\n", node))
		if i < len(e.Path)-1 {
			b.WriteString("      ↓\n")
		}
	}

	b.WriteString("\nTo resolve this:\n")
	b.WriteString("  • Use an interface to break the dependency\n")
	b.WriteString("  • Use beans.Lazy to resolve the dependency on first use\n")
	b.WriteString("  • Restructure to remove the circular relationship\n")

	return b.String()
}

// formatType formats a reflect.Type for error messages.
func formatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "*" + elem.Name()
		}
		return t.String()
	case reflect.Slice:
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "[]" + elem.Name()
		}
		return t.String()
	default:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	}
}
