package faults

import (
	"errors"
	"fmt"

	"github.com/reusee/e5"
	"github.com/reusee/scriptrt/locs"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindLoading
	KindExecution
	KindUserThrown
	KindInvalidRefArgument
	KindCancellation
	KindFinalization
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "LoadingFault"
	case KindExecution:
		return "ExecutionFault"
	case KindUserThrown:
		return "UserThrownFault"
	case KindInvalidRefArgument:
		return "InvalidReferenceArgument"
	case KindCancellation:
		return "Cancellation"
	case KindFinalization:
		return "FinalizationFailure"
	}
	return "UnknownFault"
}

// Mode classifies a cancellation.
type Mode uint8

const (
	Cooperative Mode = iota
	Forced
)

func (m Mode) String() string {
	if m == Forced {
		return "forced"
	}
	return "cooperative"
}

const (
	canceledMessage         = "executing is canceled"
	forciblyCanceledMessage = "executing is forcibly canceled"
)

// Fault is the only error value that leaves an execution.
type Fault struct {
	Kind    Kind
	Message string

	// Value is the script value of a UserThrown fault.
	Value any

	// Mode is set for KindCancellation.
	Mode Mode

	// Cause is the fault being unwound for KindFinalization, or the host
	// error behind an ExecutionFault.
	Cause error

	// Cleanup is the failure of the finalization step.
	Cleanup error

	// Data holds script-level exception metadata, see the Data* keys.
	Data map[string]any
}

var _ error = new(Fault)

func (f *Fault) Error() string {
	return f.Message
}

func (f *Fault) Unwrap() error {
	return f.Cause
}

// Name is the kind name shown to users.
func (f *Fault) Name() string {
	if f.Kind == KindCancellation {
		if f.Mode == Forced {
			return "ForcedCancellation"
		}
		return "CooperativeCancellation"
	}
	return f.Kind.String()
}

func Loading(r locs.Resolver, msg string) *Fault {
	return &Fault{
		Kind:    KindLoading,
		Message: locs.Restore(msg, r),
	}
}

func Execution(r locs.Resolver, msg string) *Fault {
	return &Fault{
		Kind:    KindExecution,
		Message: locs.Restore(msg, r),
	}
}

func InvalidRefArgument(r locs.Resolver, msg string) *Fault {
	return &Fault{
		Kind:    KindInvalidRefArgument,
		Message: locs.Restore(msg, r),
	}
}

// UserThrown carries a script value verbatim. If data has a message it is
// used as the fault message.
func UserThrown(value any, data map[string]any) *Fault {
	msg, ok := data[DataMessage].(string)
	if !ok {
		msg = fmt.Sprint(value)
	}
	return &Fault{
		Kind:    KindUserThrown,
		Message: msg,
		Value:   value,
		Data:    data,
	}
}

func Canceled(forced bool, msg string) *Fault {
	f := &Fault{
		Kind:    KindCancellation,
		Message: msg,
	}
	if forced {
		f.Mode = Forced
		if f.Message == "" {
			f.Message = forciblyCanceledMessage
		}
	} else if f.Message == "" {
		f.Message = canceledMessage
	}
	return f
}

// Finalization reports a cleanup failure that happened while unwinding from
// cause. cause is kept as is.
func Finalization(cause error, cleanup error) *Fault {
	return &Fault{
		Kind:    KindFinalization,
		Message: fmt.Sprintf("finalization failed: %v (after: %v)", cleanup, cause),
		Cause:   cause,
		Cleanup: cleanup,
	}
}

// Wrap turns a host error into an ExecutionFault. A fault found in the
// chain of err is returned instead.
func Wrap(r locs.Resolver, err error) error {
	if err == nil {
		return nil
	}
	var f *Fault
	if errors.As(err, &f) {
		return f
	}
	return &Fault{
		Kind:    KindExecution,
		Message: locs.Restore(err.Error(), r),
		Cause:   wrap(err),
	}
}

func As(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func KindOf(err error) Kind {
	if f, ok := As(err); ok {
		return f.Kind
	}
	return KindUnknown
}

func IsCancellation(err error) bool {
	return KindOf(err) == KindCancellation
}

func IsForced(err error) bool {
	f, ok := As(err)
	return ok && f.Kind == KindCancellation && f.Mode == Forced
}
