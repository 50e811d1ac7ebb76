package faults

import (
	"errors"
	"fmt"
	"strings"
)

// Keys of Fault.Data, shared with the script-level exception object.
const (
	DataTypeName   = "exName"
	DataMessage    = "exMessage"
	DataObject     = "exObject"
	DataObjectType = "exObjectType"
	DataException  = "exception"
	DataStackTrace = "stackTrace"

	// field names looked up in script-defined exception values
	FieldName    = "Name"
	FieldMessage = "Message"
)

const (
	ExitOK = iota
	ExitFault
	ExitCanceled
	ExitForciblyCanceled
)

func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	f, ok := As(err)
	if !ok || f.Kind != KindCancellation {
		return ExitFault
	}
	if f.Mode == Forced {
		return ExitForciblyCanceled
	}
	return ExitCanceled
}

// Render formats err for the top level. Faults with script-level metadata
// show the script's exception name and message; anything else shows its kind
// and message followed by the cause chain.
func Render(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder

	f, isFault := As(err)
	if isFault && f.Data != nil && hasKey(f.Data, DataTypeName) {
		b.WriteString(stringOr(f.Data[DataTypeName], "Null_exception_name"))
		b.WriteString(": ")
		b.WriteString(stringOr(f.Data[DataMessage], "Null_exception_message"))
		b.WriteString("\n")
	} else {
		b.WriteString(nameOf(err))
		b.WriteString(": ")
		b.WriteString(err.Error())
		for inner := errors.Unwrap(err); inner != nil; inner = errors.Unwrap(inner) {
			b.WriteString(" ---> ")
			b.WriteString(nameOf(inner))
			b.WriteString(": ")
			b.WriteString(inner.Error())
		}
		b.WriteString("\n")
	}

	if isFault && f.Data != nil {
		if stack, ok := f.Data[DataStackTrace]; ok && stack != nil {
			b.WriteString(fmt.Sprint(stack))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func nameOf(err error) string {
	if f, ok := err.(*Fault); ok {
		return f.Name()
	}
	return fmt.Sprintf("%T", err)
}

func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func stringOr(v any, fallback string) string {
	if v == nil {
		return fallback
	}
	return fmt.Sprint(v)
}
