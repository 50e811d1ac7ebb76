package cmds

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/reusee/scriptrt/vars"
)

var durationType = reflect.TypeFor[time.Duration]()

// parseArg converts the next argument to t. Pointer parameters are optional
// and receive a zero value when arguments are exhausted.
func parseArg(t reflect.Type, args []string) (ret reflect.Value, consumed bool, err error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			return reflect.New(t.Elem()), false, nil
		}
		elem, consumed, err := parseArg(t.Elem(), args)
		if err != nil {
			return ret, false, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, consumed, nil
	}

	if len(args) == 0 {
		return ret, false, fmt.Errorf("expecting %v argument, got nothing", t)
	}
	str := args[0]
	ret = reflect.New(t).Elem()

	if t == durationType {
		v, err := time.ParseDuration(str)
		if err != nil {
			return ret, false, fmt.Errorf("convert %s to duration: %w", str, err)
		}
		ret.SetInt(int64(v))
		return ret, true, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, false, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, false, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, false, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)
	case reflect.String:
		ret.SetString(str)
	default:
		return ret, false, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, true, nil
}
