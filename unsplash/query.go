package unsplash

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// EncodeQuery renders a parameter struct as a URL query fragment.
//
// Exported fields tagged `url:"name"` are emitted as percent-encoded
// name=value pairs in declaration order. Pointer fields represent optional
// parameters: nil pointers are skipped. If no field is present the result is
// the empty string; otherwise it starts with '?' and pairs are joined by '&'.
//
// Encoding cannot fail. A nil or non-struct value encodes to the empty
// string, so endpoints without parameters can pass nil.
//
// url.Values is not used here on purpose: its Encode sorts keys
// alphabetically, while the wire contract keeps declaration order.
func EncodeQuery(params any) string {
	if params == nil {
		return ""
	}

	v := reflect.ValueOf(params)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}

	var b strings.Builder
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("url")
		if name == "" || name == "-" {
			continue
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}

		if b.Len() == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fmt.Sprint(fv.Interface())))
	}

	return b.String()
}
