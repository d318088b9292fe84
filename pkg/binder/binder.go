package binder

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

var (
	ErrNotApplicable        = errors.New("binder not applicable to request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("failed to parse form data")
	ErrInvalidSignals       = errors.New("failed to read datastar signals")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil pointer to struct")
)

// DefaultMaxMemory bounds the in-memory part of a multipart body.
const DefaultMaxMemory = 10 << 20

// Func is the shape of every binder.
type Func func(r *http.Request, v any) error

// Form binds form values and uploaded files. maxMemory <= 0 means DefaultMaxMemory.
func Form(maxMemory int64) Func {
	if maxMemory <= 0 {
		maxMemory = DefaultMaxMemory
	}
	return func(r *http.Request, v any) error {
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			return ErrNotApplicable
		}

		var (
			values map[string][]string
			files  map[string][]*multipart.FileHeader
		)
		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return errors.Join(ErrInvalidForm, err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(maxMemory); err != nil {
				return errors.Join(ErrInvalidForm, err)
			}
			values, files = r.MultipartForm.Value, r.MultipartForm.File
		default:
			return ErrNotApplicable
		}
		return bindStruct(v, values, files)
	}
}

// Signals binds the datastar signal payload: the datastar query parameter
// on GET, the JSON body otherwise.
func Signals() Func {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet {
			if !r.URL.Query().Has("datastar") {
				return ErrNotApplicable
			}
		} else if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			return ErrNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrInvalidSignals, err)
		}
		return nil
	}
}

func bindStruct(v any, values map[string][]string, files map[string][]*multipart.FileHeader) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		field, sf := rv.Field(i), rt.Field(i)
		if !field.CanSet() {
			continue
		}
		if name := tagName(sf, "form"); name != "" {
			if vals := values[name]; len(vals) > 0 {
				if err := setString(field, vals); err != nil {
					return fmt.Errorf("%w: field %s: %v", ErrInvalidForm, sf.Name, err)
				}
			}
		}
		if name := tagName(sf, "file"); name != "" {
			if fhs := files[name]; len(fhs) > 0 {
				if err := setFiles(field, fhs); err != nil {
					return fmt.Errorf("%w: field %s: %v", ErrInvalidForm, sf.Name, err)
				}
			}
		}
	}
	return nil
}

func tagName(sf reflect.StructField, key string) string {
	name, _, _ := strings.Cut(sf.Tag.Get(key), ",")
	if name == "-" {
		return ""
	}
	return name
}

var (
	stringType     = reflect.TypeFor[string]()
	fileHeaderType = reflect.TypeFor[*multipart.FileHeader]()
)

// setString assigns raw form text. Only string and []string fields are
// supported: validation runs on the raw values.
func setString(field reflect.Value, vals []string) error {
	switch {
	case field.Type() == stringType:
		field.SetString(vals[0])
	case field.Kind() == reflect.Slice && field.Type().Elem() == stringType:
		field.Set(reflect.ValueOf(append([]string(nil), vals...)))
	default:
		return fmt.Errorf("unsupported form field type %s", field.Type())
	}
	return nil
}

func setFiles(field reflect.Value, fhs []*multipart.FileHeader) error {
	for _, fh := range fhs {
		fh.Filename = SanitizeFilename(fh.Filename)
	}
	switch {
	case field.Type() == fileHeaderType:
		field.Set(reflect.ValueOf(fhs[0]))
	case field.Kind() == reflect.Slice && field.Type().Elem() == fileHeaderType:
		field.Set(reflect.ValueOf(append([]*multipart.FileHeader(nil), fhs...)))
	default:
		return fmt.Errorf("unsupported file field type %s", field.Type())
	}
	return nil
}

// SanitizeFilename strips directories and NUL bytes from a client file name.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.ReplaceAll(filepath.Base(name), "\x00", "")
	switch name {
	case "", ".", "..", "/":
		return "unnamed"
	}
	return name
}
