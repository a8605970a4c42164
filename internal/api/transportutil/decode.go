package transportutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/api/apierrors"
	"github.com/reporemover/reporemover-api/internal/api/endpointutil"
)

// Request structs are wrappers of pointers to part structs, e.g.
//
//	type ListRequest struct {
//		Page *request.Page
//	}
//
// Fields of a part are tagged `request:"name,source,required|optional"`,
// source is one of urlPart, urlParam or header. A part without request tags
// is decoded from the JSON body. An empty name means the lowercased field name.
type fieldSource string

const (
	sourceURLPart  fieldSource = "urlPart"
	sourceURLParam fieldSource = "urlParam"
	sourceHeader   fieldSource = "header"
	sourceBody     fieldSource = "body"
)

type fieldSpec struct {
	index    []int
	name     string
	source   fieldSource
	required bool
}

type partSpec struct {
	fromBody bool
	fields   []fieldSpec
}

var partSpecs sync.Map // reflect.Type -> *partSpec

func parseFieldSpec(rf reflect.StructField) (*fieldSpec, error) {
	tag, ok := rf.Tag.Lookup("request")
	if !ok {
		return &fieldSpec{index: rf.Index, source: sourceBody}, nil
	}

	parts := strings.Split(tag, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("bad request tag %q of %s", tag, rf.Name)
	}

	fs := fieldSpec{
		index: rf.Index,
		name:  strings.ToLower(parts[0]),
	}
	if fs.name == "" {
		fs.name = strings.ToLower(rf.Name)
	}

	switch s := fieldSource(parts[1]); s {
	case sourceURLPart, sourceURLParam, sourceHeader:
		fs.source = s
	default:
		return nil, fmt.Errorf("bad source %q of %s", parts[1], rf.Name)
	}

	switch parts[2] {
	case "", "required":
		fs.required = true
	case "optional":
	default:
		return nil, fmt.Errorf("bad requiredness %q of %s", parts[2], rf.Name)
	}

	return &fs, nil
}

func collectFieldSpecs(t reflect.Type, parentIndex []int) ([]fieldSpec, error) {
	var ret []fieldSpec
	for i := 0; i < t.NumField(); i++ {
		rf := t.Field(i)
		rf.Index = append(append([]int{}, parentIndex...), rf.Index...)

		if rf.Anonymous && rf.Type.Kind() == reflect.Struct {
			embedded, err := collectFieldSpecs(rf.Type, rf.Index)
			if err != nil {
				return nil, err
			}
			ret = append(ret, embedded...)
			continue
		}

		fs, err := parseFieldSpec(rf)
		if err != nil {
			return nil, err
		}
		ret = append(ret, *fs)
	}

	return ret, nil
}

func getPartSpec(t reflect.Type) (*partSpec, error) {
	if cached, ok := partSpecs.Load(t); ok {
		return cached.(*partSpec), nil
	}

	fields, err := collectFieldSpecs(t, nil)
	if err != nil {
		return nil, err
	}

	ps := partSpec{fields: fields}
	if len(fields) != 0 {
		ps.fromBody = fields[0].source == sourceBody
		for _, f := range fields {
			if (f.source == sourceBody) != ps.fromBody {
				return nil, fmt.Errorf("%s mixes body and non-body fields", t)
			}
		}
	}

	partSpecs.Store(t, &ps)
	return &ps, nil
}

func DecodeRequest(request interface{}, r *http.Request) error {
	val := reflect.ValueOf(request)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("invalid request type %T, pointer to struct expected", request)
	}
	val = val.Elem()

	for i := 0; i < val.NumField(); i++ {
		f := val.Field(i)
		if !f.CanSet() {
			continue
		}

		if err := decodePart(f, r); err != nil {
			return apierrors.NewBadRequestError("can't decode request field %s: %s",
				val.Type().Field(i).Name, err)
		}
	}

	return nil
}

func decodePart(f reflect.Value, r *http.Request) error {
	if f.Kind() != reflect.Ptr || f.Type().Elem().Kind() != reflect.Struct {
		return fmt.Errorf("invalid part type %s, pointer to struct expected", f.Type())
	}

	ps, err := getPartSpec(f.Type().Elem())
	if err != nil {
		return err
	}

	part := reflect.New(f.Type().Elem())
	f.Set(part)

	if len(ps.fields) == 0 {
		return nil
	}

	if ps.fromBody {
		return errors.Wrap(decodeBody(part.Interface(), r), "can't decode from body")
	}

	return errors.Wrap(decodeFields(part.Elem(), ps.fields, r), "can't decode from url")
}

func decodeBody(dest interface{}, r *http.Request) error {
	if r.Body == nil {
		return errors.New("no request body")
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return errors.Wrap(err, "invalid payload json")
	}

	return nil
}

func lookupValue(source fieldSource, name string, r *http.Request) string {
	switch source {
	case sourceURLPart:
		return mux.Vars(r)[name]
	case sourceURLParam:
		return r.URL.Query().Get(name)
	case sourceHeader:
		return r.Header.Get(name)
	}

	return ""
}

func decodeFields(part reflect.Value, fields []fieldSpec, r *http.Request) error {
	for _, fs := range fields {
		s := lookupValue(fs.source, fs.name, r)
		if s == "" {
			if fs.required {
				return fmt.Errorf("no required %s %s", fs.source, fs.name)
			}
			continue
		}

		if err := setFromString(part.FieldByIndex(fs.index), s); err != nil {
			return errors.Wrapf(err, "bad %s %s=%q", fs.source, fs.name, s)
		}
	}

	return nil
}

func setFromString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", v.Kind())
	}

	return nil
}

// Decode decodes the request unless its context initialization has failed:
// the failure is returned then so authorization errors win over bad input.
func Decode(ctx context.Context, request interface{}, r *http.Request) error {
	if err := endpointutil.Error(ctx); err != nil {
		return err
	}

	return DecodeRequest(request, r)
}
