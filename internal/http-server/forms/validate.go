package forms

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ajg/form"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var phoneRe = regexp.MustCompile(`^\(?[0-9]{3}\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)

// StartTimeLayouts are tried in order when parsing a show start time.
var StartTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "us_state", func(fl validator.FieldLevel) bool {
		return slices.Contains(States, fl.Field().String())
	})
	mustRegister(v, "genre", func(fl validator.FieldLevel) bool {
		return slices.Contains(Genres, fl.Field().String())
	})
	mustRegister(v, "start_time", func(fl validator.FieldLevel) bool {
		_, err := ParseStartTime(fl.Field().String())
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// listKeys are form fields posted once per selected option.
var listKeys = []string{"genres"}

// Decode reads a urlencoded form body into dst, or JSON for any other
// content type.
func Decode(r *http.Request, dst any) error {
	if render.GetRequestContentType(r) != render.ContentTypeForm {
		return render.DecodeJSON(r.Body, dst)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}

	d := form.NewDecoder(nil)
	d.IgnoreUnknownKeys(true)

	return d.DecodeValues(dst, indexLists(r.PostForm))
}

// indexLists rewrites repeated multi-select keys into the ordinal
// notation (genres.0, genres.1) the form decoder maps onto slices.
func indexLists(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for key, vs := range values {
		if !slices.Contains(listKeys, key) {
			out.Set(key, vs[0])
			continue
		}
		for i, v := range vs {
			out.Set(key+"."+strconv.Itoa(i), v)
		}
	}
	return out
}

// Validate returns validator.ValidationErrors when a field is rejected.
func Validate(f any) error {
	return validate.Struct(f)
}

func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range StartTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported start time %q", s)
}
