// Package validate checks form input against `validate` struct tags and
// reports failures with Laravel-style messages.
//
// Rules (comma-separated):
//
//	required      field must not be zero/empty
//	nullable      if empty, skip all remaining rules for this field
//	email         something@domain.tld with no whitespace
//	min=N         string: min char length | number: min value
//	max=N         string: max char length | number: max value
//	in=a,b,c      value must be one of the listed items
//	regex=pattern value must match the regex (avoid commas in pattern)
//
// Example:
//
//	type SignUp struct {
//	    Name     string `json:"name"     validate:"required,max=100"`
//	    Email    string `json:"email"    validate:"required,email"`
//	    Password string `json:"password" validate:"required,min=6"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// check returns a message when value fails the rule, "" when it passes.
type check func(field, param string, value reflect.Value) string

var checks = map[string]check{
	"required": func(field, _ string, v reflect.Value) string {
		if empty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
		return ""
	},
	"email": func(field, _ string, v reflect.Value) string {
		if !Email(text(v)) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
		return ""
	},
	"min": func(field, param string, v reflect.Value) string {
		limit := bound(param)
		if n, ok := number(v); ok {
			if n < limit {
				return fmt.Sprintf("The %s must be at least %s.", field, param)
			}
		} else if runes(v) < limit {
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		}
		return ""
	},
	"max": func(field, param string, v reflect.Value) string {
		limit := bound(param)
		if n, ok := number(v); ok {
			if n > limit {
				return fmt.Sprintf("The %s must not be greater than %s.", field, param)
			}
		} else if runes(v) > limit {
			return fmt.Sprintf("The %s must not exceed %s characters.", field, param)
		}
		return ""
	},
	"in": func(field, param string, v reflect.Value) string {
		s := text(v)
		for _, allowed := range strings.Split(param, ",") {
			if s == strings.TrimSpace(allowed) {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	},
	"regex": func(field, param string, v reflect.Value) string {
		re, err := regexp.Compile(param)
		if err != nil {
			return fmt.Sprintf("The %s has an invalid validation pattern.", field)
		}
		if !re.MatchString(text(v)) {
			return fmt.Sprintf("The %s format is invalid.", field)
		}
		return ""
	},
}

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like an email address.
func Email(s string) bool { return emailRE.MatchString(s) }

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

// Struct validates all exported fields of v that carry a `validate` tag and
// returns field name → first failing message. An empty map means v is valid.
func Struct(v interface{}) map[string]string {
	errs := map[string]string{}

	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return errs
	}

	for _, f := range reflect.VisibleFields(rv.Type()) {
		tag, ok := f.Tag.Lookup("validate")
		if !ok || !f.IsExported() || len(f.Index) > 1 {
			continue
		}
		value := rv.Field(f.Index[0])
		name := fieldName(f)

		rules := parseRules(tag)
		if _, nullable := rules.find("nullable"); nullable && empty(value) {
			continue
		}
		for _, r := range rules {
			c, known := checks[r.name]
			if !known {
				continue
			}
			if msg := c(name, r.param, value); msg != "" {
				errs[name] = msg
				break
			}
		}
	}
	return errs
}

type rule struct {
	name  string
	param string
}

type ruleList []rule

func (l ruleList) find(name string) (rule, bool) {
	for _, r := range l {
		if r.name == name {
			return r, true
		}
	}
	return rule{}, false
}

// parseRules splits a tag on commas, keeping the list of an in= rule
// together: "required,in=upi,card,cod,max=10" gives required, in=upi,card,cod
// and max=10.
func parseRules(tag string) ruleList {
	var out ruleList
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].name == "in" && !startsRule(part) {
			out[n-1].param += "," + part
			continue
		}
		name, param, _ := strings.Cut(part, "=")
		out = append(out, rule{name: name, param: param})
	}
	return out
}

func startsRule(part string) bool {
	name, _, _ := strings.Cut(part, "=")
	if name == "nullable" {
		return true
	}
	_, known := checks[name]
	return known
}

func fieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	return name
}

func empty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	}
	if n, ok := number(v); ok {
		return n == 0
	}
	return false
}

// number returns v as a float64 when v is any integer or float kind.
func number(v reflect.Value) (float64, bool) {
	switch {
	case v.CanInt():
		return float64(v.Int()), true
	case v.CanUint():
		return float64(v.Uint()), true
	case v.CanFloat():
		return v.Float(), true
	}
	return 0, false
}

func text(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return v.String()
	}
	return fmt.Sprint(v.Interface())
}

func runes(v reflect.Value) float64 {
	return float64(len([]rune(text(v))))
}

func bound(param string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(param), 64)
	return f
}
