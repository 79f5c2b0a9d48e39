package schema

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	appErrors "github.com/gyd-platform/department-api/pkg/errors"
)

// DateLayout is the on-the-wire calendar date format.
const DateLayout = "2006-01-02"

// Validate checks a full create payload against the definition: required
// fields present, types and ranges respected, enum membership enforced and
// defaults applied. The returned map holds store-ready values (dates as UTC
// midnight time.Time) and is safe to insert as a document. On any violation
// it fails with a validation error enumerating every offending field.
func (d Definition) Validate(payload map[string]interface{}) (map[string]interface{}, error) {
	doc := make(map[string]interface{}, len(d.Fields))
	var violations []string

	for name := range payload {
		if _, ok := d.field(name); !ok {
			violations = append(violations, fmt.Sprintf("%s: unknown field", name))
		}
	}

	for _, f := range d.Fields {
		raw, present := payload[f.Name]
		if !present || raw == nil {
			if f.Required {
				violations = append(violations, fmt.Sprintf("%s: field required", f.Name))
				continue
			}
			if f.Default != nil {
				doc[f.Name] = f.Default
			}
			continue
		}

		value, err := f.coerce(raw)
		if err != nil {
			violations = append(violations, fmt.Sprintf("%s: %s", f.Name, err))
			continue
		}
		doc[f.Name] = value
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		return nil, appErrors.Clone(appErrors.ErrValidation, strings.Join(violations, "; "))
	}
	return doc, nil
}

// ValidatePartial checks an update payload. Every present non-null field is
// validated as on create; required flags and defaults do not apply. A payload
// with zero usable fields is rejected.
func (d Definition) ValidatePartial(payload map[string]interface{}) (map[string]interface{}, error) {
	doc := make(map[string]interface{}, len(payload))
	var violations []string

	for name, raw := range payload {
		f, ok := d.field(name)
		if !ok {
			violations = append(violations, fmt.Sprintf("%s: unknown field", name))
			continue
		}
		if raw == nil {
			continue
		}
		value, err := f.coerce(raw)
		if err != nil {
			violations = append(violations, fmt.Sprintf("%s: %s", name, err))
			continue
		}
		doc[name] = value
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		return nil, appErrors.Clone(appErrors.ErrValidation, strings.Join(violations, "; "))
	}
	if len(doc) == 0 {
		return nil, appErrors.Clone(appErrors.ErrBadRequest, "no fields to update")
	}
	return doc, nil
}

// coerce converts a decoded JSON value into its store representation,
// enforcing the field's type and constraints.
func (f Field) coerce(raw interface{}) (interface{}, error) {
	switch f.Type {
	case TypeInteger:
		n, err := toInt(raw)
		if err != nil {
			return nil, err
		}
		if f.Min != nil && n < *f.Min {
			return nil, fmt.Errorf("must be between %d and %d", *f.Min, *f.Max)
		}
		if f.Max != nil && n > *f.Max {
			return nil, fmt.Errorf("must be between %d and %d", *f.Min, *f.Max)
		}
		return n, nil

	case TypeDate:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a date string (YYYY-MM-DD)")
		}
		t, err := time.ParseInLocation(DateLayout, s, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid date, expected YYYY-MM-DD")
		}
		return t, nil

	default:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string")
		}
		if len(f.Enum) > 0 && !contains(f.Enum, s) {
			return nil, fmt.Errorf("must be one of %s", strings.Join(f.Enum, ", "))
		}
		return s, nil
	}
}

// toInt accepts the numeric shapes a decoded JSON payload can produce.
// Fractional values are rejected rather than truncated.
func toInt(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("expected an integer")
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("expected an integer")
	}
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
