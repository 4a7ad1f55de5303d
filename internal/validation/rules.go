package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/entity"
)

// Issue is one finding from a single check.
type Issue struct {
	Severity constants.ValidationStatus // warning or error
	Message  string
}

func errorf(format string, args ...any) *Issue {
	return &Issue{Severity: constants.ValidationError, Message: fmt.Sprintf(format, args...)}
}

func warnf(format string, args ...any) *Issue {
	return &Issue{Severity: constants.ValidationWarning, Message: fmt.Sprintf(format, args...)}
}

// fieldChecker is the compiled form of one field definition: the semantic
// type selects how the raw value decodes, and the rule table is interpreted
// against the decoded value. Built once per template version and cached.
type fieldChecker struct {
	name      string
	fieldType entity.FieldType

	pattern        *regexp.Regexp
	min, max       *float64
	minLen, maxLen *int
	format         formatFunc
	formatName     string
	recMin, recMax *float64
}

func compileField(fd entity.FieldDefinition) (*fieldChecker, error) {
	fc := &fieldChecker{
		name:      fd.Name,
		fieldType: fd.Type,
		min:       fd.Rules.Min,
		max:       fd.Rules.Max,
		minLen:    fd.Rules.MinLength,
		maxLen:    fd.Rules.MaxLength,
		recMin:    fd.Rules.RecommendedMin,
		recMax:    fd.Rules.RecommendedMax,
	}
	if fd.Rules.Pattern != "" {
		re, err := regexp.Compile(fd.Rules.Pattern)
		if err != nil {
			return nil, fmt.Errorf("field %s: bad pattern: %w", fd.Name, err)
		}
		fc.pattern = re
	}
	if fd.Rules.Format != "" {
		fn, ok := formatValidators[fd.Rules.Format]
		if !ok {
			return nil, fmt.Errorf("field %s: unknown format %q", fd.Name, fd.Rules.Format)
		}
		fc.format = fn
		fc.formatName = fd.Rules.Format
	}
	return fc, nil
}

// Check interprets the rule table against one raw value. The value has
// already been screened for presence; callers do not pass empty values.
func (fc *fieldChecker) Check(raw json.RawMessage) []Issue {
	var issues []Issue
	add := func(i *Issue) {
		if i != nil {
			issues = append(issues, *i)
		}
	}

	switch fc.fieldType {
	case entity.FieldText, entity.FieldDate:
		s, ok := decodeString(raw)
		if !ok {
			add(errorf("must be a string"))
			return issues
		}
		add(fc.checkString(s))
		if fc.fieldType == entity.FieldDate && fc.format == nil {
			add(checkISODate(s))
		}
	case entity.FieldNumber:
		n, ok := decodeNumber(raw)
		if !ok {
			add(errorf("must be a number"))
			return issues
		}
		add(fc.checkNumber(n))
	case entity.FieldBoolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			add(errorf("must be a boolean"))
		}
	case entity.FieldArray, entity.FieldTable, entity.FieldArrayOfObject:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			add(errorf("must be an array"))
			return issues
		}
		if fc.minLen != nil && len(items) < *fc.minLen {
			add(errorf("must have at least %d items", *fc.minLen))
		}
		if fc.maxLen != nil && len(items) > *fc.maxLen {
			add(errorf("must have at most %d items", *fc.maxLen))
		}
	}
	return issues
}

func (fc *fieldChecker) checkString(s string) *Issue {
	if fc.minLen != nil && utf8.RuneCountInString(s) < *fc.minLen {
		return errorf("must be at least %d characters", *fc.minLen)
	}
	if fc.maxLen != nil && utf8.RuneCountInString(s) > *fc.maxLen {
		return errorf("must be at most %d characters", *fc.maxLen)
	}
	if fc.pattern != nil && !fc.pattern.MatchString(s) {
		return errorf("does not match pattern %s", fc.pattern.String())
	}
	if fc.format != nil {
		if issue := fc.format(s); issue != nil {
			return issue
		}
	}
	return nil
}

func (fc *fieldChecker) checkNumber(n float64) *Issue {
	if fc.min != nil && n < *fc.min {
		return errorf("must be at least %v", *fc.min)
	}
	if fc.max != nil && n > *fc.max {
		return errorf("must be at most %v", *fc.max)
	}
	if fc.recMin != nil && n < *fc.recMin {
		return warnf("below recommended minimum %v", *fc.recMin)
	}
	if fc.recMax != nil && n > *fc.recMax {
		return warnf("above recommended maximum %v", *fc.recMax)
	}
	return nil
}

func checkISODate(s string) *Issue {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return errorf("must be an ISO date (YYYY-MM-DD)")
	}
	return nil
}

func decodeString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// decodeNumber accepts JSON numbers and numeric strings; providers are
// inconsistent about which they emit for money fields.
func decodeNumber(raw json.RawMessage) (float64, bool) {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isEmptyValue(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null" || trimmed == `""`
}
