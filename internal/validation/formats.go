package validation

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

type formatFunc func(s string) *Issue

var (
	reEmail    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	rePhone    = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]{6,19}$`)
	rePostal   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 \-]{2,9}$`)
	reCurrency = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Named format validators referenced by RuleSpec.Format.
var formatValidators = map[string]formatFunc{
	"email":       formatEmail,
	"phone":       formatPhone,
	"url":         formatURL,
	"postal_code": formatPostalCode,
	"currency":    formatCurrency,
	"iso_date":    formatISODate,
}

func formatEmail(s string) *Issue {
	if !reEmail.MatchString(strings.TrimSpace(s)) {
		return errorf("must be a valid email address")
	}
	return nil
}

func formatPhone(s string) *Issue {
	if !rePhone.MatchString(strings.TrimSpace(s)) {
		return errorf("must be a valid phone number")
	}
	return nil
}

func formatURL(s string) *Issue {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errorf("must be a valid URL")
	}
	return nil
}

func formatPostalCode(s string) *Issue {
	if !rePostal.MatchString(strings.TrimSpace(s)) {
		return errorf("must be a valid postal code")
	}
	return nil
}

// ISO 4217: 3 uppercase letters
func formatCurrency(s string) *Issue {
	if !reCurrency.MatchString(strings.TrimSpace(s)) {
		return errorf("must be a 3-letter ISO 4217 currency code")
	}
	return nil
}

func formatISODate(s string) *Issue {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return errorf("must be an ISO date (YYYY-MM-DD)")
	}
	return nil
}
