package validation

import (
	"strings"
	"time"

	"blog-api/models"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ValidateSearch checks the raw /v1/search query values and builds the
// repository filter. Tag names follow the same alphanumeric rule as post
// creation; dates accept a plain day or RFC 3339.
func ValidateSearch(params models.SearchParams) (*models.SearchFilter, error) {
	filter := &models.SearchFilter{Title: params.Title}

	if params.Tags != "" {
		for _, name := range strings.Split(params.Tags, ",") {
			if !Alphanumeric(name) {
				return nil, models.NewValidationError("Bad param `tags`")
			}
			filter.Tags = append(filter.Tags, name)
		}
	}

	if params.DateBegin != "" {
		t, err := parseDate(params.DateBegin)
		if err != nil {
			return nil, models.NewValidationError("Bad param `date_begin`")
		}
		filter.DateBegin = &t
	}
	if params.DateEnd != "" {
		t, err := parseDate(params.DateEnd)
		if err != nil {
			return nil, models.NewValidationError("Bad param `date_end`")
		}
		filter.DateEnd = &t
	}

	return filter, nil
}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
