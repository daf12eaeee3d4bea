// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package validation

import (
	"net/url"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return the same non-nil instance")
	}
}

func TestValidateStruct_ChartQuery(t *testing.T) {
	tests := []struct {
		name      string
		input     ChartQuery
		wantField string
		wantTag   string
	}{
		{name: "valid", input: ChartQuery{Tag: "Seafood", City: "Toronto"}},
		{name: "valid with spaces", input: ChartQuery{Tag: "Coffee & Tea", City: "Las Vegas"}},
		{name: "missing tag", input: ChartQuery{City: "Toronto"}, wantField: "tag", wantTag: "required"},
		{name: "missing city", input: ChartQuery{Tag: "Seafood"}, wantField: "city", wantTag: "required"},
		{name: "city too long", input: ChartQuery{Tag: "Seafood", City: strings.Repeat("x", 101)}, wantField: "city", wantTag: "max"},
		{name: "control characters", input: ChartQuery{Tag: "Sea\x00food", City: "Toronto"}, wantField: "tag", wantTag: "safetext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("errors = %v", errs)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("got field=%s tag=%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	verr := ValidateStruct(&CityQuery{})
	if verr == nil {
		t.Fatal("expected error")
	}
	if verr.Error() != "city is required" {
		t.Errorf("Error() = %q", verr.Error())
	}

	verr = ValidateStruct(&CategoryQuery{Limit: 501})
	if verr == nil || verr.Error() != "limit must be at most 500" {
		t.Errorf("Error() = %v", verr)
	}

	verr = ValidateStruct(&TagQuery{Tag: strings.Repeat("a", 101)})
	if verr == nil || verr.Error() != "tag must be at most 100 characters" {
		t.Errorf("Error() = %v", verr)
	}

	verr = ValidateStruct(&TagQuery{Tag: "a\nb"})
	if verr == nil || verr.Error() != "tag must not contain control characters" {
		t.Errorf("Error() = %v", verr)
	}
}

func TestToAPIError(t *testing.T) {
	single := ValidateStruct(&TagQuery{}).ToAPIError()
	if single.Code != "VALIDATION_ERROR" || single.Details["field"] != "tag" {
		t.Errorf("single = %+v", single)
	}

	multi := ValidateStruct(&ChartQuery{}).ToAPIError()
	if !strings.Contains(multi.Message, "tag: tag is required") || !strings.Contains(multi.Message, "city: city is required") {
		t.Errorf("multi message = %q", multi.Message)
	}
	fields, ok := multi.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("multi details = %+v", multi.Details)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty = %+v", empty)
	}
}

func TestCategoryQuery(t *testing.T) {
	if verr := ValidateStruct(&CategoryQuery{Limit: DefaultCategories}); verr != nil {
		t.Errorf("default query invalid: %v", verr)
	}
	if verr := ValidateStruct(&CategoryQuery{Limit: 0}); verr == nil {
		t.Error("limit 0 should be rejected")
	}
}

func TestValidateStruct_RuleMessages(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"int min has no unit", &CategoryQuery{Limit: 0}, "limit must be at least 1"},
		{"string max has unit", &CategoryQuery{Search: strings.Repeat("s", 101), Limit: 50}, "q must be at most 100 characters"},
		{"unrendered rule", &struct {
			Email string `query:"email" validate:"email"`
		}{Email: "nope"}, "email failed email validation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if verr == nil || verr.Error() != tt.want {
				t.Errorf("Error() = %v, want %q", verr, tt.want)
			}
		})
	}

	if verr := ValidateStruct("not a struct"); verr == nil || verr.Errors()[0].Tag() != "struct" {
		t.Errorf("non-struct input = %v", verr)
	}
}

func TestParamHelpers(t *testing.T) {
	q := url.Values{}
	q.Set("tag", "  Sushi Bars ")
	q.Set("blank", "   ")
	q.Set("allow_empty", "true")
	q.Set("limit", "25")
	q.Set("bad", "abc")

	if got := Text(q, "tag", "Seafood"); got != "Sushi Bars" {
		t.Errorf("Text(tag) = %q", got)
	}
	if got := Text(q, "blank", "Seafood"); got != "Seafood" {
		t.Errorf("Text(blank) = %q", got)
	}
	if got := Text(q, "missing", "Toronto"); got != "Toronto" {
		t.Errorf("Text(missing) = %q", got)
	}
	if !Flag(q, "allow_empty") || Flag(q, "missing") || Flag(q, "tag") {
		t.Error("Flag() parsing wrong")
	}
	if Int(q, "limit", 50) != 25 || Int(q, "missing", 50) != 50 || Int(q, "bad", 50) != -1 {
		t.Error("Int() parsing wrong")
	}
}
