package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorHelpersSeeThroughWrapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		is   func(error) bool
	}{
		{"not found", NotFoundError{Resource: "trip"}, IsNotFound},
		{"validation", ValidationError{Field: "country", Msg: "required"}, IsValidation},
		{"form", FormErrors{"name": {"This field is required."}}, IsFormInvalid},
		{"conflict", ConflictError{Resource: "user"}, IsConflict},
		{"unauthorized", UnauthorizedError{}, IsUnauthorized},
		{"internal", InternalError{Err: errors.New("boom")}, IsInternal},
	}
	for _, tc := range cases {
		wrapped := fmt.Errorf("handler: %w", tc.err)
		if !tc.is(wrapped) {
			t.Fatalf("%s: helper did not match wrapped error", tc.name)
		}
		if IsNotFound(tc.err) != (tc.name == "not found") {
			t.Fatalf("%s: IsNotFound mismatch", tc.name)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	if got := (NotFoundError{Resource: "trip"}).Error(); got != "trip not found" {
		t.Fatalf("NotFoundError = %q", got)
	}
	if got := (ValidationError{Field: "origin", Msg: "required"}).Error(); got != "origin: required" {
		t.Fatalf("ValidationError = %q", got)
	}
	if got := (ValidationError{Field: "origin"}).Error(); got != "invalid origin" {
		t.Fatalf("ValidationError field only = %q", got)
	}
	if got := (ConflictError{Resource: "user", Msg: "taken"}).Error(); got != "user conflict: taken" {
		t.Fatalf("ConflictError = %q", got)
	}
	if got := (InternalError{Err: errors.New("boom")}).Error(); got != "internal error: boom" {
		t.Fatalf("InternalError = %q", got)
	}
}

func TestFormErrors(t *testing.T) {
	fe := FormErrors{}
	if !fe.Empty() {
		t.Fatalf("new FormErrors should be empty")
	}
	fe.Add("itinerary", "Select a valid choice.")
	fe.Add("country", "This field is required.")
	fe.Add("country", "Another.")

	if !fe.Has("country") || fe.Has("name") {
		t.Fatalf("Has mismatch: %v", fe)
	}
	want := "country: This field is required. Another.; itinerary: Select a valid choice."
	if got := fe.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestRequestContext(t *testing.T) {
	if (RequestContext{}).Authenticated() {
		t.Fatalf("zero context must not be authenticated")
	}
	rc := RequestContext{UserID: 3, Role: RoleAdmin}
	if !rc.Authenticated() || !rc.IsAdmin() {
		t.Fatalf("admin context not recognised: %+v", rc)
	}
	if (RequestContext{UserID: 3, Role: RoleUser}).IsAdmin() {
		t.Fatalf("user must not be admin")
	}
}
