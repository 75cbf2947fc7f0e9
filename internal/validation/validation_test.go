package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devanap/fabrismart-full/internal/errs"
	"github.com/labstack/echo/v4"
)

type signupRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,emailshape"`
}

func (r *signupRequest) Sanitize() {
	r.Name = CleanString(r.Name)
	r.Email = CleanEmail(r.Email)
}

func (r *signupRequest) Validate() error {
	return Struct(r)
}

func bind(t *testing.T, body string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	return BindAndValidate(c, &signupRequest{})
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantError string
		wantOK    bool
	}{
		{name: "valid after cleaning", body: `{"name":"  Ana ","email":" ANA@Corp.com "}`, wantOK: true},
		{name: "missing name", body: `{"email":"ana@corp.com"}`, wantField: "name", wantError: "is required"},
		{name: "bad email", body: `{"name":"Ana","email":"ana@corp"}`, wantField: "email", wantError: "must be a valid email address"},
		{name: "whitespace only name", body: `{"name":"   ","email":"ana@corp.com"}`, wantField: "name", wantError: "is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bind(t, tt.body)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			httpErr, ok := err.(*errs.HTTPError)
			if !ok || httpErr.Status != http.StatusBadRequest {
				t.Fatalf("err = %#v, want 400 HTTPError", err)
			}
			if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != tt.wantField || httpErr.Errors[0].Error != tt.wantError {
				t.Fatalf("field errors = %+v", httpErr.Errors)
			}
		})
	}
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	err := bind(t, `{"name":`)

	httpErr, ok := err.(*errs.HTTPError)
	if !ok || httpErr.Status != http.StatusBadRequest {
		t.Fatalf("err = %#v, want 400 HTTPError", err)
	}
	if httpErr.Errors != nil {
		t.Errorf("bind failures carry no field errors, got %+v", httpErr.Errors)
	}
}

func TestCleanString(t *testing.T) {
	long := strings.Repeat("é", MaxFieldLength+10)

	if got := CleanString(long); len([]rune(got)) != MaxFieldLength {
		t.Errorf("rune length = %d, want %d", len([]rune(got)), MaxFieldLength)
	}
	if got := CleanString("  Notebook Dell \n"); got != "Notebook Dell" {
		t.Errorf("CleanString = %q", got)
	}
	if got := CleanEmail(" Maria@Empresa.COM "); got != "maria@empresa.com" {
		t.Errorf("CleanEmail = %q", got)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"joao@empresa.com", "first.last+tag@sub.example.org", "a_b%c@x.io"}
	invalid := []string{"", "plain", "a@b", "a@b.c", "@empresa.com", "a b@empresa.com", "a@empresa.c0m"}

	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("%q should be valid", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("%q should be invalid", email)
		}
	}
}
