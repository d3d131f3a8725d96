package forms

import (
	"net/url"
	"testing"
)

func registerValues() url.Values {
	return url.Values{
		"first_name":       {"Alice"},
		"last_name":        {"Smith"},
		"username":         {"alice"},
		"password":         {"GoodPass1"},
		"confirm_password": {"GoodPass1"},
	}
}

func TestRegisterFormValid(t *testing.T) {
	f := NewRegister(registerValues())
	if errs := f.Validate(); !errs.Empty() {
		t.Fatalf("unexpected violations: %v", errs)
	}
}

func TestRegisterPasswordRules(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"GoodPass1", true},
		{"alllowercase1", false}, // no upper case
		{"NoNumbersHere", false},
		{"Sh0rt", false},            // under 8
		{"Bad Pass1", false},        // space outside charset
		{"Valid_Pass1@", true},      // underscore and @ are allowed
		{"Tr0ub4dor&Three", false},  // & outside charset
	}
	for _, c := range cases {
		v := registerValues()
		v.Set("password", c.password)
		v.Set("confirm_password", c.password)
		errs := NewRegister(v).Validate()
		_, bad := errs["password"]
		if c.ok && bad {
			t.Errorf("%q rejected: %v", c.password, errs["password"])
		}
		if !c.ok && !bad {
			t.Errorf("%q accepted", c.password)
		}
	}
}

// Pins down the accepted username set: letters, digits and underscore, at
// least five characters. The legacy no-digits rule is gone.
func TestRegisterUsernameRules(t *testing.T) {
	cases := []struct {
		username string
		ok       bool
	}{
		{"alice", true},
		{"alice_99", true}, // digits are allowed
		{"user_1", true},
		{"bob", false},       // too short
		{"al ice", false},    // space
		{"alice!", false},    // punctuation
		{"ali@ce", false},    // @ allowed in passwords, not usernames
	}
	for _, c := range cases {
		v := registerValues()
		v.Set("username", c.username)
		errs := NewRegister(v).Validate()
		_, bad := errs["username"]
		if c.ok && bad {
			t.Errorf("%q rejected: %v", c.username, errs["username"])
		}
		if !c.ok && !bad {
			t.Errorf("%q accepted", c.username)
		}
	}
}

func TestRegisterConfirmMustMatch(t *testing.T) {
	v := registerValues()
	v.Set("confirm_password", "Different1")
	errs := NewRegister(v).Validate()
	if errs["confirm_password"] != "Passwords must match." {
		t.Fatalf("expected mismatch violation, got %v", errs)
	}
}

func TestRegisterNameLength(t *testing.T) {
	v := registerValues()
	v.Set("first_name", "Al")
	errs := NewRegister(v).Validate()
	if _, ok := errs["first_name"]; !ok {
		t.Fatal("short first name accepted")
	}
}

func TestLoginFormRequiresBoth(t *testing.T) {
	f := NewLogin(url.Values{"username": {"alice"}})
	errs := f.Validate()
	if _, ok := errs["password"]; !ok {
		t.Fatal("missing password accepted")
	}
	f2 := NewLogin(url.Values{"username": {"alice"}, "password": {"x"}})
	if errs := f2.Validate(); !errs.Empty() {
		t.Fatalf("unexpected violations: %v", errs)
	}
}

func TestCommentFormRequired(t *testing.T) {
	if errs := NewComment(url.Values{"comment": {"   "}}).Validate(); errs.Empty() {
		t.Fatal("blank comment accepted")
	}
}
