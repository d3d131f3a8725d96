package validation

import (
	"regexp"
	"testing"
)

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "  ", v)
	if v.Empty() {
		t.Fatal("expected violation for blank value")
	}
	v2 := Violations{}
	Required("name", "ok", v2)
	if !v2.Empty() {
		t.Fatalf("unexpected violation: %v", v2)
	}
}

func TestFirstFailingRuleWins(t *testing.T) {
	v := Violations{}
	Required("username", "", v)
	MinLen("username", "", 5, v)
	if v["username"] != "This field is required." {
		t.Fatalf("later rule overwrote the first: %q", v["username"])
	}
}

func TestLenBetween(t *testing.T) {
	v := Violations{}
	LenBetween("first_name", "Al", 4, 15, v)
	if _, ok := v["first_name"]; !ok {
		t.Fatal("expected violation for short name")
	}
	v2 := Violations{}
	LenBetween("first_name", "Alice", 4, 15, v2)
	if !v2.Empty() {
		t.Fatalf("unexpected violation: %v", v2)
	}
}

func TestPasswordComposition(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"GoodPass1", true},
		{"alllowercase1", false}, // no upper case
		{"ALLUPPERCASE1", false}, // no lower case
		{"NoDigitsHere", false},
		{"Sh0rtButComplete", true},
	}
	for _, c := range cases {
		v := Violations{}
		PasswordComposition("password", c.password, v)
		if c.ok && !v.Empty() {
			t.Errorf("%q: unexpected violation %v", c.password, v)
		}
		if !c.ok && v.Empty() {
			t.Errorf("%q: expected a violation", c.password)
		}
	}
}

func TestMatchAndEqualTo(t *testing.T) {
	re := regexp.MustCompile(`^\w+$`)
	v := Violations{}
	Match("username", "has space", re, "bad charset", v)
	if v["username"] != "bad charset" {
		t.Fatalf("expected charset violation, got %v", v)
	}
	v2 := Violations{}
	EqualTo("confirm_password", "a", "b", "must match", v2)
	if v2["confirm_password"] != "must match" {
		t.Fatalf("expected mismatch violation, got %v", v2)
	}
}
