package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"a.student@go.minnstate.edu", "staff@minnstate.edu", "x_y+z@example.org"}
	for _, e := range valid {
		if !ValidateEmail(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}

	invalid := []string{"", "not-an-email", "missing@tld", "@example.org", "a b@example.org"}
	for _, e := range invalid {
		if ValidateEmail(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}

func TestValidateEmailDomain(t *testing.T) {
	allowed := map[string]bool{"go.minnstate.edu": true, "minnstate.edu": true}

	if !ValidateEmailDomain("student@go.minnstate.edu", allowed) {
		t.Error("campus address should be accepted")
	}
	if !ValidateEmailDomain("student@GO.MINNSTATE.EDU", allowed) {
		t.Error("domain match should be case-insensitive")
	}
	if ValidateEmailDomain("someone@gmail.com", allowed) {
		t.Error("outside domain should be rejected")
	}
	if ValidateEmailDomain("not-an-email", allowed) {
		t.Error("malformed address should be rejected")
	}
}

func TestEmailDomain(t *testing.T) {
	if got := EmailDomain("a@B.Example.EDU"); got != "b.example.edu" {
		t.Errorf("unexpected domain %q", got)
	}
	if got := EmailDomain("no-at-sign"); got != "" {
		t.Errorf("expected empty domain, got %q", got)
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("secret1"); !ok {
		t.Error("7-char password should pass")
	}
	if ok, _ := ValidatePassword("12345"); ok {
		t.Error("short password should fail")
	}
	if ok, _ := ValidatePassword("      "); ok {
		t.Error("all-spaces password should fail")
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Errorf("unexpected sanitized value %q", got)
	}
}
