package domain

import "testing"

func TestMapDecision(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		decision string
		want     VerificationStatus
	}{
		{"Pass", StatusPass},
		{"Pass 1+1", StatusPass},
		{"Pass 2+2", StatusPass},
		{"Alert", StatusFail},
		{"Reject", StatusFail},
		{"Manual review", StatusManual},
		{"", StatusInProgress},
		{"Something new", StatusInProgress},
	} {
		if got := MapDecision(tc.decision); got != tc.want {
			t.Errorf("MapDecision(%q) = %v, want %v", tc.decision, got, tc.want)
		}
	}
}

func TestResolved(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		status, decision string
		want             bool
	}{
		{"Completed", "Pass", true},
		{"Completed", "", true},
		{"InProgress", "Manual review", true},
		{"InProgress", "Pass", false},
		{"InProgress", "", false},
		{"", "", false},
	} {
		if got := Resolved(tc.status, tc.decision); got != tc.want {
			t.Errorf("Resolved(%q, %q) = %v, want %v", tc.status, tc.decision, got, tc.want)
		}
	}
}

func TestVerificationStatusTerminal(t *testing.T) {
	t.Parallel()

	for st, want := range map[VerificationStatus]bool{
		StatusPass:       true,
		StatusFail:       true,
		StatusManual:     true,
		StatusInProgress: false,
	} {
		if got := st.Terminal(); got != want {
			t.Errorf("%v.Terminal() = %v, want %v", st, got, want)
		}
	}
}
