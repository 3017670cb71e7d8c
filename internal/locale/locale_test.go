package locale

import "testing"

func TestStringsFallsBackToEnglish(t *testing.T) {
	if got := Strings("Marathi")["dashboard"]; got != "Dashboard" {
		t.Errorf("unknown language dashboard = %q", got)
	}
	if got := Strings(Hindi)["dashboard"]; got != "डैशबोर्ड" {
		t.Errorf("hindi dashboard = %q", got)
	}
}

func TestLookupMissingKeyReturnsKey(t *testing.T) {
	if got := Lookup(English, "noSuchKey"); got != "noSuchKey" {
		t.Errorf("Lookup = %q", got)
	}
}

func TestTablesCoverTheSameKeys(t *testing.T) {
	for key := range englishStrings {
		if _, ok := hindiStrings[key]; !ok {
			t.Errorf("hindi table missing %q", key)
		}
	}
	for key := range hindiStrings {
		if _, ok := englishStrings[key]; !ok {
			t.Errorf("english table missing %q", key)
		}
	}
}
