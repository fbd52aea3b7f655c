package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestSupportedTagsListsBothLocales(t *testing.T) {
	tags := SupportedTags()
	if len(tags) != 2 {
		t.Fatalf("supported tags = %d, want 2", len(tags))
	}
	if tags[0] != English || tags[1] != Spanish {
		t.Fatalf("supported tags = %v, want [en es]", tags)
	}
}

func TestParseTagResolvesRegionalVariants(t *testing.T) {
	tag, ok := ParseTag("es-MX")
	if !ok {
		t.Fatal("expected es-MX to resolve")
	}
	if tag != Spanish {
		t.Fatalf("tag = %v, want es", tag)
	}
}

func TestParseTagRejectsUnsupportedLocale(t *testing.T) {
	tag, ok := ParseTag("fr")
	if ok {
		t.Fatal("expected fr to be rejected")
	}
	if tag != English {
		t.Fatalf("fallback tag = %v, want en", tag)
	}
}

func TestParseTagRejectsGarbage(t *testing.T) {
	if _, ok := ParseTag("!!"); ok {
		t.Fatal("expected garbage input to be rejected")
	}
	if _, ok := ParseTag("   "); ok {
		t.Fatal("expected blank input to be rejected")
	}
}

func TestMatchTagsPrefersFirstSupportedEntry(t *testing.T) {
	got := MatchTags([]language.Tag{language.MustParse("fr"), language.MustParse("es-419")})
	if got != Spanish {
		t.Fatalf("match = %v, want es", got)
	}
}

func TestMatchTagsDefaultsWhenEmpty(t *testing.T) {
	if got := MatchTags(nil); got != English {
		t.Fatalf("match = %v, want en", got)
	}
}
