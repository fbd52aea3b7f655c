package i18n

import (
	"reflect"
	"testing"

	platformi18n "github.com/louisbranch/gitfolio/internal/platform/i18n"
)

func TestCopyHasNoEmptyFields(t *testing.T) {
	for _, tag := range Supported() {
		c := Copy(tag)
		v := reflect.ValueOf(c)
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				t.Fatalf("%s copy field %s is empty", tag, v.Type().Field(i).Name)
			}
		}
	}
}

func TestCopyDivergesBetweenLanguages(t *testing.T) {
	en := Copy(platformi18n.English)
	es := Copy(platformi18n.Spanish)

	pairs := []struct {
		name string
		en   string
		es   string
	}{
		{"Greeting", en.Greeting, es.Greeting},
		{"AboutTitle", en.AboutTitle, es.AboutTitle},
		{"ProjectsTitle", en.ProjectsTitle, es.ProjectsTitle},
		{"ContactTitle", en.ContactTitle, es.ContactTitle},
		{"ErrorLoading", en.ErrorLoading, es.ErrorLoading},
	}
	for _, pair := range pairs {
		if pair.en == pair.es {
			t.Fatalf("%s is identical across languages: %q", pair.name, pair.en)
		}
	}
}

func TestCopySpanishGreeting(t *testing.T) {
	es := Copy(platformi18n.Spanish)
	if es.Greeting != "¡Hola!" {
		t.Fatalf("greeting = %q, want %q", es.Greeting, "¡Hola!")
	}
}

func TestCopyUnknownTagFallsBackToEnglish(t *testing.T) {
	fr := Copy(platformi18n.DefaultTag())
	if fr.Greeting != "Hello!" {
		t.Fatalf("greeting = %q, want %q", fr.Greeting, "Hello!")
	}
}
