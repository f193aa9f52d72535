package search

import (
	"reflect"
	"testing"
)

func TestSynonymsForKnownTerm(t *testing.T) {
	dict := DefaultSynonymDictionary()

	got := dict.SynonymsFor("sensor maf")
	want := []string{"medidor flujo aire", "sensor flujo masa aire", "mass air flow", "maf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SynonymsFor(\"sensor maf\") = %v, want %v", got, want)
	}
}

func TestSynonymsForMatchesBySynonym(t *testing.T) {
	dict := DefaultSynonymDictionary()

	// "spark plug" is listed as a synonym of "bujia"; the lookup must resolve
	// the entry and offer the canonical term back.
	got := dict.SynonymsFor("spark plug")
	want := []string{"bujia"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SynonymsFor(\"spark plug\") = %v, want %v", got, want)
	}
}

func TestSynonymsForNeverRepeatsTheTerm(t *testing.T) {
	dict := DefaultSynonymDictionary()

	for _, term := range []string{"sensor maf", "balatas", "spark plug"} {
		for _, syn := range dict.SynonymsFor(term) {
			if syn == term {
				t.Errorf("SynonymsFor(%q) returned the term itself", term)
			}
		}
	}
}

func TestSynonymsForUnknownTerm(t *testing.T) {
	dict := DefaultSynonymDictionary()

	if got := dict.SynonymsFor("limpiaparabrisas"); got != nil {
		t.Errorf("SynonymsFor(\"limpiaparabrisas\") = %v, want nil", got)
	}
	if got := dict.SynonymsFor(""); got != nil {
		t.Errorf("SynonymsFor(\"\") = %v, want nil", got)
	}
}

func TestSynonymsForNormalizesInput(t *testing.T) {
	dict := DefaultSynonymDictionary()

	accented := dict.SynonymsFor("BUJÍA")
	plain := dict.SynonymsFor("bujia")
	if !reflect.DeepEqual(accented, plain) {
		t.Errorf("accented lookup %v differs from plain lookup %v", accented, plain)
	}
	if len(plain) == 0 {
		t.Fatal("expected synonyms for bujia")
	}
}

func TestSynonymsForDeterministicOrder(t *testing.T) {
	dict := DefaultSynonymDictionary()

	first := dict.SynonymsFor("sensor maf")
	for i := 0; i < 10; i++ {
		if got := dict.SynonymsFor("sensor maf"); !reflect.DeepEqual(got, first) {
			t.Fatalf("lookup %d returned %v, first returned %v", i, got, first)
		}
	}
}
