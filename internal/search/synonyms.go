package search

import (
	"sort"
	"strings"
)

// SynonymDictionary maps canonical auto-part terms to alternate phrasings used
// to widen search recall. It is built once at startup and never mutated, so it
// is safe to share across requests.
type SynonymDictionary struct {
	entries map[string][]string
	keys    []string
}

// NewSynonymDictionary copies entries into an immutable dictionary. Keys and
// synonyms are normalized on the way in so lookups work on normalized terms.
func NewSynonymDictionary(entries map[string][]string) *SynonymDictionary {
	d := &SynonymDictionary{
		entries: make(map[string][]string, len(entries)),
		keys:    make([]string, 0, len(entries)),
	}
	for key, synonyms := range entries {
		normKey := Normalize(key)
		normSyns := make([]string, 0, len(synonyms))
		for _, s := range synonyms {
			normSyns = append(normSyns, Normalize(s))
		}
		d.entries[normKey] = normSyns
		d.keys = append(d.keys, normKey)
	}
	// Deterministic lookup order regardless of map iteration
	sort.Strings(d.keys)
	return d
}

// SynonymsFor returns the canonical term and all its synonyms for any entry
// that matches term (as key or listed synonym), minus the phrasing identical
// to the term itself, so widening never re-issues the original query.
// Returns nil when no entry matches.
func (d *SynonymDictionary) SynonymsFor(term string) []string {
	term = Normalize(term)
	if term == "" {
		return nil
	}

	for _, key := range d.keys {
		synonyms := d.entries[key]
		if !strings.Contains(term, key) && !anyContained(term, synonyms) {
			continue
		}

		candidates := make([]string, 0, len(synonyms)+1)
		for _, s := range append([]string{key}, synonyms...) {
			if s != term {
				candidates = append(candidates, s)
			}
		}
		return candidates
	}

	return nil
}

func anyContained(term string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(term, p) {
			return true
		}
	}
	return false
}

// DefaultSynonymDictionary returns the curated dictionary of Mexican-market
// part names and their common alternates (Spanish and English trade terms).
func DefaultSynonymDictionary() *SynonymDictionary {
	return NewSynonymDictionary(map[string][]string{
		// Sensores
		"sensor maf":     {"medidor flujo aire", "sensor flujo masa aire", "mass air flow", "maf"},
		"sensor map":     {"sensor presion multiple", "manifold absolute pressure", "map"},
		"sensor oxigeno": {"sonda lambda", "o2 sensor", "sensor lambda"},
		"sensor tps":     {"sensor posicion acelerador", "throttle position sensor"},
		"sensor ckp":     {"sensor posicion ciguenal", "crankshaft position sensor"},
		"sensor cmp":     {"sensor posicion arbol levas", "camshaft position sensor"},

		// Frenos
		"balatas":      {"pastillas freno", "brake pads"},
		"discos freno": {"rotores freno", "brake discs", "brake rotors"},
		"tambor freno": {"drum brake"},
		"caliper":      {"mordaza freno", "pinza freno"},

		// Suspension
		"amortiguador":       {"shock absorber", "strut"},
		"resorte":            {"spring", "muelle"},
		"rotula":             {"ball joint"},
		"buje":               {"bushing", "silent block"},
		"terminal direccion": {"tie rod end"},

		// Motor
		"bujia":               {"spark plug"},
		"bomba agua":          {"water pump"},
		"bomba aceite":        {"oil pump"},
		"termostato":          {"thermostat"},
		"radiador":            {"radiator"},
		"alternador":          {"alternator", "generator"},
		"arrancador":          {"marcha", "starter", "motor arranque"},
		"valvula egr":         {"egr valve"},
		"correa distribucion": {"timing belt", "banda tiempo"},
		"cadena distribucion": {"timing chain", "cadena tiempo"},

		// Transmision
		"embrague":      {"clutch"},
		"volante motor": {"flywheel"},
		"caja cambios":  {"transmission", "transmision"},
		"diferencial":   {"differential"},

		// Electricos
		"bateria":  {"battery", "acumulador"},
		"faro":     {"headlight", "headlamp"},
		"bombilla": {"bulb", "foco"},

		// Filtros
		"filtro aceite":      {"oil filter"},
		"filtro aire":        {"air filter"},
		"filtro combustible": {"fuel filter", "filtro gasolina"},
		"filtro habitaculo":  {"cabin filter", "filtro polen"},
	})
}
