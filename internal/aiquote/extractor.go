package aiquote

import (
	"strings"

	"github.com/harborline/seaquote/internal/config"
	containertypedomain "github.com/harborline/seaquote/internal/containertype/domain"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
)

// Directional cues. A port mention only claims a role when one of these
// immediately precedes it in the normalized text.
var (
	originCues      = []string{"從", "自", "起運港", "from ", "ex "}
	destinationCues = []string{"到", "至", "目的港", "to "}
)

// Candidate records one way an entity matched the text: which surface form
// hit, where its last occurrence starts, and whether a directional cue
// preceded it.
type Candidate struct {
	Code     string `json:"code"`
	Form     string `json:"form"`
	Position int    `json:"position"`
	Cued     bool   `json:"cued"`
}

// Extraction is the tagged result of scanning a normalized query. The
// winner fields are nil when no cued candidate claimed the role; the
// candidate lists keep every match for diagnostics.
type Extraction struct {
	Origin        *portdomain.Port
	Destination   *portdomain.Port
	ContainerType *containertypedomain.ContainerType

	OriginCandidates      []Candidate
	DestinationCandidates []Candidate
	ContainerCandidates   []Candidate
}

// Complete reports whether all three slots resolved.
func (e Extraction) Complete() bool {
	return e.Origin != nil && e.Destination != nil && e.ContainerType != nil
}

// Extract scans normalized text for port and container-type mentions.
// Ports need a directional cue to win a role; when several cued mentions
// compete for the same role, the port scanned last in the reference list
// wins. Container types need no cue and resolve last-mention-in-text wins.
func Extract(text string, ports []portdomain.Port, containerTypes []containertypedomain.ContainerType, aliases config.AliasTable) Extraction {
	var ex Extraction
	if text == "" {
		return ex
	}

	var containerWinner Candidate

	for i := range ports {
		p := &ports[i]
		for _, form := range portSurfaceForms(p, aliases) {
			if !strings.Contains(text, form) {
				continue
			}

			if pos := lastCuedIndex(text, originCues, form); pos >= 0 {
				c := Candidate{Code: p.Code, Form: form, Position: pos, Cued: true}
				ex.OriginCandidates = append(ex.OriginCandidates, c)
				ex.Origin = p
				continue
			}
			if pos := lastCuedIndex(text, destinationCues, form); pos >= 0 {
				c := Candidate{Code: p.Code, Form: form, Position: pos, Cued: true}
				ex.DestinationCandidates = append(ex.DestinationCandidates, c)
				ex.Destination = p
				continue
			}

			// Uncued mention. Recorded for both roles but never wins one.
			c := Candidate{Code: p.Code, Form: form, Position: strings.LastIndex(text, form)}
			ex.OriginCandidates = append(ex.OriginCandidates, c)
			ex.DestinationCandidates = append(ex.DestinationCandidates, c)
		}
	}

	for i := range containerTypes {
		ct := &containerTypes[i]
		for _, form := range containerSurfaceForms(ct, aliases) {
			pos := strings.LastIndex(text, form)
			if pos < 0 {
				continue
			}
			c := Candidate{Code: ct.Code, Form: form, Position: pos}
			ex.ContainerCandidates = append(ex.ContainerCandidates, c)
			if ex.ContainerType == nil || pos >= containerWinner.Position {
				ex.ContainerType = ct
				containerWinner = c
			}
		}
	}

	return ex
}

// lastCuedIndex returns the start of the last cue+form occurrence, or -1.
func lastCuedIndex(text string, cues []string, form string) int {
	best := -1
	for _, cue := range cues {
		if idx := strings.LastIndex(text, cue+form); idx > best {
			best = idx
		}
	}
	return best
}

// portSurfaceForms lists every lower-cased string that identifies a port in
// free text: its name, its code, and any alias whose canonical expansion
// points back at either.
func portSurfaceForms(p *portdomain.Port, aliases config.AliasTable) []string {
	forms := []string{strings.ToLower(p.Name), strings.ToLower(p.Code)}
	return appendAliasForms(forms, aliases)
}

func containerSurfaceForms(ct *containertypedomain.ContainerType, aliases config.AliasTable) []string {
	forms := []string{strings.ToLower(ct.Name), strings.ToLower(ct.Code)}
	return appendAliasForms(forms, aliases)
}

func appendAliasForms(forms []string, aliases config.AliasTable) []string {
	base := forms[:len(forms):len(forms)]
	for _, alias := range aliases.Aliases() {
		if aliasPointsAt(aliases.Canonicals(alias), base) {
			forms = append(forms, alias)
		}
	}
	return forms
}

func aliasPointsAt(canonicals, forms []string) bool {
	for _, canonical := range canonicals {
		if contains(forms, strings.ToLower(canonical)) {
			return true
		}
	}
	return false
}
