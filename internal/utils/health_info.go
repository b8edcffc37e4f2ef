package utils

import (
	"regexp"
	"strings"
	"sync"
)

const vaccinationProofMarker = "Vaccination Proof: "

var (
	vaccinationProofRe = regexp.MustCompile(`Vaccination Proof: (https://\S+)`)

	// compiled marker patterns per extra URL prefix
	proofPatterns sync.Map
)

// ParseHealthInfo splits a health-info text into the display text and the
// embedded vaccination proof URL. Example:
// "Good health.\n\nVaccination Proof: https://x/y.jpg" -> ("Good health.", "https://x/y.jpg").
// Without a marker the URL is empty and the text is returned trimmed.
//
// A proof URL is an https URL or, when given, one starting with a trusted
// prefix such as the server's own storage URL. Every recognised marker is
// removed from the clean text; the first one is the proof.
func ParseHealthInfo(healthInfo string, trusted ...string) (clean string, proofURL string) {
	if healthInfo == "" {
		return "", ""
	}
	re := proofPattern(trusted)
	if m := re.FindStringSubmatch(healthInfo); m != nil {
		proofURL = m[1]
	}
	clean = strings.TrimSpace(re.ReplaceAllString(healthInfo, ""))
	return clean, proofURL
}

func proofPattern(trusted []string) *regexp.Regexp {
	alts := make([]string, 0, len(trusted))
	for _, p := range trusted {
		if p != "" && !strings.HasPrefix(p, "https://") {
			alts = append(alts, regexp.QuoteMeta(p))
		}
	}
	if len(alts) == 0 {
		return vaccinationProofRe
	}
	key := strings.Join(alts, "|")
	if re, ok := proofPatterns.Load(key); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`Vaccination Proof: ((?:https://|` + key + `)\S+)`)
	proofPatterns.Store(key, re)
	return re
}

// AppendVaccinationProof embeds a proof URL into health-info text the way
// ParseHealthInfo expects to find it.
func AppendVaccinationProof(healthInfo, proofURL string) string {
	return strings.TrimSpace(healthInfo + "\n\n" + vaccinationProofMarker + proofURL)
}
