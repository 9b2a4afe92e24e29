package usage

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"voicedesk.io/accounting/utils"
)

var (
	minPattern      = regexp.MustCompile(`(\d+)min`)
	secPattern      = regexp.MustCompile(`(\d+)sec`)
	secShortPattern = regexp.MustCompile(`(\d+)s`)
)

// ParseDuration converts a free-form call duration string into fractional
// minutes. Three formats are accepted, tried in order: "Nmin Nsec" (either
// part may stand alone, "Ns" also accepted for seconds), a plain decimal
// minute count, and "mm:ss". Anything else, including empty input, yields 0.
//
// The decimal check must validate the full string: a prefix parse would
// swallow "12:30" as 12 and drop the seconds, so the colon form has to stay
// unreachable from the decimal branch.
func ParseDuration(durationStr string) float64 {
	if durationStr == "" {
		return 0
	}

	minMatch := minPattern.FindStringSubmatch(durationStr)
	secMatch := secPattern.FindStringSubmatch(durationStr)
	if secMatch == nil {
		secMatch = secShortPattern.FindStringSubmatch(durationStr)
	}
	if minMatch != nil || secMatch != nil {
		minutes := 0
		seconds := 0
		if minMatch != nil {
			minutes, _ = strconv.Atoi(minMatch[1])
		}
		if secMatch != nil {
			seconds, _ = strconv.Atoi(secMatch[1])
		}
		return float64(minutes) + float64(seconds)/60
	}

	if v, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64); err == nil {
		if v < 0 {
			utils.Log(logrus.WarnLevel, "negative duration clamped to 0: "+durationStr)
			return 0
		}
		return v
	}

	// Only the first two segments count, so "1:30:45" reads as 1min 30s.
	if strings.Contains(durationStr, ":") {
		parts := strings.Split(durationStr, ":")
		minutes, errMin := strconv.Atoi(strings.TrimSpace(parts[0]))
		seconds, errSec := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errMin == nil && errSec == nil && minutes >= 0 && seconds >= 0 {
			return float64(minutes) + float64(seconds)/60
		}
	}

	utils.Log(logrus.WarnLevel, "unrecognized duration format: "+durationStr)
	return 0
}
