// Package ids provides the deterministic statement-identifier and
// date-formatting primitives shared by every statement-producing
// component of the reconciliation engine.
package ids

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// europeLondon is loaded once; publication dates are stamped in this
// zone to match the upstream GLEIF pipeline's convention.
var europeLondon = mustLoadLocation("Europe/London")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// Falls back to UTC rather than panicking at package init; a
		// missing tzdata entry should degrade, not crash the process.
		return time.UTC
	}
	return loc
}

// StatementID derives a BODS statementID from seed and role. The 16
// bytes of the MD5 digest of "{seed}-{role}" are cast directly into a
// UUID's byte layout; this is NOT RFC 4122 UUIDv3 (no namespace, no
// version/variant bits rewritten). Implementations MUST reproduce this
// exact cast for wire compatibility with existing published statements.
func StatementID(seed, role string) string {
	sum := md5.Sum([]byte(seed + "-" + role))
	id, _ := uuid.FromBytes(sum[:])
	return id.String()
}

// EntitySeed builds the seed used for an LEI entity statement ID.
func EntitySeed(lei, lastUpdateDate string) string {
	return fmt.Sprintf("%s_%s", lei, lastUpdateDate)
}

// RRSeed builds the seed used for a relationship-record OOC statement ID.
func RRSeed(start, end, relType, lastUpdateDate string) string {
	return fmt.Sprintf("%s_%s_%s_%s", start, end, relType, lastUpdateDate)
}

// RepexSeed builds the seed used for a reporting-exception statement ID.
// When reference is empty the literal string "None" is used in its
// place, matching the source pipeline's id_repex fallback.
func RepexSeed(lei, category, reason, reference, contentDate string) string {
	refPart := "None"
	if reference != "" {
		sum := sha256.Sum256([]byte(reference))
		refPart = hex.EncodeToString(sum[:])
	}
	return fmt.Sprintf("%s_%s_%s_%s_%s", lei, category, reason, refPart, contentDate)
}

// FormatDate returns the YYYY-MM-DD date component of an RFC3339-ish
// GLEIF timestamp (with or without fractional seconds, with or without
// a trailing "Z").
func FormatDate(timestamp string) string {
	t, err := parseGleifTime(timestamp)
	if err != nil {
		if len(timestamp) >= 10 {
			return timestamp[:10]
		}
		return timestamp
	}
	return t.Format("2006-01-02")
}

func parseGleifTime(timestamp string) (time.Time, error) {
	layouts := []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"}
	var lastErr error
	for _, layout := range layouts {
		if t, err := time.Parse(layout, timestamp); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// CurrentDateISO returns the current instant formatted in ISO 8601 with
// second precision, in the Europe/London zone.
func CurrentDateISO() string {
	return time.Now().In(europeLondon).Format("2006-01-02T15:04:05Z07:00")
}
