// Package annotations builds the canonical "commenting" BODS annotations
// attached to statements emitted by the reconciliation engine.
package annotations

import (
	"fmt"

	"github.com/techie2000/axiom-gleif/internal/domain"
	"github.com/techie2000/axiom-gleif/internal/ids"
)

const (
	createdByName = "Open Ownership"
	createdByURI  = "https://www.openownership.org"
)

// Add appends a commenting annotation with the given description and
// statement pointer target to annotations.
func Add(annotations *[]domain.Annotation, description, pointer string) {
	*annotations = append(*annotations, domain.Annotation{
		Motivation:           "commenting",
		Description:          description,
		StatementPointerTarget: pointer,
		CreationDate:         ids.CurrentDateISO(),
		CreatedBy: domain.AnnotationAuthor{
			Name: createdByName,
			URI:  createdByURI,
		},
	})
}

// AddRepexOOCUnknown annotates a reporting-exception OOC whose interest
// nature is unknown.
func AddRepexOOCUnknown(annotations *[]domain.Annotation) {
	Add(annotations, "The nature of this interest is unknown", "/interests/0/type")
}

// AddLEIStatus annotates an entity statement with its GLEIF LEI and
// registration status.
func AddLEIStatus(annotations *[]domain.Annotation, lei, registrationStatus string) {
	Add(annotations, fmt.Sprintf("GLEIF data for this entity - LEI: %s; Registration Status: %s", lei, registrationStatus), "/")
}

// AddRRStatus annotates an OOC with the GLEIF relationship it describes.
func AddRRStatus(annotations *[]domain.Annotation, subject, interested string) {
	Add(annotations, fmt.Sprintf("Describes GLEIF relationship: %s is subject, %s is interested party", subject, interested), "/")
}

// AddRetired annotates a statement voided because RegistrationStatus
// became RETIRED.
func AddRetired(annotations *[]domain.Annotation) {
	Add(annotations, "GLEIF RegistrationStatus set to RETIRED on this statementDate.", "/")
}

// AddRRDeleted annotates an OOC voided because the underlying
// relationship record was deleted.
func AddRRDeleted(annotations *[]domain.Annotation) {
	Add(annotations, "GLEIF relationship deleted on this statementDate.", "/")
}

// AddRepexReason annotates a statement created as a result of a
// reporting exception.
func AddRepexReason(annotations *[]domain.Annotation, reason, lei string) {
	Add(annotations, fmt.Sprintf("This statement was created due to a %s GLEIF Reporting Exception for %s", reason, lei), "/")
}

// AddRepexChanged annotates a statement retired because the underlying
// reporting exception's reason changed.
func AddRepexChanged(annotations *[]domain.Annotation, reason, lei string) {
	Add(annotations, fmt.Sprintf("Statement retired due to change in a %s GLEIF Reporting Exception for %s", reason, lei), "/")
}

// AddRepexReplaced annotates a statement series retired because the
// reporting exception was superseded by a real relationship record.
func AddRepexReplaced(annotations *[]domain.Annotation, reason, lei string) {
	Add(annotations, fmt.Sprintf("Statement series retired due to replacement of a %s GLEIF Reporting Exception for %s", reason, lei), "/")
}

// AddRepexDeleted annotates an OOC retired because the underlying
// reporting exception was deleted.
func AddRepexDeleted(annotations *[]domain.Annotation, reason, lei string) {
	Add(annotations, fmt.Sprintf("Statement series retired due to deletion of a %s GLEIF Reporting Exception for %s", reason, lei), "/")
}
