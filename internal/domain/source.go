// Package domain defines the GLEIF source-record and BODS
// statement shapes that flow through the pipeline, plus the four
// auxiliary index record shapes the reconciliation engine persists.
package domain

// LEIRecord is one entry from the GLEIF golden-copy LEI-CDF file.
type LEIRecord struct {
	LEI          string       `json:"LEI"`
	Entity       Entity       `json:"Entity"`
	Registration Registration `json:"Registration"`
}

// Entity is the Entity block of an LEIRecord.
type Entity struct {
	LegalName           string  `json:"LegalName"`
	LegalAddress        Address `json:"LegalAddress"`
	HeadquartersAddress Address `json:"HeadquartersAddress"`
	LegalJurisdiction   string  `json:"LegalJurisdiction"`
	EntityCreationDate  string  `json:"EntityCreationDate"`
	EntityStatus        string  `json:"EntityStatus"`
	RegistrationAuthority RegistrationAuthority `json:"RegistrationAuthority"`
}

// RegistrationAuthority carries the registration-authority-local
// identifier for an entity, when present.
type RegistrationAuthority struct {
	RegistrationAuthorityID       string `json:"RegistrationAuthorityID"`
	RegistrationAuthorityEntityID string `json:"RegistrationAuthorityEntityID"`
}

// Address is one postal address block (LegalAddress or
// HeadquartersAddress) within an Entity.
type Address struct {
	FirstAddressLine string `json:"FirstAddressLine"`
	City             string `json:"City"`
	Region           string `json:"Region"`
	Country          string `json:"Country"`
	PostalCode       string `json:"PostalCode"`
}

// Registration is the Registration block shared by LEIRecord and
// RelationshipRecord.
type Registration struct {
	InitialRegistrationDate string `json:"InitialRegistrationDate"`
	LastUpdateDate          string `json:"LastUpdateDate"`
	RegistrationStatus      string `json:"RegistrationStatus"`
	ManagingLOU             string `json:"ManagingLOU"`
	ValidationSources       string `json:"ValidationSources"`
}

// RegistrationStatus values recognized by the engine.
const (
	RegistrationStatusIssued  = "ISSUED"
	RegistrationStatusLapsed = "LAPSED"
	RegistrationStatusRetired = "RETIRED"
	RegistrationStatusPublished = "PUBLISHED"
)

// ValidationSourcesFullyCorroborated is the value that upgrades a
// LEI entity statement's sourceType to include "verified".
const ValidationSourcesFullyCorroborated = "FULLY_CORROBORATED"

// RelationshipRecord is one entry from the GLEIF RR golden-copy file.
type RelationshipRecord struct {
	Relationship Relationship `json:"Relationship"`
	Registration Registration `json:"Registration"`
	Extension    *Extension   `json:"Extension,omitempty"`
}

// Relationship is the Relationship block of a RelationshipRecord.
type Relationship struct {
	StartNode            Node               `json:"StartNode"`
	EndNode              Node               `json:"EndNode"`
	RelationshipType     string             `json:"RelationshipType"`
	RelationshipPeriods  []RelationshipPeriod `json:"RelationshipPeriods"`
	RelationshipStatus   string             `json:"RelationshipStatus"`
}

// Node identifies one endpoint of a relationship (by LEI, normally).
type Node struct {
	NodeID     string `json:"NodeID"`
	NodeIDType string `json:"NodeIDType"`
}

// RelationshipPeriod describes one validity window of a relationship.
type RelationshipPeriod struct {
	StartDate  string `json:"StartDate"`
	EndDate    string `json:"EndDate"`
	PeriodType string `json:"PeriodType"`
}

// RelationshipPeriodType is the period type preferred for startDate
// selection; see spec §4.6 tie-break rules.
const RelationshipPeriodType = "RELATIONSHIP_PERIOD"

// Relationship types that correspond to a reporting-exception category.
const (
	RelTypeDirectlyConsolidatedBy   = "IS_DIRECTLY_CONSOLIDATED_BY"
	RelTypeUltimatelyConsolidatedBy = "IS_ULTIMATELY_CONSOLIDATED_BY"
)

// Extension carries the Deletion marker shared by RR and Repex records.
type Extension struct {
	Deletion *Deletion `json:"Deletion,omitempty"`
}

// Deletion records when a source record was withdrawn.
type Deletion struct {
	DeletedAt string `json:"DeletedAt"`
}

// ReportingException is one entry from the GLEIF Repex golden-copy file.
type ReportingException struct {
	LEI               string     `json:"LEI"`
	ExceptionCategory string     `json:"ExceptionCategory"`
	ExceptionReason   string     `json:"ExceptionReason"`
	ExceptionReference string   `json:"ExceptionReference,omitempty"`
	ContentDate       string     `json:"ContentDate"`
	Extension         *Extension `json:"Extension,omitempty"`
}

// ExceptionCategory values.
const (
	ExceptionCategoryDirectAccountingConsolidationParent   = "DIRECT_ACCOUNTING_CONSOLIDATION_PARENT"
	ExceptionCategoryUltimateAccountingConsolidationParent = "ULTIMATE_ACCOUNTING_CONSOLIDATION_PARENT"
)

// ExceptionReason values, including deprecated NON_PUBLIC synonyms.
const (
	ExceptionReasonNoLEI            = "NO_LEI"
	ExceptionReasonNaturalPersons   = "NATURAL_PERSONS"
	ExceptionReasonNonConsolidating = "NON_CONSOLIDATING"
	ExceptionReasonNonPublic        = "NON_PUBLIC"
	ExceptionReasonNoKnownPerson    = "NO_KNOWN_PERSON"
	// Deprecated synonyms of NON_PUBLIC.
	ExceptionReasonBindingLegalCommitments = "BINDING_LEGAL_COMMITMENTS"
	ExceptionReasonLegalObstacles           = "LEGAL_OBSTACLES"
	ExceptionReasonDisclosureDetrimental    = "DISCLOSURE_DETRIMENTAL"
	ExceptionReasonDetrimentNotExcluded     = "DETRIMENT_NOT_EXCLUDED"
	ExceptionReasonConsentNotObtained       = "CONSENT_NOT_OBTAINED"
)

// Header is the per-file Header element carried by a bulk golden-copy
// XML document; BusRecord carries it alongside each record.
type Header struct {
	ContentDate string `json:"ContentDate"`
}

// RecordKind discriminates the three source-record kinds carried on the
// inter-stage bus. Spec §9 calls out duck-typing on the original bus as
// a defect; this module carries the kind as an explicit tagged field
// instead of inferring it from which struct fields are present.
type RecordKind string

const (
	RecordKindLEI   RecordKind = "lei"
	RecordKindRR    RecordKind = "rr"
	RecordKindRepex RecordKind = "repex"
)

// BusRecord is the wire shape of one inter-stage-bus entry: a kind
// discriminant alongside the raw decoded record and file header.
type BusRecord struct {
	Kind   RecordKind      `json:"kind"`
	Header Header          `json:"header"`
	LEI    *LEIRecord      `json:"lei,omitempty"`
	RR     *RelationshipRecord `json:"rr,omitempty"`
	Repex  *ReportingException `json:"repex,omitempty"`
}
