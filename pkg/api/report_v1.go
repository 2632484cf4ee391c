// pkg/api/report_v1.go
package api

// EntryV1 is the stable JSON schema for one symbol's edit statistics.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// reference_ct and hypothesis_ct are always present; the remaining fields
// drop when zero/empty.
type EntryV1 struct {
	ReferenceCount  int                     `json:"reference_ct"`
	HypothesisCount int                     `json:"hypothesis_ct"`
	InsertCount     int                     `json:"insert,omitempty"`
	InsertRate      float64                 `json:"insert_rate,omitempty"`
	DeleteCount     int                     `json:"delete,omitempty"`
	DeleteRate      float64                 `json:"delete_rate,omitempty"`
	Substitutions   map[string]SubstituteV1 `json:"substitute,omitempty"`
}

// SubstituteV1 pairs a substitution target's count with its derived rate.
type SubstituteV1 struct {
	Count int     `json:"ct"`
	Rate  float64 `json:"rate"`
}

// ReportV1 is the stable aggregate report schema: one sanitized table per
// granularity plus batch totals.
type ReportV1 struct {
	Records    int                `json:"records"`
	RefChars   int                `json:"ref_chars"`
	HypChars   int                `json:"hyp_chars"`
	RefWords   int                `json:"ref_words"`
	HypWords   int                `json:"hyp_words"`
	Characters map[string]EntryV1 `json:"characters"`
	Words      map[string]EntryV1 `json:"words"`
}
