// pkg/api/records_v1.go
package api

// RecordStatsV1 is the stable JSON/JSONL schema for one record's summary.
type RecordStatsV1 struct {
	Index      int    `json:"index"`
	Audio      string `json:"audio,omitempty"`
	SourceFile string `json:"source_file,omitempty"`

	RefChars int `json:"ref_chars"`
	HypChars int `json:"hyp_chars"`
	RefWords int `json:"ref_words"`
	HypWords int `json:"hyp_words"`

	CharSub int `json:"char_sub,omitempty"`
	CharIns int `json:"char_ins,omitempty"`
	CharDel int `json:"char_del,omitempty"`
	WordSub int `json:"word_sub,omitempty"`
	WordIns int `json:"word_ins,omitempty"`
	WordDel int `json:"word_del,omitempty"`

	CER float64 `json:"cer"`
	WER float64 `json:"wer"`
}
