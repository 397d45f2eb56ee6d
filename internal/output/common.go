package output

// Output formats understood by the writers.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatJSONL  = "jsonl"
	FormatFASTA  = "fasta"
	FormatNewick = "newick"
	FormatPHYLIP = "phylip"
)

// AlignHeader is the canonical header row for bg-align text output.
// Keep this as the single source of truth; all writers should use it.
const AlignHeader = "query_id\ttarget_id\tmode\talphabet\tscore\tidentity\tgaps\tlength\tstart1\tstart2"
